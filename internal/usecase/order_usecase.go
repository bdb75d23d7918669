package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/labstack/gommon/log"
)

const defaultPaymentMethod = "tunai"

// OrderUsecase adalah alur intake pesanan: validasi keranjang, resolve meja
// (lookup-or-create), hitung total, simpan header + item, dan kompensasi
// (hapus header) kalau penyimpanan item gagal. Store tidak punya transaksi
// lintas tabel untuk alur ini, jadi konsistensinya dijaga lewat kompensasi.
type OrderUsecase struct {
	meja       repo.MejaRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func NewOrderUsecase(
	meja repo.MejaRepository,
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
) *OrderUsecase {
	return &OrderUsecase{meja: meja, orders: orders, orderItems: orderItems}
}

// CartItemInput sudah dikoersi ke angka oleh handler (gaya JSON longgar
// client lama); harga yang bukan angka jatuh ke 0.
type CartItemInput struct {
	ProductID int64
	Quantity  int64
	Price     float64
}

type CreateOrderInput struct {
	CustomerName  string
	MejaID        int64
	MejaNomor     string
	PaymentMethod string
	Items         []CartItemInput
}

// OrderStatusOutput adalah payload data untuk create dan update status.
type OrderStatusOutput struct {
	ID     int64             `json:"id"`
	Status model.OrderStatus `json:"status"`
}

// Create menjalankan alur pembuatan pesanan. Urutan validasinya fail-fast:
// nama, meja, keranjang kosong, lalu item per item.
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (OrderStatusOutput, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "Nama pemesan wajib diisi")
	}
	if in.MejaID <= 0 && strings.TrimSpace(in.MejaNomor) == "" {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "Nomor meja wajib dipilih")
	}
	if len(in.Items) == 0 {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "Keranjang tidak boleh kosong")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "Item pesanan tidak valid")
		}
	}

	// Total dihitung di sini; total kiriman client diabaikan.
	totalAmount := calculateTotal(in.Items)

	meja, err := u.resolveMeja(ctx, in.MejaID, in.MejaNomor)
	if err != nil {
		return OrderStatusOutput{}, err
	}
	if meja.ID == 0 {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "Nomor meja tidak ditemukan")
	}

	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = defaultPaymentMethod
	}

	orderID, err := u.orders.Create(ctx, model.Order{
		CustomerName:  in.CustomerName,
		MejaID:        meja.ID,
		PaymentMethod: payment,
		Status:        model.OrderStatusPending,
		TotalAmount:   totalAmount,
	})
	if err != nil {
		return OrderStatusOutput{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal membuat pesanan", err)
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	if err := u.orderItems.CreateBulk(ctx, orderID, items); err != nil {
		// Kompensasi: header yang baru dibuat dihapus supaya tidak ada
		// pesanan tanpa item. Kegagalan hapusnya sendiri hanya dicatat;
		// caller tetap menerima error penyimpanan item yang asli.
		if derr := u.orders.DeleteByID(ctx, orderID); derr != nil {
			log.Warnf("kompensasi gagal, pesanan %d yatim tanpa item: %v", orderID, derr)
		}
		return OrderStatusOutput{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal menyimpan detail pesanan", err)
	}

	return OrderStatusOutput{ID: orderID, Status: model.OrderStatusPending}, nil
}

// resolveMeja mencari meja berdasarkan id atau nomor. Nomor yang belum ada
// dibuatkan row baru; kalah balapan dengan request lain (unique constraint)
// berarti row-nya sudah ada, jadi lookup diulang dan pemenangnya dipakai.
func (u *OrderUsecase) resolveMeja(ctx context.Context, mejaID int64, mejaNomor string) (model.Meja, error) {
	if mejaID > 0 {
		m, err := u.meja.FindByID(ctx, mejaID)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Meja{}, nil
		}
		if err != nil {
			return model.Meja{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal mengambil data meja", err)
		}
		return m, nil
	}

	nomor := strings.TrimSpace(mejaNomor)

	m, err := u.meja.FindByNomor(ctx, nomor)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Meja{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal mencari meja", err)
	}

	created, err := u.meja.Create(ctx, model.Meja{NomorMeja: nomor})
	if errors.Is(err, repo.ErrDuplicate) {
		winner, lerr := u.meja.FindByNomor(ctx, nomor)
		if lerr != nil {
			return model.Meja{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal menambahkan nomor meja", lerr)
		}
		return winner, nil
	}
	if err != nil {
		return model.Meja{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal menambahkan nomor meja", err)
	}
	return created, nil
}

// List mengembalikan semua pesanan (terbaru dulu) beserta meja dan itemnya,
// opsional difilter status persis.
func (u *OrderUsecase) List(ctx context.Context, status string) ([]model.Order, error) {
	orders, err := u.orders.List(ctx, status)
	if err != nil {
		return []model.Order{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal mengambil daftar pesanan", err)
	}
	return orders, nil
}

func (u *OrderUsecase) Detail(ctx context.Context, orderID int64) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPErrorWithCause(http.StatusNotFound, "Pesanan tidak ditemukan", err)
	}
	if err != nil {
		return model.Order{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal mengambil detail pesanan", err)
	}
	return o, nil
}

// UpdateStatus menerima salah satu dari pending/processing/completed dari
// status manapun; tidak ada paksaan maju-saja (client lama mengandalkan ini).
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderStatusOutput, error) {
	st := model.OrderStatus(status)
	if !st.IsValid() {
		return OrderStatusOutput{}, NewHTTPError(http.StatusBadRequest, "Status pesanan tidak valid")
	}

	if err := u.orders.UpdateStatus(ctx, orderID, st); err != nil {
		return OrderStatusOutput{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal memperbarui status pesanan", err)
	}

	return OrderStatusOutput{ID: orderID, Status: st}, nil
}

func calculateTotal(items []CartItemInput) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
