package handler

import (
	"net/http"
	"strconv"
	"strings"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.create)
	g.GET("/orders", h.list)
	g.GET("/orders/:id", h.detail)
	g.PATCH("/orders/:id/status", h.updateStatus)
}

// Client lama mengirim angka kadang sebagai string, jadi field numerik
// diterima longgar lalu dikoersi (bukan angka -> 0).
type orderItemRequest struct {
	ProductID interface{} `json:"product_id"`
	ID        interface{} `json:"id"`
	Quantity  interface{} `json:"quantity"`
	Price     interface{} `json:"price"`
}

type orderCreateRequest struct {
	CustomerName  string             `json:"customer_name"`
	MejaID        interface{}        `json:"meja_id"`
	MejaNomor     interface{}        `json:"meja_nomor"`
	PaymentMethod string             `json:"payment_method"`
	Items         []orderItemRequest `json:"items"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req orderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Body request tidak valid"})
	}

	items := make([]usecase.CartItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		productID := toNumber(it.ProductID)
		if productID == 0 {
			// fallback client lama: item.id dipakai kalau product_id kosong
			productID = toNumber(it.ID)
		}
		items = append(items, usecase.CartItemInput{
			ProductID: int64(productID),
			Quantity:  int64(toNumber(it.Quantity)),
			Price:     toNumber(it.Price),
		})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateOrderInput{
		CustomerName:  req.CustomerName,
		MejaID:        int64(toNumber(req.MejaID)),
		MejaNomor:     toText(req.MejaNomor),
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusCreated, "Pesanan berhasil dibuat", out)
}

func (h *OrderHandler) list(c echo.Context) error {
	status := c.QueryParam("status")

	out, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, "Berhasil mengambil daftar pesanan", out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, Response{Status: false, Pesan: "Pesanan tidak ditemukan"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, "Berhasil mengambil detail pesanan", out)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Response{
			Status: false,
			Pesan:  "Gagal memperbarui status pesanan",
			Error:  "id tidak valid",
		})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Status pesanan tidak valid"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, "Status pesanan berhasil diperbarui", out)
}

// toNumber meniru Number() milik JS: angka dipakai apa adanya, string
// numerik di-parse, selain itu 0.
func toNumber(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
