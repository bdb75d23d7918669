package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	// DeleteByID adalah jalur kompensasi: menghapus header pesanan yang
	// item-nya gagal tersimpan.
	DeleteByID(ctx context.Context, orderID int64) error
	// FindByID memuat pesanan beserta meja dan item+produknya.
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// List mengembalikan semua pesanan (terbaru dulu), opsional difilter status.
	List(ctx context.Context, status string) ([]model.Order, error)
	// UpdateStatus mengganti status dan menyegarkan updated_at.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
