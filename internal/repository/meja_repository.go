package repository

import (
	"context"

	"app/internal/domain/model"
)

type MejaRepository interface {
	FindByID(ctx context.Context, mejaID int64) (model.Meja, error)
	FindByNomor(ctx context.Context, nomor string) (model.Meja, error)
	// Create mengembalikan ErrDuplicate kalau nomor meja sudah ada.
	Create(ctx context.Context, meja model.Meja) (model.Meja, error)
}
