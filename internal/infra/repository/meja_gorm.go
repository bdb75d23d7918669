package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type MejaGormRepository struct {
	db *gorm.DB
}

func NewMejaGormRepository(db *gorm.DB) *MejaGormRepository {
	return &MejaGormRepository{db: db}
}

func (r *MejaGormRepository) FindByID(ctx context.Context, mejaID int64) (model.Meja, error) {
	var m model.Meja
	err := r.db.WithContext(ctx).First(&m, mejaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Meja{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Meja{}, err
	}
	return m, nil
}

func (r *MejaGormRepository) FindByNomor(ctx context.Context, nomor string) (model.Meja, error) {
	var m model.Meja
	err := r.db.WithContext(ctx).Where("nomor_meja = ?", nomor).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Meja{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Meja{}, err
	}
	return m, nil
}

func (r *MejaGormRepository) Create(ctx context.Context, meja model.Meja) (model.Meja, error) {
	if err := r.db.WithContext(ctx).Create(&meja).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Meja{}, repo.ErrDuplicate
		}
		return model.Meja{}, err
	}
	return meja, nil
}

// isUniqueViolation mengenali pelanggaran unique constraint Postgres (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
