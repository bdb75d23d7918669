package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	// Create mengembalikan ErrDuplicate kalau email sudah terdaftar.
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}
