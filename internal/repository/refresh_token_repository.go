package repository

import (
	"context"

	"app/internal/domain/model"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, rt *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (model.RefreshToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
