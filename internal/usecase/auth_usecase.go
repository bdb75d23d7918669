package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Umur token disamakan dengan umur cookie jwt milik client lama (7 hari).
const (
	accessTokenTTL  = 7 * 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
	bcryptCost      = 12
)

// AuthValidator memeriksa input sebelum menyentuh store.
type AuthValidator interface {
	ValidateRegister(email string, password string) error
	ValidateLogin(email string, password string) error
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	tokens    repo.RefreshTokenRepository
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	tokens repo.RefreshTokenRepository,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users, tokens: tokens, validator: validator}
}

// LoginResult membawa body respons plus refresh token plaintext untuk cookie.
type LoginResult struct {
	User              model.User
	AccessToken       string
	ExpiresIn         int
	RefreshTokenPlain string
}

func (u *AuthUsecase) Register(ctx context.Context, email string, password string) (model.User, error) {
	email = strings.TrimSpace(email)

	if err := u.validator.ValidateRegister(email, password); err != nil {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.User{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}

	user := model.User{Email: email, PasswordHash: string(hash)}
	if err := u.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.User{}, NewHTTPError(http.StatusUnauthorized, "Email sudah terdaftar")
		}
		return model.User{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}

	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if err := u.validator.ValidateLogin(email, password); err != nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		return LoginResult{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, NewHTTPError(http.StatusUnauthorized, "Email atau password salah")
	}

	accessToken, expiresIn, err := u.issueAccessToken(user)
	if err != nil {
		return LoginResult{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}

	refreshPlain := uuid.NewString()
	rt := model.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hashToken(refreshPlain),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := u.tokens.Create(ctx, &rt); err != nil {
		return LoginResult{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}

	// best-effort, kegagalan tidak menggagalkan login
	_ = u.users.UpdateLastLogin(ctx, user.ID)

	return LoginResult{
		User:              user,
		AccessToken:       accessToken,
		ExpiresIn:         expiresIn,
		RefreshTokenPlain: refreshPlain,
	}, nil
}

// Logout mencabut refresh token kalau ada; tanpa token tetap dianggap sukses
// (cookie dibersihkan oleh handler).
func (u *AuthUsecase) Logout(ctx context.Context, refreshTokenPlain string) error {
	if strings.TrimSpace(refreshTokenPlain) == "" {
		return nil
	}

	rt, err := u.tokens.FindByTokenHash(ctx, hashToken(refreshTokenPlain))
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}

	if err := u.tokens.DeleteByID(ctx, rt.ID); err != nil {
		return NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}
	return nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if err != nil {
		return model.User{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Terjadi kesalahan", err)
	}
	return user, nil
}

func (u *AuthUsecase) issueAccessToken(user model.User) (string, int, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int(accessTokenTTL.Seconds()), nil
}

// refresh token disimpan sebagai hash, plaintext hanya hidup di cookie
func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
