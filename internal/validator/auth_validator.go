package validator

import (
	"errors"
	"regexp"
	"strings"

	"app/internal/usecase"
)

var (
	ErrEmailRequired    = errors.New("Email wajib diisi")
	ErrEmailInvalid     = errors.New("Format email tidak valid")
	ErrPasswordRequired = errors.New("Password wajib diisi")
	ErrPasswordTooShort = errors.New("Password minimal 6 karakter")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authValidator struct{}

func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

func (v *authValidator) ValidateRegister(email string, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return ErrEmailInvalid
	}
	if password == "" {
		return ErrPasswordRequired
	}
	// batas minimal yang sama dengan provider auth lama
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

func (v *authValidator) ValidateLogin(email string, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}
