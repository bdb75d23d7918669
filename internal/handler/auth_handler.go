package handler

import (
	"net/http"
	"time"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

const authCookieTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group, authMW echo.MiddlewareFunc) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/me", h.me, authMW)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Body request tidak valid"})
	}

	user, err := h.uc.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	// pesan mengikuti respons register versi lama
	return ok(c, http.StatusCreated, "Berhasil Login", user)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Body request tidak valid"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	setAuthCookie(c, "jwt", out.AccessToken, authCookieTTL)
	setAuthCookie(c, "jwt_refresh", out.RefreshTokenPlain, authCookieTTL)

	return ok(c, http.StatusCreated, "Berhasil Login", echo.Map{
		"user":         out.User,
		"access_token": out.AccessToken,
		"expires_in":   out.ExpiresIn,
	})
}

func (h *AuthHandler) logout(c echo.Context) error {
	refresh := ""
	if cookie, err := c.Cookie("jwt_refresh"); err == nil {
		refresh = cookie.Value
	}

	if err := h.uc.Logout(c.Request().Context(), refresh); err != nil {
		return writeError(c, err)
	}

	clearAuthCookie(c, "jwt")
	clearAuthCookie(c, "jwt_refresh")

	return c.JSON(http.StatusOK, Response{Status: true, Pesan: "Berhasil Keluar"})
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, hasID := middleware.UserIDFromContext(c)
	if !hasID {
		return c.JSON(http.StatusUnauthorized, Response{Status: false, Pesan: "Unauthorized"})
	}

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Status: true,
		Pesan:  "Berhasil Mengambil Data User",
		User:   user,
	})
}

// Cookie sengaja tidak httpOnly/secure, sama dengan setting deploy lama
// (frontend membaca token dari cookie).
func setAuthCookie(c echo.Context, name string, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: false,
		Secure:   false,
	})
}

func clearAuthCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
