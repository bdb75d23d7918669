package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type WelcomeHandler struct{}

func NewWelcomeHandler() *WelcomeHandler { return &WelcomeHandler{} }

func (h *WelcomeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/welcome", h.welcome)
}

func (h *WelcomeHandler) welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{
		Status: true,
		Pesan:  "Selamat datang di API Kopi Senja",
	})
}
