package server

import (
	"app/internal/config"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	api := e.Group("/api")

	h.Welcome.RegisterRoutes(api)
	h.Auth.RegisterRoutes(api, middleware.AuthJWT(cfg))
	h.Product.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)
}
