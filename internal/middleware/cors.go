package middleware

import (
	"regexp"

	"app/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Pola origin yang diizinkan selain CLIENT_ORIGIN: preview Vercel dan
// akses dari jaringan lokal (HP kasir di wifi kedai).
var allowedOriginRes = []*regexp.Regexp{
	regexp.MustCompile(`^https://.*\.vercel\.app$`),
	regexp.MustCompile(`^http://10\.\d+\.\d+\.\d+:5173$`),
	regexp.MustCompile(`^http://192\.168\.\d+\.\d+:5173$`),
	regexp.MustCompile(`^http://172\.\d+\.\d+\.\d+:5173$`),
}

func CORS(cfg config.Config) echo.MiddlewareFunc {
	allowed := map[string]bool{
		cfg.ClientOrigin:        true,
		"http://localhost:5173": true,
	}

	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			if allowed[origin] {
				return true, nil
			}
			for _, re := range allowedOriginRes {
				if re.MatchString(origin) {
					return true, nil
				}
			}
			return false, nil
		},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "jwt"},
		AllowCredentials: true,
	})
}
