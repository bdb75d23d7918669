package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// CtxUserIDKey menyimpan user id (int64) hasil verifikasi token.
const CtxUserIDKey = "user_id"

type authErrorResponse struct {
	Status bool   `json:"status"`
	Pesan  string `json:"pesan"`
}

// AuthJWT memverifikasi access token. Urutan pencarian token mengikuti
// client lama: cookie "jwt", lalu "Authorization: Bearer", lalu header "jwt".
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawToken := extractToken(c)
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Pesan: "Unauthorized - Tidak ada token yang disediakan",
				})
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Pesan: "Unauthorized - Token Invalid",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Pesan: "Unauthorized - Token Invalid",
				})
			}

			userID, err := parseUserID(claims["sub"])
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, authErrorResponse{
					Pesan: "Unauthorized - Token Invalid",
				})
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie("jwt"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authz := c.Request().Header.Get("Authorization")
	if authz != "" {
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if tok := strings.TrimSpace(parts[1]); tok != "" {
				return tok
			}
		}
	}

	return c.Request().Header.Get("jwt")
}

// UserIDFromContext mengambil user id yang disimpan AuthJWT.
func UserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(CtxUserIDKey)
	id, ok := v.(int64)
	return id, ok
}

// sub di-encode ulang sebagai float64 oleh parser JSON
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
