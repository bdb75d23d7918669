package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Response adalah envelope JSON yang dipakai semua endpoint:
// {status, pesan, data?, error?}. Endpoint /me memakai key "user".
type Response struct {
	Status bool        `json:"status"`
	Pesan  string      `json:"pesan"`
	Data   interface{} `json:"data,omitempty"`
	User   interface{} `json:"user,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func ok(c echo.Context, code int, pesan string, data interface{}) error {
	return c.JSON(code, Response{Status: true, Pesan: pesan, Data: data})
}

// writeError menerjemahkan HTTPError dari usecase ke envelope gagal;
// error tak dikenal jatuh ke 500 generik.
func writeError(c echo.Context, err error) error {
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, Response{Status: false, Pesan: he.Pesan, Error: he.Err})
	}
	return c.JSON(http.StatusInternalServerError, Response{Status: false, Pesan: "Terjadi kesalahan"})
}
