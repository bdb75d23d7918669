package handler

import (
	"io"
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/:id", h.detail)
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.remove)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, "Berhasil mengambil semua produk", out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, Response{Status: false, Pesan: "Produk tidak ditemukan"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, "Berhasil mengambil produk", out)
}

// create menerima multipart form: name, description, price, category,
// dan file "image" (opsional).
func (h *ProductHandler) create(c echo.Context) error {
	in := usecase.CreateProductInput{
		Name:  c.FormValue("name"),
		Price: toNumber(c.FormValue("price")),
	}
	if v := c.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := c.FormValue("category"); v != "" {
		in.Category = &v
	}

	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Gagal upload gambar", Error: err.Error()})
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Gagal upload gambar", Error: err.Error()})
		}

		in.Image = &usecase.UploadedImage{
			Data:        data,
			ContentType: fh.Header.Get("Content-Type"),
		}
	}

	out, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, "Produk berhasil ditambahkan", out)
}

type productUpdateRequest struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Price       interface{} `json:"price"`
	Image       *string     `json:"image"`
	ImageBase64 string      `json:"imageBase64"`
	Category    *string     `json:"category"`
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, Response{Status: false, Pesan: "Produk tidak ditemukan"})
	}

	var req productUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Response{Status: false, Pesan: "Body request tidak valid"})
	}

	in := usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ImageBase64: req.ImageBase64,
		Category:    req.Category,
	}
	// price undefined berarti jangan disentuh
	if req.Price != nil {
		p := toNumber(req.Price)
		in.Price = &p
	}

	out, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, "Produk berhasil diperbarui", out)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, Response{Status: false, Pesan: "Produk tidak ditemukan"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Response{Status: true, Pesan: "Produk berhasil dihapus"})
}
