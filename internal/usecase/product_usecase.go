package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// ImageStore menyimpan gambar produk dan mengembalikan URL publiknya.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

type ProductUsecase struct {
	products repo.ProductRepository
	images   ImageStore
}

func NewProductUsecase(products repo.ProductRepository, images ImageStore) *ProductUsecase {
	return &ProductUsecase{products: products, images: images}
}

type UploadedImage struct {
	Data        []byte
	ContentType string
}

type CreateProductInput struct {
	Name        string
	Description *string
	Price       float64
	Category    *string
	Image       *UploadedImage
}

// UpdateProductInput: field nil tidak disentuh (partial update).
// ImageBase64 (kalau ada) di-upload menggantikan gambar lama.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	ImageBase64 string
	Category    *string
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal mengambil data produk", err)
	}
	return products, nil
}

func (u *ProductUsecase) Detail(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPErrorWithCause(http.StatusNotFound, "Produk tidak ditemukan", err)
	}
	if err != nil {
		return model.Product{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal mengambil produk", err)
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	var imageURL *string

	if in.Image != nil {
		url, err := u.images.Save(ctx, imageName(in.Image.ContentType), in.Image.Data)
		if err != nil {
			return model.Product{}, NewHTTPErrorWithCause(http.StatusBadRequest, "Gagal upload gambar", err)
		}
		imageURL = &url
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       imageURL,
		Category:    in.Category,
	})
	if err != nil {
		return model.Product{}, NewHTTPErrorWithCause(http.StatusBadRequest, "Gagal menambahkan produk", err)
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPErrorWithCause(http.StatusNotFound, "Produk tidak ditemukan", err)
	}
	if err != nil {
		return model.Product{}, NewHTTPErrorWithCause(http.StatusInternalServerError, "Gagal memperbarui produk", err)
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = in.Category
	}
	if in.Image != nil {
		p.Image = in.Image
	}

	if in.ImageBase64 != "" {
		// Upload yang gagal tidak menggagalkan update; gambar lama dipertahankan.
		if url, uerr := u.uploadBase64(ctx, in.ImageBase64); uerr != nil {
			log.Warnf("upload gambar produk %d gagal, lanjut tanpa ganti gambar: %v", productID, uerr)
		} else {
			p.Image = &url
		}
	}

	updated, err := u.products.Update(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPErrorWithCause(http.StatusBadRequest, "Gagal memperbarui produk", err)
	}
	return updated, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	err := u.products.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPErrorWithCause(http.StatusNotFound, "Produk tidak ditemukan", err)
	}
	if err != nil {
		return NewHTTPErrorWithCause(http.StatusBadRequest, "Gagal menghapus produk", err)
	}
	return nil
}

// uploadBase64 menerima data URI ("data:image/jpeg;base64,...") maupun
// base64 polos, disimpan sebagai jpg.
func (u *ProductUsecase) uploadBase64(ctx context.Context, payload string) (string, error) {
	raw := payload
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", err
	}
	return u.images.Save(ctx, imageName("image/jpeg"), data)
}

// imageName membentuk path file upload: produk/images/prod_<uuid>.<ext>
func imageName(contentType string) string {
	ext := "jpg"
	if i := strings.IndexByte(contentType, '/'); i >= 0 && i+1 < len(contentType) {
		ext = contentType[i+1:]
	}
	return "produk/images/prod_" + uuid.NewString() + "." + ext
}
