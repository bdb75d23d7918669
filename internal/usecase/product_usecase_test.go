package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type ImageStoreMock struct{ mock.Mock }

func (m *ImageStoreMock) Save(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *ImageStoreMock) {
	products := new(ProductRepoMock)
	images := new(ImageStoreMock)
	return usecase.NewProductUsecase(products, images), products, images
}

func TestProductDetail_NotFound(t *testing.T) {
	uc, products, _ := newProductUsecase()

	products.On("FindByID", mock.Anything, int64(8)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Detail(context.Background(), 8)
	he := assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Produk tidak ditemukan", he.Pesan)
}

func TestProductCreate_WithImage(t *testing.T) {
	uc, products, images := newProductUsecase()

	images.On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "produk/images/prod_") && strings.HasSuffix(name, ".png")
	}), []byte{1, 2, 3}).Return("/uploads/produk/images/prod_x.png", nil)

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Kopi Susu" && p.Image != nil && *p.Image == "/uploads/produk/images/prod_x.png"
	})).Return(model.Product{ID: 1, Name: "Kopi Susu"}, nil)

	out, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:  "Kopi Susu",
		Price: 18000,
		Image: &usecase.UploadedImage{Data: []byte{1, 2, 3}, ContentType: "image/png"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	images.AssertExpectations(t)
}

func TestProductCreate_UploadFailure(t *testing.T) {
	uc, products, images := newProductUsecase()

	images.On("Save", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unreachable"))

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:  "Kopi Susu",
		Image: &usecase.UploadedImage{Data: []byte{1}, ContentType: "image/png"},
	})
	he := assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Gagal upload gambar", he.Pesan)

	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUpdate_PartialFields(t *testing.T) {
	uc, products, _ := newProductUsecase()

	desc := "arabika"
	existing := model.Product{ID: 2, Name: "Kopi Hitam", Description: &desc, Price: 12000}
	products.On("FindByID", mock.Anything, int64(2)).Return(existing, nil)

	newPrice := 14000.0
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		// hanya price yang berubah
		return p.Price == 14000 && p.Name == "Kopi Hitam" && p.Description == &desc
	})).Return(model.Product{ID: 2, Name: "Kopi Hitam", Price: 14000}, nil)

	out, err := uc.Update(context.Background(), 2, usecase.UpdateProductInput{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 14000.0, out.Price)
	products.AssertExpectations(t)
}

// Upload base64 yang gagal tidak menggagalkan update; gambar lama tetap.
func TestProductUpdate_Base64UploadFailureKeepsOldImage(t *testing.T) {
	uc, products, images := newProductUsecase()

	oldImage := "/uploads/produk/images/prod_lama.jpg"
	products.On("FindByID", mock.Anything, int64(2)).
		Return(model.Product{ID: 2, Name: "Kopi Hitam", Image: &oldImage}, nil)
	images.On("Save", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unreachable"))
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Image != nil && *p.Image == oldImage
	})).Return(model.Product{ID: 2, Image: &oldImage}, nil)

	payload := base64.StdEncoding.EncodeToString([]byte("gambar-baru"))
	_, err := uc.Update(context.Background(), 2, usecase.UpdateProductInput{ImageBase64: payload})
	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestProductUpdate_Base64DataURIReplacesImage(t *testing.T) {
	uc, products, images := newProductUsecase()

	products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2}, nil)

	raw := []byte("isi-gambar")
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	images.On("Save", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, ".jpeg")
	}), raw).Return("/uploads/produk/images/prod_baru.jpeg", nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Image != nil && *p.Image == "/uploads/produk/images/prod_baru.jpeg"
	})).Return(model.Product{ID: 2}, nil)

	_, err := uc.Update(context.Background(), 2, usecase.UpdateProductInput{ImageBase64: payload})
	assert.NoError(t, err)
	images.AssertExpectations(t)
}

func TestProductDelete_NotFound(t *testing.T) {
	uc, products, _ := newProductUsecase()

	products.On("Delete", mock.Anything, int64(8)).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), 8)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
