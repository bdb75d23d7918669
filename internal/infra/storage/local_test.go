package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"app/internal/infra/storage"

	"github.com/stretchr/testify/assert"
)

func TestLocalImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewLocalImageStore(dir, "/uploads/")

	url, err := store.Save(context.Background(), "produk/images/prod_x.png", []byte{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/produk/images/prod_x.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "produk", "images", "prod_x.png"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestLocalImageStore_CancelledContext(t *testing.T) {
	store := storage.NewLocalImageStore(t.TempDir(), "/uploads")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "produk/images/prod_x.png", []byte{1})
	assert.Error(t, err)
}
