package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalImageStore menyimpan gambar di disk dan melayani URL publiknya
// lewat route statis /uploads (pengganti bucket object storage).
type LocalImageStore struct {
	dir     string
	baseURL string
}

func NewLocalImageStore(dir string, baseURL string) *LocalImageStore {
	return &LocalImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save menulis data ke <dir>/<name> dan mengembalikan URL publiknya.
// name boleh mengandung subdirektori, mis. "produk/images/prod_x.jpg".
func (s *LocalImageStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.baseURL + "/" + path.Clean(name), nil
}
