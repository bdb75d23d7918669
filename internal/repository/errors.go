package repository

import "errors"

var (
	// ErrNotFound menyatukan "row tidak ditemukan" lintas repository.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate dikembalikan saat insert melanggar unique constraint
	// (mis. dua request bersamaan membuat meja dengan nomor yang sama).
	ErrDuplicate = errors.New("duplicate")
)
