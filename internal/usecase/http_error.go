package usecase

import (
	"errors"
	"fmt"
)

// HTTPError membawa status HTTP plus pesan untuk envelope respons.
// Err diisi pesan error dari store (field "error" di envelope), opsional.
type HTTPError struct {
	Status int
	Pesan  string
	Err    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Pesan)
}

func NewHTTPError(status int, pesan string) error {
	return &HTTPError{Status: status, Pesan: pesan}
}

// NewHTTPErrorWithCause melampirkan pesan error asli dari store.
func NewHTTPErrorWithCause(status int, pesan string, cause error) error {
	he := &HTTPError{Status: status, Pesan: pesan}
	if cause != nil {
		he.Err = cause.Error()
	}
	return he
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
