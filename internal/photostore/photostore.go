// Package photostore holds the menu pages a user has captured but not yet
// analysed.
package photostore

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("page not found")

type PhotoStore interface {
	Save(ctx context.Context, prefix, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
