// Package menu defines the menu-analysis contract shared by every model
// backend: the request shape, the normalised result and the error taxonomy.
package menu

import (
	"context"
	"errors"

	"github.com/vbonduro/menuscan/internal/domain"
)

var (
	// ErrMissingCredential means the backend has no usable API key. It is
	// returned before any request is sent.
	ErrMissingCredential = errors.New("menu analysis api key is not configured")

	// ErrInvalidCredential means the upstream service refused the API key.
	ErrInvalidCredential = errors.New("menu analysis api key was rejected")

	// ErrUpstream wraps any other upstream rejection or transport failure.
	ErrUpstream = errors.New("menu analysis request failed")

	ErrEmptyResponse     = errors.New("model returned an empty response")
	ErrMalformedResponse = errors.New("model returned malformed menu data")
	ErrNoImages          = errors.New("no menu images to analyze")
)

// Image is one captured menu page.
type Image struct {
	Data     []byte
	MimeType string
}

// Analyzer extracts and translates menu items from one or more page images.
// All images are submitted in a single request; merging multi-page menus is
// left to the model.
type Analyzer interface {
	Analyze(ctx context.Context, images []Image, targetLanguage string) (*Result, error)
}

type Result struct {
	Categories     []domain.MenuCategory
	OrderingPhrase string
	RawResponse    string
}

// Empty reports whether the result holds no menu items at all.
func (r *Result) Empty() bool {
	return r == nil || domain.ItemCount(r.Categories) == 0
}

// Unavailable is the Analyzer used when the configured backend cannot be
// constructed. Every call fails with Err so the rest of the application
// keeps working.
type Unavailable struct {
	Err error
}

func (u Unavailable) Analyze(context.Context, []Image, string) (*Result, error) {
	return nil, u.Err
}

// CheckImages rejects an empty image set.
func CheckImages(images []Image) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	return nil
}
