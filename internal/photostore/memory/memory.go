package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/vbonduro/menuscan/internal/photostore"
)

type page struct {
	mimeType string
	data     []byte
}

// PhotoStore keeps captured pages in process memory. Nothing is written to
// disk; pages vanish with the process.
type PhotoStore struct {
	mu    sync.RWMutex
	pages map[string]page
}

func NewPhotoStore() *PhotoStore {
	return &PhotoStore{pages: make(map[string]page)}
}

func (s *PhotoStore) Save(ctx context.Context, prefix, mimeType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	key := prefix + "_" + uuid.NewString()

	s.mu.Lock()
	s.pages[key] = page{mimeType: mimeType, data: data}
	s.mu.Unlock()
	return key, nil
}

func (s *PhotoStore) Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	p, ok := s.pages[storageKey]
	s.mu.RUnlock()
	if !ok {
		return nil, "", photostore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(p.data)), p.mimeType, nil
}

func (s *PhotoStore) Delete(ctx context.Context, storageKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[storageKey]; !ok {
		return photostore.ErrNotFound
	}
	delete(s.pages, storageKey)
	return nil
}

// Len reports how many pages are held.
func (s *PhotoStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}
