package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vbonduro/menuscan/internal/domain"
	"github.com/vbonduro/menuscan/internal/menu"
	"github.com/vbonduro/menuscan/internal/photostore"
	"github.com/vbonduro/menuscan/internal/session"
)

// OrderService drives one visitor's flow from language choice to the order
// summary. It owns the session store and releases captured pages whenever a
// session stops referencing them.
type OrderService struct {
	sessions *session.Store
	pages    photostore.PhotoStore
	analyzer menu.Analyzer
	logger   *slog.Logger
}

func NewOrderService(
	pages photostore.PhotoStore,
	analyzer menu.Analyzer,
	sessionTTL time.Duration,
	maxPages int,
	logger *slog.Logger,
) *OrderService {
	s := &OrderService{
		pages:    pages,
		analyzer: analyzer,
		logger:   logger,
	}
	s.sessions = session.NewStore(sessionTTL, maxPages, func(released []domain.Page) {
		s.logger.Info("session evicted", "pages_released", len(released))
		s.releasePages(context.Background(), released)
	})
	return s
}

// Start creates a session on the language screen.
func (s *OrderService) Start(ctx context.Context) string {
	id := s.sessions.Create()
	s.logger.Debug("session started", "session_id", id)
	return id
}

func (s *OrderService) View(ctx context.Context, sessionID string) (session.View, error) {
	return s.sessions.View(sessionID)
}

// update applies fn and returns the resulting snapshot.
func (s *OrderService) update(sessionID string, fn func(*session.Session) error) (session.View, error) {
	var v session.View
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		v = sess.Snapshot()
		return nil
	})
	return v, err
}

func (s *OrderService) SelectLanguage(ctx context.Context, sessionID, code string) (session.View, error) {
	v, err := s.update(sessionID, func(sess *session.Session) error { return sess.SelectLanguage(code) })
	if err == nil {
		s.logger.Info("language selected", "session_id", sessionID, "language", code)
	}
	return v, err
}

func (s *OrderService) Back(ctx context.Context, sessionID string) (session.View, error) {
	return s.update(sessionID, (*session.Session).Back)
}

// AddPage stores a captured page and attaches it to the session.
func (s *OrderService) AddPage(ctx context.Context, sessionID string, data []byte, mimeType string) (domain.Page, error) {
	key, err := s.pages.Save(ctx, "page_"+sessionID, mimeType, bytes.NewReader(data))
	if err != nil {
		return domain.Page{}, fmt.Errorf("failed to save page: %w", err)
	}
	page := domain.Page{Key: key, MimeType: mimeType}

	if err := s.sessions.Update(sessionID, func(sess *session.Session) error { return sess.AddPage(page) }); err != nil {
		s.releasePages(ctx, []domain.Page{page})
		return domain.Page{}, err
	}
	s.logger.Debug("page added", "session_id", sessionID, "storage_key", key, "mime_type", mimeType, "bytes", len(data))
	return page, nil
}

func (s *OrderService) RemovePage(ctx context.Context, sessionID, key string) (session.View, error) {
	var removed domain.Page
	v, err := s.update(sessionID, func(sess *session.Session) error {
		p, err := sess.RemovePage(key)
		removed = p
		return err
	})
	if err != nil {
		return v, err
	}
	s.releasePages(ctx, []domain.Page{removed})
	return v, nil
}

// PageImage opens a page owned by the session. Keys belonging to other
// sessions report session.ErrUnknownPage.
func (s *OrderService) PageImage(ctx context.Context, sessionID, key string) (io.ReadCloser, string, error) {
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if !sess.HasPage(key) {
			return session.ErrUnknownPage
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return s.pages.Get(ctx, key)
}

// Analyze moves the session to PROCESSING and starts the analysis in the
// background. Call Poll to apply its result. Page bytes are read outside the
// store lock; if the pages change meanwhile the call fails with
// session.ErrInvalidTransition.
func (s *OrderService) Analyze(ctx context.Context, sessionID string) (session.View, error) {
	var pages []domain.Page
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if sess.Screen() != session.ScreenUpload {
			return session.ErrInvalidTransition
		}
		pages = sess.Pages()
		if len(pages) == 0 {
			return session.ErrNoPages
		}
		return nil
	})
	if err != nil {
		return session.View{}, err
	}

	images, err := s.loadImages(ctx, pages)
	if errors.Is(err, photostore.ErrNotFound) {
		// A page was removed or released while loading.
		return session.View{}, session.ErrInvalidTransition
	}
	if err != nil {
		return session.View{}, err
	}

	return s.update(sessionID, func(sess *session.Session) error {
		return sess.BeginAnalysis(func(current []domain.Page, lang domain.LanguageOption) (*session.Analysis, error) {
			if !samePages(pages, current) {
				return nil, session.ErrInvalidTransition
			}
			s.logger.Info("menu analysis started", "session_id", sessionID, "pages", len(images), "language", lang.Code)
			return session.StartAnalysis(ctx, func(ctx context.Context) (*menu.Result, error) {
				start := time.Now()
				result, err := s.analyzer.Analyze(ctx, images, lang.Label)
				if err != nil {
					s.logger.Error("menu analysis failed", "session_id", sessionID, "duration", time.Since(start), "error", err)
					return nil, err
				}
				s.logger.Info("menu analysis complete", "session_id", sessionID, "duration", time.Since(start),
					"categories", len(result.Categories), "items", domain.ItemCount(result.Categories))
				return result, nil
			}), nil
		})
	})
}

func samePages(a, b []domain.Page) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
	}
	return true
}

func (s *OrderService) loadImages(ctx context.Context, pages []domain.Page) ([]menu.Image, error) {
	images := make([]menu.Image, 0, len(pages))
	for _, p := range pages {
		rc, mimeType, err := s.pages.Get(ctx, p.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to load page %s: %w", p.Key, err)
		}
		data, err := io.ReadAll(rc)
		closeWithLog(rc, s.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %s: %w", p.Key, err)
		}
		images = append(images, menu.Image{Data: data, MimeType: mimeType})
	}
	return images, nil
}

// Poll applies a finished analysis and reports whether the screen changed.
func (s *OrderService) Poll(ctx context.Context, sessionID string) (session.View, bool, error) {
	var (
		out     session.Outcome
		changed bool
	)
	v, err := s.update(sessionID, func(sess *session.Session) error {
		out, changed = sess.Poll()
		return nil
	})
	if err != nil || !changed {
		return v, false, err
	}

	switch {
	case out.Err != nil:
		s.logger.Warn("analysis returned to upload", "session_id", sessionID, "notice", v.Notice, "error", out.Err)
	case out.Empty:
		s.logger.Warn("analysis found no menu items", "session_id", sessionID)
	}
	s.releasePages(ctx, out.Released)
	return v, true, nil
}

func (s *OrderService) Increment(ctx context.Context, sessionID, itemID string) (session.View, error) {
	return s.update(sessionID, func(sess *session.Session) error { return sess.Increment(itemID) })
}

func (s *OrderService) Decrement(ctx context.Context, sessionID, itemID string) (session.View, error) {
	return s.update(sessionID, func(sess *session.Session) error { return sess.Decrement(itemID) })
}

func (s *OrderService) Proceed(ctx context.Context, sessionID string) (session.View, error) {
	v, err := s.update(sessionID, (*session.Session).Proceed)
	if err == nil {
		s.logger.Info("order ready", "session_id", sessionID, "items", v.TotalItems, "total", v.OrderTotal.String())
	}
	return v, err
}

func (s *OrderService) Reset(ctx context.Context, sessionID string) (session.View, error) {
	var released []domain.Page
	v, err := s.update(sessionID, func(sess *session.Session) error {
		released = sess.Reset()
		return nil
	})
	if err != nil {
		return v, err
	}
	s.releasePages(ctx, released)
	return v, nil
}

func (s *OrderService) releasePages(ctx context.Context, pages []domain.Page) {
	for _, p := range pages {
		if err := s.pages.Delete(ctx, p.Key); err != nil && !errors.Is(err, photostore.ErrNotFound) {
			s.logger.Error("failed to delete page", "storage_key", p.Key, "error", err)
		}
	}
}

func closeWithLog(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close", "error", err)
	}
}
