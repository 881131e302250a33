// Package session implements the per-visitor screen state machine and the
// in-memory store that holds it.
package session

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/menuscan/internal/cart"
	"github.com/vbonduro/menuscan/internal/domain"
	"github.com/vbonduro/menuscan/internal/i18n"
	"github.com/vbonduro/menuscan/internal/menu"
)

type Screen string

const (
	ScreenLanguage   Screen = "language"
	ScreenUpload     Screen = "upload"
	ScreenProcessing Screen = "processing"
	ScreenOrdering   Screen = "ordering"
	ScreenSummary    Screen = "summary"
)

var (
	ErrInvalidTransition = errors.New("action not allowed on the current screen")
	ErrUnknownLanguage   = errors.New("unsupported language")
	ErrNoPages           = errors.New("no menu pages captured")
	ErrTooManyPages      = errors.New("page limit reached")
	ErrUnknownPage       = errors.New("unknown page")
	ErrUnknownItem       = errors.New("unknown menu item")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotFound          = errors.New("session not found")
)

// Outcome describes what applying a finished analysis did to the session.
type Outcome struct {
	// Err is the analysis failure, nil when the model answered.
	Err error
	// Empty is set when the model answered without any menu items.
	Empty bool
	// Released lists pages the session no longer references.
	Released []domain.Page
}

// Session is not safe for concurrent use; Store serialises access.
type Session struct {
	id          string
	screen      Screen
	language    domain.LanguageOption
	hasLanguage bool
	pages       []domain.Page
	maxPages    int
	categories  []domain.MenuCategory
	itemIDs     map[string]struct{}
	phrase      string
	cart        *cart.Cart
	order       []domain.CartItem
	notice      i18n.Key
	analysis    *Analysis
}

func New(id string, maxPages int) *Session {
	return &Session{
		id:       id,
		screen:   ScreenLanguage,
		maxPages: maxPages,
		cart:     cart.New(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Screen() Screen { return s.screen }

func (s *Session) Notice() i18n.Key { return s.notice }

func (s *Session) Pages() []domain.Page {
	out := make([]domain.Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Language returns the chosen language, or false before one is selected.
func (s *Session) Language() (domain.LanguageOption, bool) {
	return s.language, s.hasLanguage
}

func (s *Session) require(screen Screen) error {
	if s.screen != screen {
		return ErrInvalidTransition
	}
	return nil
}

func (s *Session) SelectLanguage(code string) error {
	if err := s.require(ScreenLanguage); err != nil {
		return err
	}
	lang, ok := i18n.Find(code)
	if !ok {
		return ErrUnknownLanguage
	}
	s.language, s.hasLanguage = lang, true
	s.notice = ""
	s.screen = ScreenUpload
	return nil
}

// Back follows the back edge of the current screen. Menu, cart and language
// survive every back edge.
func (s *Session) Back() error {
	switch s.screen {
	case ScreenUpload:
		s.screen = ScreenLanguage
	case ScreenOrdering:
		s.screen = ScreenUpload
	case ScreenSummary:
		s.order = nil
		s.screen = ScreenOrdering
	default:
		return ErrInvalidTransition
	}
	s.notice = ""
	return nil
}

func (s *Session) AddPage(p domain.Page) error {
	if err := s.require(ScreenUpload); err != nil {
		return err
	}
	if len(s.pages) >= s.maxPages {
		return ErrTooManyPages
	}
	s.pages = append(s.pages, p)
	s.notice = ""
	return nil
}

func (s *Session) RemovePage(key string) (domain.Page, error) {
	if err := s.require(ScreenUpload); err != nil {
		return domain.Page{}, err
	}
	for i, p := range s.pages {
		if p.Key == key {
			s.pages = append(s.pages[:i:i], s.pages[i+1:]...)
			return p, nil
		}
	}
	return domain.Page{}, ErrUnknownPage
}

// HasPage reports whether key belongs to this session.
func (s *Session) HasPage(key string) bool {
	for _, p := range s.pages {
		if p.Key == key {
			return true
		}
	}
	return false
}

// BeginAnalysis validates the transition and then calls start with the
// captured pages and chosen language. The session only enters PROCESSING
// when start succeeds.
func (s *Session) BeginAnalysis(start func(pages []domain.Page, lang domain.LanguageOption) (*Analysis, error)) error {
	if err := s.require(ScreenUpload); err != nil {
		return err
	}
	if len(s.pages) == 0 {
		return ErrNoPages
	}
	a, err := start(s.Pages(), s.language)
	if err != nil {
		return err
	}
	s.analysis = a
	s.notice = ""
	s.screen = ScreenProcessing
	return nil
}

// CompleteAnalysis applies an analysis result. A menu with at least one item
// replaces the previous menu, clears the cart and moves to ORDERING. An error
// or an empty menu returns to UPLOAD with a notice and leaves the previous
// menu and cart alone.
func (s *Session) CompleteAnalysis(result *menu.Result, err error) (Outcome, error) {
	if err := s.require(ScreenProcessing); err != nil {
		return Outcome{}, err
	}
	s.analysis = nil

	if err != nil {
		s.notice = NoticeFor(err)
		s.screen = ScreenUpload
		return Outcome{Err: err}, nil
	}
	if result.Empty() {
		s.notice = i18n.NoticeNoItems
		s.screen = ScreenUpload
		return Outcome{Empty: true}, nil
	}

	s.categories = result.Categories
	s.itemIDs = make(map[string]struct{}, domain.ItemCount(result.Categories))
	for _, c := range result.Categories {
		for _, item := range c.Items {
			s.itemIDs[item.ID] = struct{}{}
		}
	}
	s.phrase = result.OrderingPhrase
	s.cart = cart.New()
	s.order = nil
	s.notice = ""
	s.screen = ScreenOrdering

	released := s.pages
	s.pages = nil
	return Outcome{Released: released}, nil
}

// Poll applies the pending analysis if it has finished. It reports false
// while nothing changed.
func (s *Session) Poll() (Outcome, bool) {
	if s.screen != ScreenProcessing || s.analysis == nil || !s.analysis.Finished() {
		return Outcome{}, false
	}
	out, err := s.CompleteAnalysis(s.analysis.Result())
	if err != nil {
		return Outcome{}, false
	}
	return out, true
}

func (s *Session) knownItem(itemID string) error {
	if _, ok := s.itemIDs[itemID]; !ok {
		return ErrUnknownItem
	}
	return nil
}

func (s *Session) Increment(itemID string) error {
	if err := s.require(ScreenOrdering); err != nil {
		return err
	}
	if err := s.knownItem(itemID); err != nil {
		return err
	}
	s.cart.Increment(itemID)
	return nil
}

func (s *Session) Decrement(itemID string) error {
	if err := s.require(ScreenOrdering); err != nil {
		return err
	}
	if err := s.knownItem(itemID); err != nil {
		return err
	}
	s.cart.Decrement(itemID)
	return nil
}

// Proceed snapshots the cart into the order shown on the summary screen.
func (s *Session) Proceed() error {
	if err := s.require(ScreenOrdering); err != nil {
		return err
	}
	if s.cart.Empty() {
		return ErrEmptyCart
	}
	s.order = s.cart.Items(s.categories)
	s.notice = ""
	s.screen = ScreenSummary
	return nil
}

// Reset returns to the initial state from any screen and hands back the
// pages the caller should release. A pending analysis is abandoned.
func (s *Session) Reset() []domain.Page {
	released := s.pages
	*s = Session{
		id:       s.id,
		screen:   ScreenLanguage,
		maxPages: s.maxPages,
		cart:     cart.New(),
	}
	return released
}

// View is a read-only copy of the session for rendering.
type View struct {
	ID             string
	Screen         Screen
	Language       domain.LanguageOption
	HasLanguage    bool
	Pages          []domain.Page
	MaxPages       int
	Categories     []domain.MenuCategory
	OrderingPhrase string
	Quantities     map[string]int
	CartItems      []domain.CartItem
	TotalItems     int
	TotalPrice     decimal.Decimal
	Order          []domain.CartItem
	OrderTotal     decimal.Decimal
	Notice         i18n.Key
}

// Code returns the language code to render with.
func (v View) Code() string {
	if v.HasLanguage {
		return v.Language.Code
	}
	return i18n.DefaultCode
}

func (s *Session) Snapshot() View {
	v := View{
		ID:             s.id,
		Screen:         s.screen,
		Language:       s.language,
		HasLanguage:    s.hasLanguage,
		Pages:          s.Pages(),
		MaxPages:       s.maxPages,
		Categories:     s.categories,
		OrderingPhrase: s.phrase,
		Quantities:     s.cart.Quantities(),
		CartItems:      s.cart.Items(s.categories),
		TotalItems:     s.cart.TotalItems(),
		TotalPrice:     s.cart.TotalPrice(s.categories),
		Notice:         s.notice,
		OrderTotal:     decimal.Zero,
	}
	if s.order != nil {
		v.Order = make([]domain.CartItem, len(s.order))
		copy(v.Order, s.order)
		for _, item := range s.order {
			v.OrderTotal = v.OrderTotal.Add(item.Subtotal())
		}
	}
	return v
}

// NoticeFor maps an analysis failure to the notice shown on the upload screen.
func NoticeFor(err error) i18n.Key {
	switch {
	case errors.Is(err, menu.ErrMissingCredential):
		return i18n.NoticeMissingKey
	case errors.Is(err, menu.ErrInvalidCredential):
		return i18n.NoticeInvalidKey
	default:
		return i18n.NoticeError
	}
}
