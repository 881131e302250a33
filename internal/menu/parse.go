package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/vbonduro/menuscan/internal/domain"
)

const (
	defaultCategoryName = "General"
	defaultOriginalName = "Unknown"
)

type rawMenu struct {
	OrderingPhrase text          `json:"orderingPhrase"`
	Categories     []rawCategory `json:"categories"`
}

type rawCategory struct {
	Name  text      `json:"name"`
	Items []rawItem `json:"items"`
}

type rawItem struct {
	OriginalName   text            `json:"originalName"`
	TranslatedName text            `json:"translatedName"`
	Description    text            `json:"description"`
	Price          json.RawMessage `json:"price"`
}

// text accepts a JSON string, number or bool. Null, objects and arrays
// decode as empty text so the defaults apply.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case float64, bool:
		*t = text(fmt.Sprint(v))
	default:
		*t = ""
	}
	return nil
}

func (t text) clean() string {
	return norm.NFC.String(strings.TrimSpace(string(t)))
}

// StripCodeFence removes a surrounding ``` or ```json fence.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseResponse validates a raw model response and fills defaults. It is pure:
// now only seeds the item ids. Categories and items keep the model's order;
// categories sharing a name are not merged.
func ParseResponse(raw string, now time.Time) (*Result, error) {
	body := StripCodeFence(raw)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	var rm rawMenu
	if err := json.Unmarshal([]byte(body), &rm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	stamp := now.UnixNano()
	categories := make([]domain.MenuCategory, 0, len(rm.Categories))
	for ci, rc := range rm.Categories {
		cat := domain.MenuCategory{
			Name:  rc.Name.clean(),
			Items: make([]domain.MenuItem, 0, len(rc.Items)),
		}
		if cat.Name == "" {
			cat.Name = defaultCategoryName
		}
		for ii, ri := range rc.Items {
			cat.Items = append(cat.Items, normalizeItem(ri, fmt.Sprintf("item-%d-%d-%d", ci, ii, stamp)))
		}
		categories = append(categories, cat)
	}

	return &Result{
		Categories:     categories,
		OrderingPhrase: rm.OrderingPhrase.clean(),
		RawResponse:    raw,
	}, nil
}

func normalizeItem(ri rawItem, id string) domain.MenuItem {
	item := domain.MenuItem{
		ID:             id,
		OriginalName:   ri.OriginalName.clean(),
		TranslatedName: ri.TranslatedName.clean(),
		Description:    ri.Description.clean(),
		Price:          parsePrice(ri.Price),
	}
	if item.OriginalName == "" {
		item.OriginalName = defaultOriginalName
	}
	if item.TranslatedName == "" {
		item.TranslatedName = item.OriginalName
	}
	return item
}

// parsePrice accepts a JSON number or a numeric string. Anything else,
// including negative amounts, yields zero.
func parsePrice(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return decimal.Zero
	}

	var s string
	switch v := v.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return decimal.Zero
	}
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
