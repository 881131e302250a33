package domain

import "github.com/shopspring/decimal"

// MenuItem is immutable once produced by the menu analyzer. ID is unique
// within one analysis result.
type MenuItem struct {
	ID             string
	OriginalName   string
	TranslatedName string
	Description    string
	Price          decimal.Decimal
}

type MenuCategory struct {
	Name  string
	Items []MenuItem
}

type CartItem struct {
	MenuItem
	Quantity int
}

func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type LanguageOption struct {
	Code        string
	Label       string
	NativeLabel string
}

// Page references a captured menu page held in the photo store.
type Page struct {
	Key      string
	MimeType string
}

// ItemCount returns the number of items across all categories.
func ItemCount(categories []MenuCategory) int {
	n := 0
	for _, c := range categories {
		n += len(c.Items)
	}
	return n
}
