// Package cart accumulates per-item quantities for an order in progress.
//
// The cart only stores item ids and quantities. Totals and the ordered item
// list are derived from the menu categories on every call and never cached.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/vbonduro/menuscan/internal/domain"
)

// Cart maps item ids to positive quantities. An absent id means zero; the map
// never holds a value <= 0.
type Cart struct {
	quantities map[string]int
}

func New() *Cart {
	return &Cart{quantities: make(map[string]int)}
}

// Increment raises the quantity of itemID by one, inserting it at one.
func (c *Cart) Increment(itemID string) {
	c.quantities[itemID]++
}

// Decrement lowers the quantity of itemID by one and removes the entry when
// it reaches zero. Decrementing an absent item is a no-op.
func (c *Cart) Decrement(itemID string) {
	q, ok := c.quantities[itemID]
	if !ok {
		return
	}
	if q <= 1 {
		delete(c.quantities, itemID)
		return
	}
	c.quantities[itemID] = q - 1
}

func (c *Cart) Quantity(itemID string) int {
	return c.quantities[itemID]
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, q := range c.quantities {
		n += q
	}
	return n
}

// TotalPrice sums price x quantity over every item in categories.
func (c *Cart) TotalPrice(categories []domain.MenuCategory) decimal.Decimal {
	total := decimal.Zero
	for _, cat := range categories {
		for _, item := range cat.Items {
			q := c.quantities[item.ID]
			if q == 0 {
				continue
			}
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(q))))
		}
	}
	return total
}

// Items lists the items with a non-zero quantity in category and declaration
// order.
func (c *Cart) Items(categories []domain.MenuCategory) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(c.quantities))
	for _, cat := range categories {
		for _, item := range cat.Items {
			if q := c.quantities[item.ID]; q > 0 {
				items = append(items, domain.CartItem{MenuItem: item, Quantity: q})
			}
		}
	}
	return items
}

// Quantities returns a copy of the quantity map.
func (c *Cart) Quantities() map[string]int {
	out := make(map[string]int, len(c.quantities))
	for id, q := range c.quantities {
		out[id] = q
	}
	return out
}

func (c *Cart) Empty() bool {
	return len(c.quantities) == 0
}
