package cart

import (
	"errors"

	"freshsprout-be/pkg/schedule"
)

var ErrEmptyCart = errors.New("cart is empty")

// Line is a snapshot of a product at the moment it was added: the price the
// customer saw, not a live reference to the catalog row.
type Line struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is a slug-keyed collection of lines. Lines are kept in insertion order
// and there is never more than one line per slug.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Totals are the derived values recomputed on every mutation.
type Totals struct {
	ItemCount   int     `json:"item_count"`
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

// AddItem merges into an existing line (incrementing quantity) or appends a
// new one. Quantities below 1 are treated as 1.
func (c *Cart) AddItem(slug, name string, unitPrice float64, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Slug == slug {
			c.Lines[i].Quantity += qty
			return
		}
	}
	c.Lines = append(c.Lines, Line{Slug: slug, Name: name, UnitPrice: unitPrice, Quantity: qty})
}

// UpdateQuantity sets the quantity for a slug. A quantity of zero or less
// removes the line. Unknown slugs are a no-op.
func (c *Cart) UpdateQuantity(slug string, qty int) {
	if qty <= 0 {
		c.RemoveItem(slug)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Slug == slug {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) RemoveItem(slug string) {
	for i := range c.Lines {
		if c.Lines[i].Slug == slug {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Totals derives item count, subtotal, shipping fee and total. The shipping
// rule comes from the delivery schedule so the boundary semantics live in one
// place.
func (c *Cart) Totals(cfg schedule.Config) Totals {
	var t Totals
	for _, l := range c.Lines {
		t.ItemCount += l.Quantity
		t.Subtotal += l.UnitPrice * float64(l.Quantity)
	}
	t.ShippingFee = cfg.ShippingFee(t.Subtotal)
	t.Total = t.Subtotal + t.ShippingFee
	return t
}
