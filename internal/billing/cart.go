package billing

import "tableside/internal/domain"

// CartItem is one cart line: a menu item plus the ordered quantity.
// At most one line exists per menu item id.
type CartItem struct {
	domain.MenuItem
	Quantity int `json:"quantity"`
}

// LineTotal is the item price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart aggregates line items and derives subtotal, tax and total. It holds
// no persistence; orders are written only at checkout.
type Cart struct {
	items   []CartItem
	taxRate float64
}

func NewCart() *Cart {
	return NewCartWithTaxRate(TaxRate)
}

func NewCartWithTaxRate(rate float64) *Cart {
	return &Cart{taxRate: rate}
}

// AddItem appends a line for the item, or increments the existing line's
// quantity when the item is already in the cart. Quantities below one are
// treated as one.
func (c *Cart) AddItem(item domain.MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, CartItem{MenuItem: item, Quantity: quantity})
}

// UpdateQuantity sets the line quantity for the item. A quantity of zero or
// less removes the line.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the item if present.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful payment.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.LineTotal()
	}
	return sum
}

func (c *Cart) Tax() float64 {
	return c.Subtotal() * c.taxRate
}

func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax()
}

// ItemCount is the summed quantity across all lines, used for badge display.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}
