package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one product entry in a cart. Price is the effective unit price
// snapshotted when the product was last added or updated.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// Cart aggregates a session's pending lines. All mutations keep at most one
// line per product.
type Cart struct {
	SessionID string `json:"session_id"`
	Lines     []Line `json:"lines"`
}

// NewCart returns an empty cart for the session.
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Lines: []Line{}}
}

// AddItem merges quantity into an existing line or appends a new one,
// refreshing the snapshotted price either way. A non-positive quantity is a
// no-op.
func (c *Cart) AddItem(line Line) {
	if line.Quantity <= 0 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			c.Lines[i].Price = line.Price
			c.Lines[i].Name = line.Name
			c.Lines[i].ImageURL = line.ImageURL
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// UpdateQuantity sets the quantity of a product's line. Quantities below one
// remove the line. Returns false when the product is not in the cart.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if quantity < 1 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// RemoveItem drops a product's line. Returns false when absent.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

// TotalItems sums the quantities across lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price x quantity across lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
