package domain

import "time"

// Line item option defaults applied when a product carries no size or color
// choices.
const (
	DefaultSize  = "One Size"
	DefaultColor = "Default"
)

// LineItem is one cart entry. It references the product by id and snapshots
// the unit price and primary image at add-time, so later catalog changes do
// not retroactively alter the cart.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// LineTotal returns unit price times quantity for this line.
func (li *LineItem) LineTotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Cart is the ordered sequence of line items for one shopper session.
// Item order is insertion order and only matters for display.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Subtotal sums unit price times quantity over all line items.
func (c *Cart) Subtotal() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].LineTotal()
	}
	return total
}

// ItemCount returns the total unit count across all line items.
func (c *Cart) ItemCount() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// FindItemIndex returns the index of the line item with the given merge
// identity (product id, size, color), or -1 when absent.
func (c *Cart) FindItemIndex(productID int, size, color string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size && c.Items[i].Color == color {
			return i
		}
	}
	return -1
}

// Expired reports whether the cart's persisted snapshot has passed its
// expiry at the given instant.
func (c *Cart) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
