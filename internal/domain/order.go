package domain

import "time"

// Customer holds the checkout form fields supplied by the shopper.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Order is a composed checkout handoff. There is no server-side order
// system; the order exists only as a formatted summary plus a deep link to
// the store's messaging contact.
type Order struct {
	Number    string     `json:"number"`
	Customer  Customer   `json:"customer"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  float64    `json:"shipping"`
	Total     float64    `json:"total"`
	Summary   string     `json:"summary"`
	DeepLink  string     `json:"deep_link"`
	CreatedAt time.Time  `json:"created_at"`
}
