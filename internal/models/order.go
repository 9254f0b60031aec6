// internal/models/order.go
package models

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type Address struct {
	Name       string `json:"name" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Order is the synthetic record produced by the simulated checkout. Items are
// a snapshot of the cart at checkout time.
type Order struct {
	ID                string      `json:"id"`
	Items             []CartItem  `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Shipping          float64     `json:"shipping"`
	Tax               float64     `json:"tax"`
	Total             float64     `json:"total"`
	PaymentMethod     string      `json:"paymentMethod"`
	ShippingAddress   Address     `json:"shippingAddress"`
	BillingAddress    Address     `json:"billingAddress"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}
