// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/animestreet/storefront-api/internal/config"
	"github.com/animestreet/storefront-api/internal/models"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

const deliveryEstimate = 7 * 24 * time.Hour

type CheckoutRequest struct {
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
	ShippingAddress *models.Address `json:"shippingAddress" validate:"required"`
	BillingAddress  *models.Address `json:"billingAddress" validate:"required"`
}

// CheckoutService turns a non-empty cart into a synthetic order. There is no
// payment gateway behind it: processing is a fixed delay and the order ID is
// fabricated. Completed orders are retained in memory for lookup.
type CheckoutService struct {
	cfg   config.CheckoutConfig
	carts *CartService

	mtx    sync.RWMutex
	orders map[string]models.Order
}

func NewCheckoutService(cfg config.CheckoutConfig, carts *CartService) *CheckoutService {
	return &CheckoutService{
		cfg:    cfg,
		carts:  carts,
		orders: make(map[string]models.Order),
	}
}

// ProcessCheckout validates the session's cart, computes the order totals,
// simulates payment latency, and clears the cart. The cart is only cleared
// after the simulated payment succeeds.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, sessionID string, req *CheckoutRequest) (models.Order, error) {
	cart := s.carts.GetCart(sessionID)
	if len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	subtotal := cart.Total
	shipping := s.cfg.ShippingFee
	if subtotal >= s.cfg.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * s.cfg.TaxRate
	total := subtotal + shipping + tax

	if s.cfg.ProcessingDelay > 0 {
		select {
		case <-ctx.Done():
			return models.Order{}, ctx.Err()
		case <-time.After(s.cfg.ProcessingDelay):
		}
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:                newOrderID(),
		Items:             cart.Items,
		Subtotal:          subtotal,
		Shipping:          shipping,
		Tax:               tax,
		Total:             total,
		PaymentMethod:     req.PaymentMethod,
		ShippingAddress:   *req.ShippingAddress,
		BillingAddress:    *req.BillingAddress,
		Status:            models.OrderStatusConfirmed,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryEstimate),
	}

	s.mtx.Lock()
	s.orders[order.ID] = order
	s.mtx.Unlock()

	s.carts.ClearCart(sessionID)
	return order, nil
}

func (s *CheckoutService) GetOrder(id string) (models.Order, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func newOrderID() string {
	return "ORDER-" + strings.ToUpper(uuid.NewString())
}
