// internal/services/cart_service.go
package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/animestreet/storefront-api/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")
)

const defaultItemImage = "/placeholder.svg"

type AddItemRequest struct {
	ProductID string   `json:"productId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Image     string   `json:"image"`
	Size      string   `json:"size" validate:"required"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
}

// CartService is the single authoritative cart store. Carts are keyed by
// session ID and guarded by a mutex, so concurrent requests from different
// sessions cannot corrupt each other. Mutations go through the pure
// models.Cart operations and replace the stored value wholesale.
type CartService struct {
	mtx   sync.RWMutex
	carts map[string]models.Cart
}

func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string]models.Cart),
	}
}

func (s *CartService) GetCart(sessionID string) models.Cart {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	return models.NewCart()
}

// AddItem merges the request into the session's cart. A line with the same
// product and size absorbs the quantity; otherwise a new line is created
// with a fresh UUID.
func (s *CartService) AddItem(sessionID string, req *AddItemRequest) (models.Cart, error) {
	if req.Quantity < 1 {
		return models.Cart{}, ErrInvalidQuantity
	}
	if req.Price == nil || *req.Price < 0 {
		return models.Cart{}, ErrInvalidPrice
	}

	image := req.Image
	if image == "" {
		image = defaultItemImage
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     *req.Price,
		Image:     image,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cartLocked(sessionID).Add(item)
	s.carts[sessionID] = cart
	return cart, nil
}

// UpdateQuantity sets the line's quantity to an absolute value. Zero removes
// the line; an unknown line ID is a no-op, not an error.
func (s *CartService) UpdateQuantity(sessionID, lineID string, quantity int) (models.Cart, error) {
	if quantity < 0 {
		return models.Cart{}, ErrInvalidQuantity
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cartLocked(sessionID).UpdateQuantity(lineID, quantity)
	s.carts[sessionID] = cart
	return cart, nil
}

func (s *CartService) RemoveItem(sessionID, lineID string) models.Cart {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cartLocked(sessionID).Remove(lineID)
	s.carts[sessionID] = cart
	return cart
}

func (s *CartService) ClearCart(sessionID string) models.Cart {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := models.NewCart()
	s.carts[sessionID] = cart
	return cart
}

func (s *CartService) cartLocked(sessionID string) models.Cart {
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	return models.NewCart()
}
