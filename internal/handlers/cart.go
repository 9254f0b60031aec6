// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/animestreet/storefront-api/internal/services"
	"github.com/animestreet/storefront-api/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, h.cartService.GetCart(sessionID))
}

// POST /cart
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return
	}

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, "Missing required fields", validationErrors)
		return
	}

	cart, err := h.cartService.AddItem(sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			utils.BadRequestResponse(c, "Invalid quantity", nil)
			return
		}
		if errors.Is(err, services.ErrInvalidPrice) {
			utils.BadRequestResponse(c, "Invalid price", nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to add item to cart")
		return
	}

	utils.SuccessResponseWithMessage(c, cart, "Item added to cart successfully")
}

// PATCH /cart/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, "Invalid quantity", validationErrors)
		return
	}

	cart, err := h.cartService.UpdateQuantity(sessionID, c.Param("id"), *req.Quantity)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid quantity", nil)
		return
	}

	message := "Cart updated successfully"
	if *req.Quantity == 0 {
		message = "Item removed from cart"
	}
	utils.SuccessResponseWithMessage(c, cart, message)
}

// DELETE /cart/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return
	}

	cart := h.cartService.RemoveItem(sessionID, c.Param("id"))
	utils.SuccessResponseWithMessage(c, cart, "Item removed from cart successfully")
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return
	}

	cart := h.cartService.ClearCart(sessionID)
	utils.SuccessResponseWithMessage(c, cart, "Cart cleared successfully")
}
