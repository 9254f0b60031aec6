// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/animestreet/storefront-api/internal/services"
	"github.com/animestreet/storefront-api/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, "Missing required checkout information", validationErrors)
		return
	}

	order, err := h.checkoutService.ProcessCheckout(c.Request.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, "Cart is empty", nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to process checkout")
		return
	}

	utils.SuccessResponseWithMessage(c, order, "Order placed successfully!")
}

// GET /orders/:id
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order, err := h.checkoutService.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch order")
		return
	}

	utils.SuccessResponse(c, order)
}
