// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/animestreet/storefront-api/internal/services"
	"github.com/animestreet/storefront-api/internal/utils"
)

type CategoryHandler struct {
	catalogService *services.CatalogService
}

func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
	}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories := h.catalogService.Categories()
	utils.ListResponse(c, categories, len(categories))
}
