// internal/handlers/search.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/animestreet/storefront-api/internal/services"
	"github.com/animestreet/storefront-api/internal/utils"
)

type SearchHandler struct {
	catalogService *services.CatalogService
}

func NewSearchHandler(catalogService *services.CatalogService) *SearchHandler {
	return &SearchHandler{
		catalogService: catalogService,
	}
}

// GET /search?q=
func (h *SearchHandler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.BadRequestResponse(c, "Search query is required", nil)
		return
	}

	results := h.catalogService.SearchProducts(query)
	utils.SearchResponse(c, results, len(results), query)
}
