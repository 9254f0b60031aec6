// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/animestreet/storefront-api/internal/services"
	"github.com/animestreet/storefront-api/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := services.QueryParams{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
		SortBy:     c.Query("sortBy"),
	}

	products := h.catalogService.ListProducts(params)
	utils.ListResponse(c, products, len(products))
}

// GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	products := h.catalogService.FeaturedProducts()
	utils.ListResponse(c, products, len(products))
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch product")
		return
	}

	utils.SuccessResponse(c, product)
}
