// internal/services/catalog_service.go
package services

import (
	"errors"

	"github.com/animestreet/storefront-api/internal/catalog"
	"github.com/animestreet/storefront-api/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService answers catalog reads: listing with filters, lookups,
// search, and per-category summaries.
type CatalogService struct {
	store *catalog.Store
}

func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListProducts(params QueryParams) []models.Product {
	return ApplyQuery(s.store.All(), params)
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	product, ok := s.store.ByID(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) FeaturedProducts() []models.Product {
	featured := make([]models.Product, 0)
	for _, p := range s.store.All() {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// SearchProducts returns catalog-ordered substring matches. Relevance is not
// scored; callers labeling results "relevance" get catalog order.
func (s *CatalogService) SearchProducts(query string) []models.Product {
	return s.store.Search(query)
}

// Categories summarizes each catalog category: product count, a highlight
// product (the first featured one, else the first), and the price range.
func (s *CatalogService) Categories() []models.CategorySummary {
	summaries := make([]models.CategorySummary, 0)

	for _, name := range s.store.Categories() {
		products := s.store.ByCategory(name)
		if len(products) == 0 {
			continue
		}

		highlight := products[0]
		for _, p := range products {
			if p.Featured {
				highlight = p
				break
			}
		}

		priceRange := models.PriceRange{Min: products[0].Price, Max: products[0].Price}
		for _, p := range products[1:] {
			if p.Price < priceRange.Min {
				priceRange.Min = p.Price
			}
			if p.Price > priceRange.Max {
				priceRange.Max = p.Price
			}
		}

		summaries = append(summaries, models.CategorySummary{
			Name:         name,
			Slug:         catalog.Slug(name),
			ProductCount: len(products),
			FeaturedProduct: models.ProductSummary{
				ID:    highlight.ID,
				Name:  highlight.Name,
				Image: highlight.Image,
				Price: highlight.Price,
			},
			PriceRange: priceRange,
		})
	}

	return summaries
}
