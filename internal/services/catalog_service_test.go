// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animestreet/storefront-api/internal/catalog"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(catalog.NewStore(catalog.Seed()))
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogService()

	product, err := svc.GetProduct("spiderman-jacket")
	require.NoError(t, err)
	assert.Equal(t, "Spider-Man Web Jacket", product.Name)
	assert.InDelta(t, 94.99, product.Price, 1e-9)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newCatalogService()

	_, err := svc.GetProduct("missing-jacket")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFeaturedProducts(t *testing.T) {
	svc := newCatalogService()

	featured := svc.FeaturedProducts()
	require.Len(t, featured, 4)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestSearchProductsNaruto(t *testing.T) {
	svc := newCatalogService()

	results := svc.SearchProducts("Naruto")
	require.Len(t, results, 1)
	assert.Equal(t, "naruto-jacket", results[0].ID)
}

func TestListProductsAppliesFilters(t *testing.T) {
	svc := newCatalogService()

	results := svc.ListProducts(QueryParams{PriceRange: PriceRangeUnder80})
	require.Len(t, results, 1)
	assert.Equal(t, "ben-10-jacket", results[0].ID)
}

func TestCategories(t *testing.T) {
	svc := newCatalogService()

	categories := svc.Categories()
	require.Len(t, categories, 6)

	byName := make(map[string]int)
	for i, c := range categories {
		byName[c.Name] = i
	}

	ben := categories[byName["Ben 10"]]
	assert.Equal(t, "ben-10", ben.Slug)
	assert.Equal(t, 1, ben.ProductCount)
	assert.Equal(t, "ben-10-jacket", ben.FeaturedProduct.ID)
	assert.InDelta(t, 79.99, ben.PriceRange.Min, 1e-9)
	assert.InDelta(t, 79.99, ben.PriceRange.Max, 1e-9)

	aot := categories[byName["Attack on Titan"]]
	assert.Equal(t, "attack-on-titan", aot.Slug)
	// No featured product in the category: falls back to the first one.
	assert.Equal(t, "attack-titan-jacket", aot.FeaturedProduct.ID)
}
