// internal/services/query.go
package services

import (
	"sort"

	"github.com/animestreet/storefront-api/internal/models"
)

// Sort keys accepted by product listings. Anything else falls back to
// SortFeatured.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// Price buckets. Bounds are half-open: under-80 is p < 80, 80-90 is
// 80 <= p < 90, 90-plus is p >= 90.
const (
	PriceRangeAll     = "all"
	PriceRangeUnder80 = "under-80"
	PriceRange80To90  = "80-90"
	PriceRange90Plus  = "90-plus"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

type QueryParams struct {
	Search     string
	Category   string
	PriceRange string
	SortBy     string
}

// ApplyQuery runs the fixed filter pipeline over products: free-text query,
// then category, then price bucket, then sort. Filters preserve catalog
// order and the featured sort is stable, so unsorted and featured views keep
// the relative order of the input.
func ApplyQuery(products []models.Product, params QueryParams) []models.Product {
	filtered := make([]models.Product, len(products))
	copy(filtered, products)

	if params.Search != "" {
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.MatchesQuery(params.Search)
		})
	}

	if params.Category != "" && params.Category != CategoryAll {
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Category == params.Category
		})
	}

	switch params.PriceRange {
	case PriceRangeUnder80:
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Price < 80
		})
	case PriceRange80To90:
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Price >= 80 && p.Price < 90
		})
	case PriceRange90Plus:
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Price >= 90
		})
	}

	switch params.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	default:
		// Featured items first, original order preserved within each group.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Featured && !filtered[j].Featured
		})
	}

	return filtered
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	filtered := products[:0]
	for _, p := range products {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
