// internal/models/category.go
package models

// ProductSummary is the condensed product shape embedded in category
// listings.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CategorySummary aggregates one catalog category for browse pages. The
// featured product falls back to the category's first product when no
// product in the category is flagged featured.
type CategorySummary struct {
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	ProductCount    int            `json:"productCount"`
	FeaturedProduct ProductSummary `json:"featuredProduct"`
	PriceRange      PriceRange     `json:"priceRange"`
}
