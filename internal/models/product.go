// internal/models/product.go
package models

import "strings"

// Product is a catalog entry. The catalog is fixed at startup, so products
// carry no lifecycle or inventory fields.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Image       string        `json:"image"`
	Images      []string      `json:"images"`
	Sizes       []string      `json:"sizes"`
	Category    string        `json:"category"`
	Featured    bool          `json:"featured"`
	Colors      ProductColors `json:"colors"`
}

type ProductColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// MatchesQuery reports whether the query appears as a case-insensitive
// substring of the product name, description, or category.
func (p Product) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}
