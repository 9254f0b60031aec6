// internal/catalog/catalog.go
package catalog

import (
	"strings"

	"github.com/animestreet/storefront-api/internal/models"
)

// Store is an immutable, ordered product catalog. It is constructed once and
// injected into the services that read from it; lookups never mutate state,
// so the store is safe for concurrent use.
type Store struct {
	products []models.Product
}

func NewStore(products []models.Product) *Store {
	items := make([]models.Product, len(products))
	copy(items, products)
	return &Store{products: items}
}

// All returns the full catalog in catalog order.
func (s *Store) All() []models.Product {
	items := make([]models.Product, len(s.products))
	copy(items, s.products)
	return items
}

func (s *Store) ByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) ByCategory(category string) []models.Product {
	matched := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// Search returns products whose name, description, or category contains the
// query, case-insensitively. Catalog order is preserved; there is no
// relevance scoring.
func (s *Store) Search(query string) []models.Product {
	matched := make([]models.Product, 0)
	for _, p := range s.products {
		if p.MatchesQuery(query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Categories returns the distinct category names in the order they first
// appear in the catalog.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			names = append(names, p.Category)
		}
	}
	return names
}

// Slug converts a category name to its URL form: lowercased, whitespace runs
// collapsed to single dashes.
func Slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
