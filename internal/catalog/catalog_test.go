// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogIntegrity(t *testing.T) {
	store := NewStore(Seed())
	products := store.All()

	require.Len(t, products, 6)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %q", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.Sizes)
		assert.GreaterOrEqual(t, p.Price, 0.0)
	}
}

func TestByID(t *testing.T) {
	store := NewStore(Seed())

	product, ok := store.ByID("naruto-jacket")
	require.True(t, ok)
	assert.Equal(t, "Naruto Leaf Village Jacket", product.Name)

	_, ok = store.ByID("missing-jacket")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	store := NewStore(Seed())

	products := store.ByCategory("Ben 10")
	require.Len(t, products, 1)
	assert.Equal(t, "ben-10-jacket", products[0].ID)

	assert.Empty(t, store.ByCategory("Pokemon"))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	store := NewStore(Seed())

	for _, query := range []string{"Naruto", "naruto", "NARUTO"} {
		results := store.Search(query)
		require.Len(t, results, 1, "query %q", query)
		assert.Equal(t, "naruto-jacket", results[0].ID)
	}
}

func TestSearchMatchesDescriptionAndCategory(t *testing.T) {
	store := NewStore(Seed())

	// "Survey Corps" only appears in the Attack on Titan description.
	results := store.Search("survey corps")
	require.Len(t, results, 1)
	assert.Equal(t, "attack-titan-jacket", results[0].ID)

	// Category match.
	results = store.Search("demon slayer")
	require.Len(t, results, 1)
	assert.Equal(t, "demon-slayer-jacket", results[0].ID)
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	store := NewStore(Seed())

	results := store.Search("jacket")
	require.Len(t, results, 6)
	all := store.All()
	for i := range all {
		assert.Equal(t, all[i].ID, results[i].ID)
	}
}

func TestCategoriesInCatalogOrder(t *testing.T) {
	store := NewStore(Seed())

	assert.Equal(t, []string{
		"Ben 10", "Naruto", "Generator Rex", "Spider-Man", "Attack on Titan", "Demon Slayer",
	}, store.Categories())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "attack-on-titan", Slug("Attack on Titan"))
	assert.Equal(t, "spider-man", Slug("Spider-Man"))
	assert.Equal(t, "ben-10", Slug("Ben  10"))
}

func TestStoreIsolatesCallers(t *testing.T) {
	store := NewStore(Seed())

	products := store.All()
	products[0].Name = "mutated"

	fresh, ok := store.ByID(products[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}
