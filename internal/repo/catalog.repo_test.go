package repo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartworks/internal/domain"
)

func seededRepo() CatalogRepo {
	r := NewCatalogRepo()
	r.Seed(
		domain.NewProduct("p1", "Coffee", decimal.RequireFromString("11.25"), domain.CategoryFood, "", 60),
		domain.NewProduct("p2", "Novel", decimal.RequireFromString("8.99"), domain.CategoryBooks, "", 25),
	)
	return r
}

func TestCatalogRepo_FindByID(t *testing.T) {
	r := seededRepo()

	p, err := r.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", p.Name)

	_, err = r.FindByID("missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogRepo_LookupReturnsACopy(t *testing.T) {
	r := seededRepo()

	p, err := r.FindByID("p1")
	require.NoError(t, err)
	p.Stock = 0

	again, err := r.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 60, again.Stock, "mutating a lookup result must not change the catalog")
}

func TestCatalogRepo_ListKeepsSeedOrder(t *testing.T) {
	r := seededRepo()

	products := r.List()
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestCatalogRepo_ReseedReplaces(t *testing.T) {
	r := seededRepo()
	r.Seed(domain.NewProduct("p1", "Coffee", decimal.RequireFromString("12.00"), domain.CategoryFood, "", 10))

	p, err := r.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	assert.Len(t, r.List(), 2, "reseeding an existing id must not duplicate it")
}

func TestDefaultProducts(t *testing.T) {
	products := DefaultProducts()
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.False(t, p.Price.IsNegative())
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}
