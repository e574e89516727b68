package repo

import (
	"sync"

	"github.com/shopspring/decimal"

	"cartworks/internal/domain"
)

type CatalogRepo interface {
	FindByID(id string) (domain.Product, error)
	List() []domain.Product
	Seed(products ...domain.Product)
}

// catalogRepo keeps the catalog in memory. Products are returned by value so
// callers can never mutate a catalog record through a lookup.
type catalogRepo struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	ids      []string // insertion order for List
}

func NewCatalogRepo() CatalogRepo {
	return &catalogRepo{
		products: make(map[string]domain.Product),
	}
}

func (r *catalogRepo) Seed(products ...domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		if _, exists := r.products[p.ID]; !exists {
			r.ids = append(r.ids, p.ID)
		}
		r.products[p.ID] = p
	}
}

func (r *catalogRepo) FindByID(id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *catalogRepo) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.products[id])
	}
	return out
}

// DefaultProducts is the seed catalog used by the simulator and the server.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		domain.NewProduct("p-laptop", "Laptop 14\"", dec("1299.99"), domain.CategoryElectronics, "14 inch ultrabook", 5),
		domain.NewProduct("p-headphones", "Headphones", dec("199.50"), domain.CategoryElectronics, "over-ear, wired", 12),
		domain.NewProduct("p-tshirt", "T-Shirt", dec("14.99"), domain.CategoryClothing, "plain cotton tee", 40),
		domain.NewProduct("p-jeans", "Jeans", dec("59.90"), domain.CategoryClothing, "regular fit", 18),
		domain.NewProduct("p-coffee", "Coffee Beans 1kg", dec("11.25"), domain.CategoryFood, "medium roast", 60),
		domain.NewProduct("p-novel", "Paperback Novel", dec("8.99"), domain.CategoryBooks, "bestseller paperback", 25),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
