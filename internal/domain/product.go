package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryBooks       Category = "books"
)

// Product is a catalog entry. Cart items take copies of it; cart
// operations never touch the catalog original.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    Category
	Description string
	Stock       int
}

// NewProduct builds a Product. A negative price or stock is clamped to zero.
func NewProduct(id, name string, price decimal.Decimal, category Category, description string, stock int) Product {
	if price.IsNegative() {
		price = decimal.Zero
	}
	if stock < 0 {
		stock = 0
	}
	return Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    category,
		Description: description,
		Stock:       stock,
	}
}
