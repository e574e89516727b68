package domain

import "github.com/shopspring/decimal"

// CartItem pairs an owned copy of a Product with a quantity. It is a value
// type: assigning a CartItem duplicates its state, so two copies never alias.
type CartItem struct {
	product  Product
	quantity int
}

// NewCartItem builds an item for the given product. The quantity must fit
// within the product's stock.
func NewCartItem(p Product, quantity int) (CartItem, error) {
	item := CartItem{product: p}
	if err := item.UpdateQuantity(quantity); err != nil {
		return CartItem{}, err
	}
	return item, nil
}

// UpdateQuantity sets the quantity to n. A negative n or an n above the
// owned product's stock is rejected and the quantity is left unchanged.
func (ci *CartItem) UpdateQuantity(n int) error {
	if n < 0 {
		return ErrInvalidQuantity
	}
	if n > ci.product.Stock {
		return ErrInsufficientStock
	}
	ci.quantity = n
	return nil
}

// IncreaseQuantity adds by to the quantity. by must be positive and the new
// total must not exceed the owned product's stock; on failure nothing changes.
func (ci *CartItem) IncreaseQuantity(by int) error {
	if by <= 0 {
		return ErrInvalidQuantity
	}
	if ci.quantity+by > ci.product.Stock {
		return ErrInsufficientStock
	}
	ci.quantity += by
	return nil
}

func (ci CartItem) Product() Product {
	return ci.product
}

func (ci CartItem) Quantity() int {
	return ci.quantity
}

// Subtotal is unit price times quantity, exact decimal. Rounding is left to
// the display layer.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.product.Price.Mul(decimal.NewFromInt(int64(ci.quantity)))
}
