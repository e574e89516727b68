package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address is where an order ships to.
type Address struct {
	Street  string
	City    string
	Zip     string
	Country string
}

// Order is an immutable snapshot of a cart taken at checkout. It shares no
// state with the cart that produced it: the cart can be cleared or refilled
// afterwards without affecting the order.
type Order struct {
	id        uuid.UUID
	items     []CartItem
	subtotal  decimal.Decimal
	discount  decimal.Decimal
	total     decimal.Decimal
	address   Address
	createdAt time.Time
}

func newOrder(cart *ShoppingCart, address Address) Order {
	return Order{
		id:        uuid.New(),
		items:     cart.Items(),
		subtotal:  cart.Subtotal(),
		discount:  cart.DiscountAmount(),
		total:     cart.Total(),
		address:   address,
		createdAt: time.Now(),
	}
}

func (o Order) ID() uuid.UUID {
	return o.id
}

// Items returns a copy of the snapshotted items.
func (o Order) Items() []CartItem {
	out := make([]CartItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o Order) Discount() decimal.Decimal {
	return o.discount
}

func (o Order) Total() decimal.Decimal {
	return o.total
}

func (o Order) ShippingAddress() Address {
	return o.address
}

func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.quantity
	}
	return count
}
