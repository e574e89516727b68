package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds an append-only order history.
type Customer struct {
	ID     uuid.UUID
	Name   string
	Email  string
	orders []Order
}

func NewCustomer(name, email string) *Customer {
	return &Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}
}

// PlaceOrder appends to the history. No dedup: placing the same order twice
// records it twice.
func (c *Customer) PlaceOrder(o Order) {
	c.orders = append(c.orders, o)
}

// Orders returns a copy of the history.
func (c *Customer) Orders() []Order {
	out := make([]Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// TotalSpent sums the totals of every historical order.
func (c *Customer) TotalSpent() decimal.Decimal {
	sum := decimal.Zero
	for _, o := range c.orders {
		sum = sum.Add(o.Total())
	}
	return sum
}
