package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DiscountPolicy computes a discount amount from a cart's items. A policy is
// a pure function of the item list and holds no mutable state.
type DiscountPolicy interface {
	Discount(items []CartItem) decimal.Decimal
}

// Percentage discounts rate percent of the subtotal.
func Percentage(rate decimal.Decimal) DiscountPolicy {
	return percentage{rate: rate}
}

// FixedAmount discounts a flat amount, capped at the subtotal.
func FixedAmount(amount decimal.Decimal) DiscountPolicy {
	return fixedAmount{amount: amount}
}

// BuyXGetY gives get free units per buy paid units. The cheapest eligible
// units across the whole cart are the free ones, regardless of which product
// they belong to.
func BuyXGetY(buy, get int) DiscountPolicy {
	return buyXGetY{buy: buy, get: get}
}

type percentage struct {
	rate decimal.Decimal
}

func (p percentage) Discount(items []CartItem) decimal.Decimal {
	return itemsSubtotal(items).Mul(p.rate).Div(decimal.NewFromInt(100))
}

type fixedAmount struct {
	amount decimal.Decimal
}

func (p fixedAmount) Discount(items []CartItem) decimal.Decimal {
	return decimal.Min(p.amount, itemsSubtotal(items))
}

type buyXGetY struct {
	buy int
	get int
}

func (p buyXGetY) Discount(items []CartItem) decimal.Decimal {
	if p.buy <= 0 || p.get <= 0 {
		return decimal.Zero
	}

	// Flatten every unit in the cart into a multiset of unit prices.
	var prices []decimal.Decimal
	for _, item := range items {
		for i := 0; i < item.Quantity(); i++ {
			prices = append(prices, item.Product().Price)
		}
	}

	free := len(prices) / (p.buy + p.get) * p.get
	if free == 0 {
		return decimal.Zero
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].LessThan(prices[j])
	})

	discount := decimal.Zero
	for _, price := range prices[:free] {
		discount = discount.Add(price)
	}
	return discount
}

func itemsSubtotal(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
