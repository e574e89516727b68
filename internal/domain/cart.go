package domain

import "github.com/shopspring/decimal"

// ShoppingCart is a shared mutable entity: callers hold a *ShoppingCart and
// mutations are visible through every handle. It keeps items in insertion
// order with at most one entry per product id. The cart does no internal
// locking; a caller sharing it across goroutines must serialize access.
type ShoppingCart struct {
	items  []CartItem
	policy DiscountPolicy
}

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{}
}

// AddItem puts quantity units of p into the cart. If an item for p's id
// already exists the quantity accumulates onto it; otherwise a new item is
// inserted, checked against p's stock. On failure the cart is unchanged.
func (c *ShoppingCart) AddItem(p Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].product.ID == p.ID {
			return c.items[i].IncreaseQuantity(quantity)
		}
	}
	item, err := NewCartItem(p, quantity)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes the entry for productID. An unknown id is a no-op.
func (c *ShoppingCart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateItemQuantity sets the quantity for productID. A quantity of zero or
// less removes the item. An unknown id is a no-op.
func (c *ShoppingCart) UpdateItemQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	for i := range c.items {
		if c.items[i].product.ID == productID {
			return c.items[i].UpdateQuantity(quantity)
		}
	}
	return nil
}

// Clear drops every item. The discount policy survives a clear.
func (c *ShoppingCart) Clear() {
	c.items = nil
}

func (c *ShoppingCart) SetDiscountPolicy(p DiscountPolicy) {
	c.policy = p
}

func (c *ShoppingCart) DiscountPolicy() DiscountPolicy {
	return c.policy
}

// Items returns a copy of the item list.
func (c *ShoppingCart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ShoppingCart) Subtotal() decimal.Decimal {
	return itemsSubtotal(c.items)
}

// DiscountAmount is the active policy applied to the current items, clamped
// into [0, subtotal]. Without a policy it is zero.
func (c *ShoppingCart) DiscountAmount() decimal.Decimal {
	if c.policy == nil {
		return decimal.Zero
	}
	discount := c.policy.Discount(c.items)
	if discount.IsNegative() {
		return decimal.Zero
	}
	if subtotal := c.Subtotal(); discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

// Total is subtotal minus discount, never negative.
func (c *ShoppingCart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.DiscountAmount())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ItemCount is the sum of quantities across all items.
func (c *ShoppingCart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.quantity
	}
	return count
}

// Checkout converts the cart into an Order. Each item's owned stock copy is
// decremented by the purchased quantity (floored at zero) -- catalog records
// are unaffected. The cart is cleared afterwards; the returned Order is an
// independent snapshot. This is the only operation that mutates stock.
func (c *ShoppingCart) Checkout(address Address) Order {
	for i := range c.items {
		c.items[i].product.Stock -= c.items[i].quantity
		if c.items[i].product.Stock < 0 {
			c.items[i].product.Stock = 0
		}
	}
	order := newOrder(c, address)
	c.Clear()
	return order
}
