package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		quantity int
		wantErr  error
	}{
		{"one unit", 5, 1, nil},
		{"all stock", 5, 5, nil},
		{"zero", 5, 0, ErrInvalidQuantity},
		{"negative", 5, -2, ErrInvalidQuantity},
		{"over stock", 5, 6, ErrInsufficientStock},
		{"no stock at all", 0, 1, ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewShoppingCart()
			err := cart.AddItem(testProduct("p1", "3.00", tt.stock), tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, cart.ItemCount(), "failed add must not mutate the cart")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, cart.ItemCount())
		})
	}
}

func TestAddItem_SameProductAccumulates(t *testing.T) {
	cart := NewShoppingCart()
	p := testProduct("p1", "3.00", 5)

	require.NoError(t, cart.AddItem(p, 2))
	require.NoError(t, cart.AddItem(p, 3))

	assert.Len(t, cart.Items(), 1, "same product id must not create a duplicate entry")
	assert.Equal(t, 5, cart.ItemCount())

	// Stock is exhausted; a further add is rejected and nothing changes.
	assert.ErrorIs(t, cart.AddItem(p, 1), ErrInsufficientStock)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("b", "1.00", 5), 1))
	require.NoError(t, cart.AddItem(testProduct("a", "1.00", 5), 1))
	require.NoError(t, cart.AddItem(testProduct("c", "1.00", 5), 1))

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].Product().ID)
	assert.Equal(t, "a", items[1].Product().ID)
	assert.Equal(t, "c", items[2].Product().ID)
}

func TestRemoveItem(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("p1", "3.00", 5), 2))

	cart.RemoveItem("p1")
	assert.Equal(t, 0, cart.ItemCount())

	// Unknown id is a silent no-op.
	cart.RemoveItem("missing")
	assert.Equal(t, 0, cart.ItemCount())
}

func TestUpdateItemQuantity(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("p1", "3.00", 5), 2))

	require.NoError(t, cart.UpdateItemQuantity("p1", 4))
	assert.Equal(t, 4, cart.ItemCount())

	assert.ErrorIs(t, cart.UpdateItemQuantity("p1", 9), ErrInsufficientStock)
	assert.Equal(t, 4, cart.ItemCount())

	// Unknown id is a silent no-op, not an error.
	require.NoError(t, cart.UpdateItemQuantity("missing", 3))
	assert.Equal(t, 4, cart.ItemCount())
}

func TestUpdateItemQuantity_ZeroRemoves(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("p1", "3.00", 5), 2))

	require.NoError(t, cart.UpdateItemQuantity("p1", 0))
	assert.Empty(t, cart.Items())

	require.NoError(t, cart.AddItem(testProduct("p1", "3.00", 5), 2))
	require.NoError(t, cart.UpdateItemQuantity("p1", -3))
	assert.Empty(t, cart.Items())
}

func TestClear_RetainsDiscountPolicy(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("p1", "3.00", 5), 2))
	cart.SetDiscountPolicy(Percentage(decimal.NewFromInt(10)))

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.NotNil(t, cart.DiscountPolicy(), "clear must keep the discount policy")

	require.NoError(t, cart.AddItem(testProduct("p1", "100.00", 5), 1))
	assert.Equal(t, "10.00", cart.DiscountAmount().StringFixed(2))
}

func TestTotals(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("p1", "19.99", 10), 3))
	require.NoError(t, cart.AddItem(testProduct("p2", "0.01", 10), 2))

	assert.Equal(t, "59.99", cart.Subtotal().StringFixed(2))
	assert.True(t, cart.DiscountAmount().IsZero(), "no policy means no discount")
	assert.Equal(t, "59.99", cart.Total().StringFixed(2))
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCheckout(t *testing.T) {
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(testProduct("p1", "10.00", 5), 3))
	require.NoError(t, cart.AddItem(testProduct("p2", "2.00", 8), 2))
	before := cart.ItemCount()

	order := cart.Checkout(Address{Street: "1 Main", City: "Town", Zip: "00001", Country: "US"})

	assert.Equal(t, before, order.ItemCount())
	assert.Equal(t, 0, cart.ItemCount(), "checkout must empty the cart")
	assert.Equal(t, "34.00", order.Total().StringFixed(2))

	// Refilling the cart must not touch the order snapshot.
	require.NoError(t, cart.AddItem(testProduct("p3", "99.00", 5), 5))
	assert.Equal(t, before, order.ItemCount())
}

func TestCheckout_DecrementsOwnedStockOnly(t *testing.T) {
	catalogRecord := testProduct("p1", "10.00", 5)
	cart := NewShoppingCart()
	require.NoError(t, cart.AddItem(catalogRecord, 3))

	order := cart.Checkout(Address{})

	items := order.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product().Stock, "owned copy is decremented by the purchased quantity")
	assert.Equal(t, 5, catalogRecord.Stock, "the catalog record is never touched")
}

func TestCart_SharedByReference(t *testing.T) {
	cart := NewShoppingCart()
	other := cart // second handle to the same cart

	require.NoError(t, cart.AddItem(testProduct("p1", "3.00", 5), 2))
	assert.Equal(t, 2, other.ItemCount(), "mutations must be visible through every handle")

	other.Clear()
	assert.Equal(t, 0, cart.ItemCount())
}
