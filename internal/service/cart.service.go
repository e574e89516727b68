package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"cartworks/internal/domain"
	"cartworks/internal/repo"
	"cartworks/pkg/logger"
)

// ErrEmptyCart rejects a checkout on a cart with no items.
var ErrEmptyCart = errors.New("cart is empty")

// CartSummary is a read-only view of a cart's current totals.
type CartSummary struct {
	Items     []domain.CartItem
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	ItemCount int
}

type CartService interface {
	Products() []domain.Product
	AddItem(sessionID, productID string, quantity int) error
	RemoveItem(sessionID, productID string)
	UpdateQuantity(sessionID, productID string, quantity int) error
	ApplyDiscount(sessionID string, policy domain.DiscountPolicy)
	ClearCart(sessionID string)
	Summary(sessionID string) CartSummary
	Checkout(sessionID string, address domain.Address) (domain.Order, error)
	Orders(sessionID string) []domain.Order
}

// cartService keeps one shopping cart per session id. The domain cart does
// no locking of its own, so every operation here runs under the service
// mutex.
type cartService struct {
	mu      sync.Mutex
	catalog repo.CatalogRepo
	carts   map[string]*domain.ShoppingCart
	orders  map[string][]domain.Order
}

func NewCartService(catalog repo.CatalogRepo) CartService {
	return &cartService{
		catalog: catalog,
		carts:   make(map[string]*domain.ShoppingCart),
		orders:  make(map[string][]domain.Order),
	}
}

// cart returns the session's cart, creating it on first use. Callers must
// hold s.mu.
func (s *cartService) cart(sessionID string) *domain.ShoppingCart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = domain.NewShoppingCart()
		s.carts[sessionID] = c
	}
	return c
}

func (s *cartService) Products() []domain.Product {
	return s.catalog.List()
}

func (s *cartService) AddItem(sessionID, productID string, quantity int) error {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return fmt.Errorf("add item %q: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart(sessionID).AddItem(product, quantity); err != nil {
		return fmt.Errorf("add item %q: %w", productID, err)
	}
	logger.Debug().
		Str("session", sessionID).
		Str("product", productID).
		Int("quantity", quantity).
		Msg("item added to cart")
	return nil
}

func (s *cartService) RemoveItem(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).RemoveItem(productID)
}

func (s *cartService) UpdateQuantity(sessionID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart(sessionID).UpdateItemQuantity(productID, quantity); err != nil {
		return fmt.Errorf("update item %q: %w", productID, err)
	}
	return nil
}

func (s *cartService) ApplyDiscount(sessionID string, policy domain.DiscountPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetDiscountPolicy(policy)
}

func (s *cartService) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Clear()
}

func (s *cartService) Summary(sessionID string) CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	return CartSummary{
		Items:     c.Items(),
		Subtotal:  c.Subtotal(),
		Discount:  c.DiscountAmount(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

func (s *cartService) Checkout(sessionID string, address domain.Address) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if c.ItemCount() == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := c.Checkout(address)
	s.orders[sessionID] = append(s.orders[sessionID], order)

	logger.Info().
		Str("session", sessionID).
		Str("order", order.ID().String()).
		Str("total", order.Total().StringFixed(2)).
		Int("items", order.ItemCount()).
		Msg("checkout complete")
	return order, nil
}

func (s *cartService) Orders(sessionID string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders[sessionID]))
	copy(out, s.orders[sessionID])
	return out
}
