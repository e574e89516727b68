package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cartworks/internal/domain"
	"cartworks/internal/repo"
	"cartworks/internal/service"
	"cartworks/pkg/logger"
)

// Walks one scripted shopping session end to end: browse, add (including a
// rejected add), try every discount policy, checkout, inspect the order.
func main() {
	logger.Init("development", "debug")

	catalog := repo.NewCatalogRepo()
	catalog.Seed(repo.DefaultProducts()...)
	svc := service.NewCartService(catalog)

	const session = "sim"

	fmt.Println("--- CATALOG ---")
	for _, p := range svc.Products() {
		fmt.Printf("%-14s %-18s %8s  stock=%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
	}

	fmt.Println("--- FILLING CART ---")
	if err := svc.AddItem(session, "p-coffee", 3); err != nil {
		logger.Error().Err(err).Msg("add coffee")
	}
	if err := svc.AddItem(session, "p-novel", 2); err != nil {
		logger.Error().Err(err).Msg("add novel")
	}
	// Deliberately over stock: 5 laptops available.
	if err := svc.AddItem(session, "p-laptop", 9); err != nil {
		logger.Warn().Err(err).Msg("add laptop rejected")
	}
	if err := svc.AddItem(session, "p-laptop", 1); err != nil {
		logger.Error().Err(err).Msg("add laptop")
	}

	printSummary(svc.Summary(session), "no discount")

	svc.ApplyDiscount(session, domain.Percentage(decimal.NewFromInt(10)))
	printSummary(svc.Summary(session), "percentage 10")

	svc.ApplyDiscount(session, domain.FixedAmount(decimal.NewFromInt(500)))
	printSummary(svc.Summary(session), "fixed amount 500")

	svc.ApplyDiscount(session, domain.BuyXGetY(2, 1))
	printSummary(svc.Summary(session), "buy 2 get 1")

	fmt.Println("--- CHECKOUT ---")
	order, err := svc.Checkout(session, domain.Address{
		Street:  "1 Market St",
		City:    "Springfield",
		Zip:     "62701",
		Country: "US",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("checkout failed")
	}
	fmt.Printf("order %s: %d items, total %s\n", order.ID(), order.ItemCount(), order.Total().StringFixed(2))
	fmt.Printf("cart after checkout: %d items\n", svc.Summary(session).ItemCount)

	customer := domain.NewCustomer("Ada Lovelace", "ada@example.com")
	customer.PlaceOrder(order)
	fmt.Printf("customer %s has spent %s across %d orders\n",
		customer.Name, customer.TotalSpent().StringFixed(2), len(customer.Orders()))
}

func printSummary(s service.CartSummary, label string) {
	fmt.Printf("[%s] subtotal=%s discount=%s total=%s items=%d\n",
		label, s.Subtotal.StringFixed(2), s.Discount.StringFixed(2), s.Total.StringFixed(2), s.ItemCount)
}
