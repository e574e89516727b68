package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cartworks/internal/domain"
	"cartworks/internal/service"
)

const sessionHeader = "X-Session-ID"

type CartHandler struct {
	svc service.CartService
}

func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) Register(r *gin.Engine) {
	r.GET("/products", h.listProducts)
	r.GET("/orders", h.listOrders)

	cart := r.Group("/cart")
	cart.GET("", h.getCart)
	cart.POST("/items", h.addItem)
	cart.PUT("/items/:id", h.updateItem)
	cart.DELETE("/items/:id", h.removeItem)
	cart.PUT("/discount", h.applyDiscount)
	cart.POST("/clear", h.clearCart)
	cart.POST("/checkout", h.checkout)
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type discountRequest struct {
	Type   string `json:"type" binding:"required"`
	Rate   string `json:"rate"`
	Amount string `json:"amount"`
	Buy    int    `json:"buy"`
	Get    int    `json:"get"`
}

type addressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type itemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type cartResponse struct {
	Items     []itemResponse `json:"items"`
	Subtotal  string         `json:"subtotal"`
	Discount  string         `json:"discount"`
	Total     string         `json:"total"`
	ItemCount int            `json:"item_count"`
}

type orderResponse struct {
	ID        string         `json:"id"`
	Items     []itemResponse `json:"items"`
	Subtotal  string         `json:"subtotal"`
	Discount  string         `json:"discount"`
	Total     string         `json:"total"`
	Address   addressRequest `json:"shipping_address"`
	CreatedAt string         `json:"created_at"`
}

func session(c *gin.Context) string {
	if id := c.GetHeader(sessionHeader); id != "" {
		return id
	}
	return "default"
}

func itemViews(items []domain.CartItem) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		p := item.Product()
		out = append(out, itemResponse{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price.StringFixed(2),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal().StringFixed(2),
		})
	}
	return out
}

func orderView(o domain.Order) orderResponse {
	addr := o.ShippingAddress()
	return orderResponse{
		ID:       o.ID().String(),
		Items:    itemViews(o.Items()),
		Subtotal: o.Subtotal().StringFixed(2),
		Discount: o.Discount().StringFixed(2),
		Total:    o.Total().StringFixed(2),
		Address: addressRequest{
			Street:  addr.Street,
			City:    addr.City,
			Zip:     addr.Zip,
			Country: addr.Country,
		},
		CreatedAt: o.CreatedAt().UTC().Format(time.RFC3339),
	}
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *CartHandler) listProducts(c *gin.Context) {
	type productResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Price       string `json:"price"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Stock       int    `json:"stock"`
	}
	products := h.svc.Products()
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.StringFixed(2),
			Category:    string(p.Category),
			Description: p.Description,
			Stock:       p.Stock,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CartHandler) getCart(c *gin.Context) {
	s := h.svc.Summary(session(c))
	c.JSON(http.StatusOK, cartResponse{
		Items:     itemViews(s.Items),
		Subtotal:  s.Subtotal.StringFixed(2),
		Discount:  s.Discount.StringFixed(2),
		Total:     s.Total.StringFixed(2),
		ItemCount: s.ItemCount,
	})
}

func (h *CartHandler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.svc.AddItem(session(c), req.ProductID, req.Quantity); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

func (h *CartHandler) updateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateQuantity(session(c), c.Param("id"), req.Quantity); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) removeItem(c *gin.Context) {
	h.svc.RemoveItem(session(c), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) applyDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var policy domain.DiscountPolicy
	switch req.Type {
	case "percentage":
		rate, err := decimal.NewFromString(req.Rate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate"})
			return
		}
		policy = domain.Percentage(rate)
	case "fixed_amount":
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return
		}
		policy = domain.FixedAmount(amount)
	case "buy_x_get_y":
		policy = domain.BuyXGetY(req.Buy, req.Get)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown discount type"})
		return
	}

	h.svc.ApplyDiscount(session(c), policy)
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) clearCart(c *gin.Context) {
	h.svc.ClearCart(session(c))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) checkout(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.Checkout(session(c), domain.Address{
		Street:  req.Street,
		City:    req.City,
		Zip:     req.Zip,
		Country: req.Country,
	})
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderView(order))
}

func (h *CartHandler) listOrders(c *gin.Context) {
	orders := h.svc.Orders(session(c))
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderView(o))
	}
	c.JSON(http.StatusOK, out)
}
