package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Lixing-Zhang/foodstand-pos/internal/catalog"
	"github.com/Lixing-Zhang/foodstand-pos/internal/models"
	"github.com/Lixing-Zhang/foodstand-pos/internal/pricing"
	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidProduct      = errors.New("invalid product")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidExtra        = errors.New("invalid extra ingredient")
	ErrInvalidDiscountCode = errors.New("discount code is not valid")
)

// DiscountCodeBook resolves printed discount codes
type DiscountCodeBook interface {
	Lookup(ctx context.Context, code string) (pricing.Discount, bool)
}

// OrderService keeps the open orders of the stand in memory.
// Orders are lost when the process exits.
type OrderService struct {
	catalog *catalog.Catalog
	rates   pricing.Rates
	codes   DiscountCodeBook

	mu     sync.Mutex
	orders map[string]*pricing.Order
}

// NewOrderService creates a new order service. codes may be nil.
func NewOrderService(c *catalog.Catalog, promotion catalog.Promotion, codes DiscountCodeBook) *OrderService {
	return &OrderService{
		catalog: c,
		rates:   pricing.RatesFrom(c, promotion),
		codes:   codes,
		orders:  make(map[string]*pricing.Order),
	}
}

// CreateOrder opens an empty order
func (s *OrderService) CreateOrder(ctx context.Context) (*models.OrderSummary, error) {
	id := generateOrderID()
	order := pricing.NewOrder(s.rates)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[id] = order
	return summarize(id, order), nil
}

// GetOrder returns the current state of an order
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return summarize(id, order), nil
}

// OpenOrders returns the number of orders currently held
func (s *OrderService) OpenOrders(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders)
}

// DeleteOrder discards an order
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.orders, id)
	return nil
}

// AddItem validates a product selection and appends it to the order
func (s *OrderService) AddItem(ctx context.Context, id string, req models.AddItemRequest) (*models.OrderSummary, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if !s.catalog.Sellable(req.Product) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProduct, req.Product)
	}
	product, err := s.catalog.Lookup(req.Product)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	food := pricing.NewFood(product, catalog.BaseIngredients)
	for _, extra := range req.Extras {
		if !s.catalog.IsExtraIngredient(extra) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtra, extra)
		}
		food.AddExtraIngredient(extra)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := order.AddLine(food, req.Quantity); err != nil {
		return nil, err
	}
	return summarize(id, order), nil
}

// SetDiscount applies a cashier-entered discount. Non-numeric values count as zero.
func (s *OrderService) SetDiscount(ctx context.Context, id, value, mode string) (*models.OrderSummary, error) {
	return s.applyDiscount(id, pricing.ParseDiscount(value, mode))
}

// ApplyDiscountCode applies the discount printed on a voucher
func (s *OrderService) ApplyDiscountCode(ctx context.Context, id, code string) (*models.OrderSummary, error) {
	if s.codes == nil {
		return nil, ErrInvalidDiscountCode
	}

	discount, ok := s.codes.Lookup(ctx, code)
	if !ok {
		return nil, ErrInvalidDiscountCode
	}
	return s.applyDiscount(id, discount)
}

// Change checks a cash payment against the order total
func (s *OrderService) Change(ctx context.Context, id, payment string) (pricing.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.lookup(id)
	if err != nil {
		return pricing.Change{}, err
	}
	return pricing.ComputeChange(payment, order.Total()), nil
}

func (s *OrderService) applyDiscount(id string, d pricing.Discount) (*models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	order.SetDiscount(d)
	return summarize(id, order), nil
}

// lookup must be called with s.mu held
func (s *OrderService) lookup(id string) (*pricing.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func summarize(id string, order *pricing.Order) *models.OrderSummary {
	lines := order.Lines()

	summary := &models.OrderSummary{
		ID:            id,
		Lines:         make([]models.OrderLine, 0, len(lines)),
		Subtotal:      order.Subtotal(),
		DiscountMode:  order.Discount().Mode().String(),
		DiscountLabel: order.AppliedDiscountLabel(),
		ShowDiscount:  order.HasDiscount(),
		Total:         order.Total(),
	}

	for _, line := range lines {
		summary.Lines = append(summary.Lines, models.OrderLine{
			Product:     line.Food.Product.Name,
			Quantity:    line.Quantity,
			Ingredients: append([]string(nil), line.Food.Ingredients...),
			Extras:      append([]string{}, line.Food.Extras...),
			ExtrasLabel: line.Food.ExtrasLabel(),
			Subtotal:    order.LineSubtotal(line),
		})
	}

	return summary
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
