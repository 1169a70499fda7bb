package pricing

import (
	"errors"

	"github.com/Lixing-Zhang/foodstand-pos/internal/catalog"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNilFood         = errors.New("line item is required")
)

var two = decimal.NewFromInt(2)

// Rates are the prices an order needs beyond each product's base price
type Rates struct {
	ExtraIngredientPrice decimal.Decimal
	Promotion            catalog.Promotion
}

// RatesFrom reads the extra ingredient surcharge from c
func RatesFrom(c *catalog.Catalog, promo catalog.Promotion) Rates {
	return Rates{
		ExtraIngredientPrice: c.ExtraIngredientPrice(),
		Promotion:            promo,
	}
}

// OrderLine pairs an item with its quantity
type OrderLine struct {
	Food     *Food
	Quantity int
}

// Order is a cashier's open order. It is not safe for concurrent use.
type Order struct {
	rates    Rates
	lines    []OrderLine
	discount Discount
}

// NewOrder creates an empty order priced with rates
func NewOrder(rates Rates) *Order {
	return &Order{rates: rates}
}

// AddLine appends an item. The order takes ownership of food.
func (o *Order) AddLine(food *Food, quantity int) error {
	if food == nil {
		return ErrNilFood
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	o.lines = append(o.lines, OrderLine{Food: food, Quantity: quantity})
	return nil
}

// Lines returns the lines in insertion order
func (o *Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// SetDiscount replaces the active discount
func (o *Order) SetDiscount(d Discount) {
	o.discount = d
}

// Discount returns the active discount
func (o *Order) Discount() Discount {
	return o.discount
}

// HasDiscount reports whether a discount row should be shown
func (o *Order) HasDiscount() bool {
	return o.discount.Active()
}

// AppliedDiscountLabel renders the active discount for display
func (o *Order) AppliedDiscountLabel() string {
	return o.discount.Label()
}

// LineSubtotal prices a single line on its own. Bundle pairs are formed
// inside the line only, so the sum over lines differs from Subtotal when the
// bundle product is spread over several lines.
func (o *Order) LineSubtotal(line OrderLine) decimal.Decimal {
	qty := decimal.NewFromInt(int64(line.Quantity))

	if !o.bundled(line) {
		return line.Food.UnitPrice(o.rates.ExtraIngredientPrice).Mul(qty)
	}

	extraCost := line.Food.extrasCost(o.rates.ExtraIngredientPrice).Mul(qty)
	return o.bundlePrice(line.Quantity).Add(extraCost)
}

// Subtotal is the undiscounted order price. Bundle pairs are counted over
// the whole order; each bundle line still pays for its own extras.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	bundleCount := 0
	bundleExtras := decimal.Zero

	for _, line := range o.lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		if o.bundled(line) {
			bundleCount += line.Quantity
			bundleExtras = bundleExtras.Add(line.Food.extrasCost(o.rates.ExtraIngredientPrice).Mul(qty))
			continue
		}
		total = total.Add(line.Food.UnitPrice(o.rates.ExtraIngredientPrice).Mul(qty))
	}

	return total.Add(o.bundlePrice(bundleCount)).Add(bundleExtras)
}

// Total is the subtotal after the active discount. It is never negative.
func (o *Order) Total() decimal.Decimal {
	return o.discount.Apply(o.Subtotal())
}

func (o *Order) bundled(line OrderLine) bool {
	return line.Food.Product.Name == o.rates.Promotion.Product
}

// bundlePrice prices n bundle-eligible units without extras
func (o *Order) bundlePrice(n int) decimal.Decimal {
	count := decimal.NewFromInt(int64(n))
	pairs := count.Div(two).Floor()
	rest := count.Mod(two)

	promo := o.rates.Promotion
	return pairs.Mul(promo.BundlePrice).Add(rest.Mul(promo.SinglePrice))
}
