// Package pricing holds the order model of the stand: configured items,
// the hot dog bundle promotion, discounts and cash change.
package pricing

import (
	"strings"

	"github.com/Lixing-Zhang/foodstand-pos/internal/catalog"
	"github.com/shopspring/decimal"
)

// PlainLabel is shown for an item without extras
const PlainLabel = "Sencillo"

// Food is one configured product: the catalog entry plus chosen extras.
// Extras keep insertion order and may repeat.
type Food struct {
	Product     catalog.Product
	Ingredients []string
	Extras      []string
}

// NewFood creates an item from a catalog product. ingredients is descriptive only.
func NewFood(product catalog.Product, ingredients []string) *Food {
	return &Food{
		Product:     product,
		Ingredients: append([]string(nil), ingredients...),
	}
}

// AddExtraIngredient appends an extra. Callers validate the name beforehand.
func (f *Food) AddExtraIngredient(name string) {
	f.Extras = append(f.Extras, name)
}

// UnitPrice is the base price plus the surcharge for every extra
func (f *Food) UnitPrice(extraPrice decimal.Decimal) decimal.Decimal {
	return f.Product.Price.Add(f.extrasCost(extraPrice))
}

// ExtrasLabel joins the extras for display
func (f *Food) ExtrasLabel() string {
	if len(f.Extras) == 0 {
		return PlainLabel
	}
	return strings.Join(f.Extras, ", ")
}

func (f *Food) extrasCost(extraPrice decimal.Decimal) decimal.Decimal {
	return extraPrice.Mul(decimal.NewFromInt(int64(len(f.Extras))))
}
