package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ExtraIngredientEntry is the catalog entry holding the per-unit surcharge for extras
const ExtraIngredientEntry = "Ingrediente extra"

// Product is an immutable catalog entry
type Product struct {
	Name  string
	Price decimal.Decimal
}

// Promotion holds the two-for-one pricing of the bundle-eligible product
type Promotion struct {
	Product     string
	SinglePrice decimal.Decimal
	BundlePrice decimal.Decimal
}

// Label renders the promotion the way the price list shows it
func (p Promotion) Label() string {
	return fmt.Sprintf("Promoción 2 %ss: $%s", p.Product, p.BundlePrice.String())
}

// BaseIngredients is the descriptive, unpriced ingredient list attached to every item
var BaseIngredients = []string{"carne", "queso"}

// Catalog is a read-only price list.
// Entries keep their insertion order for display.
type Catalog struct {
	products []Product
	index    map[string]int
	extras   []string
	allowed  map[string]bool
}

// New builds a catalog from products and the allowed extra ingredient names.
// Product names must be unique.
func New(products []Product, extras []string) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
		extras:   make([]string, 0, len(extras)),
		allowed:  make(map[string]bool, len(extras)),
	}

	for _, p := range products {
		if _, dup := c.index[p.Name]; dup {
			return nil, fmt.Errorf("duplicate product %q", p.Name)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q has negative price", p.Name)
		}
		c.index[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}

	if _, ok := c.index[ExtraIngredientEntry]; !ok {
		return nil, fmt.Errorf("catalog is missing the %q entry", ExtraIngredientEntry)
	}

	for _, e := range extras {
		if c.allowed[e] {
			continue
		}
		c.allowed[e] = true
		c.extras = append(c.extras, e)
	}

	return c, nil
}

// Default returns the stand's price list
func Default() *Catalog {
	c, err := New([]Product{
		{Name: "Hamburguesa", Price: decimal.NewFromInt(55)},
		{Name: "Papas", Price: decimal.NewFromInt(30)},
		{Name: "Perrito", Price: decimal.NewFromInt(30)},
		{Name: ExtraIngredientEntry, Price: decimal.NewFromInt(5)},
	}, []string{"Tocino", "Champiñones", "Piña", "Salchicha roja", "Salchicha de jalapeño"})
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultPromotion returns the stand's hot dog offer
func DefaultPromotion() Promotion {
	return Promotion{
		Product:     "Perrito",
		SinglePrice: decimal.NewFromInt(30),
		BundlePrice: decimal.NewFromInt(50),
	}
}

// Lookup returns the entry with the given name
func (c *Catalog) Lookup(name string) (Product, error) {
	i, ok := c.index[name]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	return c.products[i], nil
}

// PriceOf returns the base price of a product
func (c *Catalog) PriceOf(name string) (decimal.Decimal, error) {
	p, err := c.Lookup(name)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Price, nil
}

// ExtraIngredientPrice returns the surcharge applied per extra ingredient per unit
func (c *Catalog) ExtraIngredientPrice() decimal.Decimal {
	// New guarantees the entry exists
	price, _ := c.PriceOf(ExtraIngredientEntry)
	return price
}

// Products returns every entry, surcharge included, in catalog order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Sellable reports whether the name can be ordered as a line item
func (c *Catalog) Sellable(name string) bool {
	_, ok := c.index[name]
	return ok && name != ExtraIngredientEntry
}

// ExtraIngredients returns the allowed extra ingredient names
func (c *Catalog) ExtraIngredients() []string {
	out := make([]string, len(c.extras))
	copy(out, c.extras)
	return out
}

// IsExtraIngredient reports whether name is an allowed extra
func (c *Catalog) IsExtraIngredient(name string) bool {
	return c.allowed[name]
}
