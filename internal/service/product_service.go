package service

import (
	"context"

	"github.com/Lixing-Zhang/foodstand-pos/internal/catalog"
	"github.com/Lixing-Zhang/foodstand-pos/internal/models"
)

// ProductService handles business logic for the price list
type ProductService struct {
	catalog   *catalog.Catalog
	promotion catalog.Promotion
}

// NewProductService creates a new product service
func NewProductService(c *catalog.Catalog, promotion catalog.Promotion) *ProductService {
	return &ProductService{
		catalog:   c,
		promotion: promotion,
	}
}

// ListProducts returns every price list entry in catalog order
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := s.catalog.Products()

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toModel(s.catalog, p))
	}
	return out, nil
}

// GetProduct returns a product by name
func (s *ProductService) GetProduct(ctx context.Context, name string) (*models.Product, error) {
	p, err := s.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	m := toModel(s.catalog, p)
	return &m, nil
}

// ExtraIngredients returns the extras a cashier may add to an item
func (s *ProductService) ExtraIngredients(ctx context.Context) []string {
	return s.catalog.ExtraIngredients()
}

// Promotion returns the bundle offer as shown on the price list
func (s *ProductService) Promotion(ctx context.Context) models.Promotion {
	return models.Promotion{
		Product:     s.promotion.Product,
		SinglePrice: s.promotion.SinglePrice,
		BundlePrice: s.promotion.BundlePrice,
		Label:       s.promotion.Label(),
	}
}

func toModel(c *catalog.Catalog, p catalog.Product) models.Product {
	return models.Product{
		Name:     p.Name,
		Price:    p.Price,
		Sellable: c.Sellable(p.Name),
	}
}
