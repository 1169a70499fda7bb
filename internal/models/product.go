package models

import "github.com/shopspring/decimal"

// Product is a price list entry as returned by the API
type Product struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Sellable bool            `json:"sellable"`
}

// Promotion describes the two-unit bundle offer on one product
type Promotion struct {
	Product     string          `json:"product"`
	SinglePrice decimal.Decimal `json:"singlePrice"`
	BundlePrice decimal.Decimal `json:"bundlePrice"`
	Label       string          `json:"label"`
}
