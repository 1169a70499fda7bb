package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RawAmount is cashier input that may arrive as a JSON string or number.
// It stays raw so the pricing rules decide how unreadable input is treated.
type RawAmount string

// UnmarshalJSON accepts "10", 10, 12.5 and null
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = RawAmount(n.String())
	return nil
}

// AddItemRequest adds one configured product to an order
type AddItemRequest struct {
	Product  string   `json:"product"`
	Quantity int      `json:"quantity"`
	Extras   []string `json:"extras,omitempty"`
}

// DiscountRequest sets the order discount either by mode/value or by a
// printed discount code. Code takes precedence when present.
type DiscountRequest struct {
	Mode  string    `json:"mode,omitempty"`
	Value RawAmount `json:"value,omitempty"`
	Code  string    `json:"code,omitempty"`
}

// ChangeRequest carries the cash handed over by the customer.
// Payment stays raw so non-numeric input can be reported as invalid.
type ChangeRequest struct {
	Payment RawAmount `json:"payment"`
}

// ChangeResponse is the result of a cash payment check
type ChangeResponse struct {
	Status  string           `json:"status"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	Message string           `json:"message,omitempty"`
}

// OrderLine is one rendered row of an order
type OrderLine struct {
	Product     string          `json:"product"`
	Quantity    int             `json:"quantity"`
	Ingredients []string        `json:"ingredients"`
	Extras      []string        `json:"extras"`
	ExtrasLabel string          `json:"extrasLabel"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderSummary is the full state of an order as shown to the cashier
type OrderSummary struct {
	ID            string          `json:"id"`
	Lines         []OrderLine     `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountMode  string          `json:"discountMode"`
	DiscountLabel string          `json:"discountLabel"`
	ShowDiscount  bool            `json:"showDiscount"`
	Total         decimal.Decimal `json:"total"`
}
