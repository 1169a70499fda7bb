package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Mode selects how a discount is applied
type Mode int

const (
	ModeNone Mode = iota
	ModePercentage
	ModeFixed
)

func (m Mode) String() string {
	switch m {
	case ModePercentage:
		return "percentage"
	case ModeFixed:
		return "fixed"
	default:
		return "none"
	}
}

// ParseMode maps a mode name to a Mode. Unknown names mean no discount.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage":
		return ModePercentage
	case "fixed":
		return ModeFixed
	default:
		return ModeNone
	}
}

var hundred = decimal.NewFromInt(100)

// Discount is the single active discount of an order.
// It carries one value slot, so setting a mode always drops the other one.
type Discount struct {
	mode  Mode
	value decimal.Decimal
}

// NoDiscount returns the empty discount
func NoDiscount() Discount {
	return Discount{}
}

// PercentageOff returns a percentage discount clamped to [0, 100]
func PercentageOff(pct decimal.Decimal) Discount {
	switch {
	case pct.IsNegative():
		pct = decimal.Zero
	case pct.GreaterThan(hundred):
		pct = hundred
	}
	return Discount{mode: ModePercentage, value: pct}
}

// FixedOff returns a fixed amount discount; negative amounts become zero
func FixedOff(amount decimal.Decimal) Discount {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Discount{mode: ModeFixed, value: amount}
}

// ParseDiscount builds a discount from raw input. A value that is not a
// number counts as zero.
func ParseDiscount(value, mode string) Discount {
	amount, _ := ParseAmount(value)

	switch ParseMode(mode) {
	case ModePercentage:
		return PercentageOff(amount)
	case ModeFixed:
		return FixedOff(amount)
	default:
		return NoDiscount()
	}
}

// Mode returns the discount mode
func (d Discount) Mode() Mode { return d.mode }

// Value returns the percentage or fixed amount, zero for no discount
func (d Discount) Value() decimal.Decimal { return d.value }

// Active reports whether the discount changes the total
func (d Discount) Active() bool {
	return d.mode != ModeNone && d.value.IsPositive()
}

// Apply discounts total. Fixed discounts never take the result below zero.
func (d Discount) Apply(total decimal.Decimal) decimal.Decimal {
	if !d.Active() {
		return total
	}

	switch d.mode {
	case ModePercentage:
		return total.Mul(decimal.NewFromInt(1).Sub(d.value.Div(hundred)))
	case ModeFixed:
		return decimal.Max(decimal.Zero, total.Sub(d.value))
	}
	return total
}

// Label renders the discount for display: "10%", "$20.00" or "0%"
func (d Discount) Label() string {
	if !d.Active() {
		return "0%"
	}
	if d.mode == ModeFixed {
		return "$" + d.value.StringFixed(2)
	}
	return d.value.String() + "%"
}
