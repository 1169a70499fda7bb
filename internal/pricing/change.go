package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChangeStatus is the outcome of checking a cash payment
type ChangeStatus string

const (
	ChangeSufficient   ChangeStatus = "sufficient"
	ChangeInsufficient ChangeStatus = "insufficient"
	ChangeInvalid      ChangeStatus = "invalid"
)

// Change is the result of ComputeChange. Amount is the change due when the
// payment covers the total and the missing amount otherwise.
type Change struct {
	Status  ChangeStatus
	Payment decimal.Decimal
	Amount  decimal.Decimal
}

// ComputeChange checks a raw payment entry against total
func ComputeChange(payment string, total decimal.Decimal) Change {
	paid, ok := ParseAmount(payment)
	if !ok {
		return Change{Status: ChangeInvalid}
	}

	if paid.LessThan(total) {
		return Change{Status: ChangeInsufficient, Payment: paid, Amount: total.Sub(paid)}
	}
	return Change{Status: ChangeSufficient, Payment: paid, Amount: paid.Sub(total)}
}

// Message renders the cashier text for the result. Invalid input renders empty.
func (c Change) Message() string {
	switch c.Status {
	case ChangeSufficient:
		return fmt.Sprintf("Change due: $%s", c.Amount.StringFixed(2))
	case ChangeInsufficient:
		return fmt.Sprintf("Payment of $%s is insufficient. Missing $%s",
			c.Payment.StringFixed(2), c.Amount.StringFixed(2))
	default:
		return ""
	}
}
