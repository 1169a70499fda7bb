package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of cashier input, so "12abc" reads
// as 12. Exponents are not accepted: "1e9" reads as 1.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d*)(?:\.(\d*))?`)

const (
	// maxIntegerDigits caps amounts below one trillion
	maxIntegerDigits = 12
	// maxFractionDigits truncates anything finer than a millionth
	maxFractionDigits = 6
)

// ParseAmount reads a decimal from free-form input.
// ok is false when the input does not start with a number or the number is
// too large for a cash amount.
func ParseAmount(s string) (amount decimal.Decimal, ok bool) {
	m := leadingNumber.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero, false
	}

	intPart, fracPart := strings.TrimLeft(m[1], "0"), m[2]
	if m[1] == "" && fracPart == "" {
		return decimal.Zero, false
	}
	if len(intPart) > maxIntegerDigits {
		return decimal.Zero, false
	}
	if len(fracPart) > maxFractionDigits {
		fracPart = fracPart[:maxFractionDigits]
	}

	if intPart == "" {
		intPart = "0"
	}
	num := intPart
	if fracPart != "" {
		num += "." + fracPart
	}
	if strings.HasPrefix(m[0], "-") {
		num = "-" + num
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
