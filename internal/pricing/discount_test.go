package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDiscount(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		mode      string
		wantMode  Mode
		wantValue string
		active    bool
	}{
		{"percentage", "10", "percentage", ModePercentage, "10", true},
		{"fixed", "25.5", "fixed", ModeFixed, "25.5", true},
		{"mode is case insensitive", "10", "Fixed", ModeFixed, "10", true},
		{"none ignores value", "10", "none", ModeNone, "0", false},
		{"unknown mode is none", "10", "bogus", ModeNone, "0", false},
		{"garbage percentage is zero", "diez", "percentage", ModePercentage, "0", false},
		{"garbage fixed is zero", "", "fixed", ModeFixed, "0", false},
		{"negative percentage clamps", "-5", "percentage", ModePercentage, "0", false},
		{"negative fixed clamps", "-5", "fixed", ModeFixed, "0", false},
		{"percentage above 100 clamps", "250", "percentage", ModePercentage, "100", true},
		{"exponent is not read", "1e-400000000", "percentage", ModePercentage, "1", true},
		{"large exponent is not read", "1e400000000", "fixed", ModeFixed, "1", true},
		{"amount beyond a trillion is zero", "1000000000000", "fixed", ModeFixed, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDiscount(tt.value, tt.mode)
			if got.Mode() != tt.wantMode {
				t.Errorf("Mode() = %s, want %s", got.Mode(), tt.wantMode)
			}
			if !got.Value().Equal(decimal.RequireFromString(tt.wantValue)) {
				t.Errorf("Value() = %s, want %s", got.Value(), tt.wantValue)
			}
			if got.Active() != tt.active {
				t.Errorf("Active() = %v, want %v", got.Active(), tt.active)
			}
		})
	}
}

func TestDiscount_Apply(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	if got := PercentageOff(decimal.NewFromInt(10)).Apply(hundred); !got.Equal(decimal.NewFromInt(90)) {
		t.Errorf("10%% of 100 = %s, want 90", got)
	}
	if got := FixedOff(decimal.NewFromInt(150)).Apply(hundred); !got.IsZero() {
		t.Errorf("fixed 150 on 100 = %s, want 0", got)
	}
	if got := NoDiscount().Apply(hundred); !got.Equal(hundred) {
		t.Errorf("no discount on 100 = %s, want 100", got)
	}
}

func TestDiscount_ApplyBoundedInput(t *testing.T) {
	total := decimal.NewFromInt(100)

	tests := []struct {
		value string
		mode  string
		want  string
	}{
		{"1e-400000000", "percentage", "99"},
		{"0.0000000000000000001", "percentage", "100"},
		{"1e400000000", "fixed", "99"},
	}

	for _, tt := range tests {
		t.Run(tt.mode+" "+tt.value, func(t *testing.T) {
			got := ParseDiscount(tt.value, tt.mode).Apply(total)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Apply(100) = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	for _, m := range []Mode{ModeNone, ModePercentage, ModeFixed} {
		if ParseMode(m.String()) != m {
			t.Errorf("ParseMode(%q) did not round trip", m.String())
		}
	}
}
