// Package decimal provides a small Money type for euro amounts with exact
// arithmetic at the input and reporting boundaries. The simulation core
// itself works in float64; Money covers validation and display.
package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a euro amount.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps an existing decimal value.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds to whole cents, halves away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to a yearly one.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts a yearly amount to a monthly one.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add returns m plus other.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub returns m minus other.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String renders the amount with two decimals and no currency symbol.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as whole euros with a euro sign and Dutch
// thousands separators, e.g. €1.234.567.
func (m Money) Format() string {
	return "€" + groupThousands(m.Decimal.Round(0).StringFixed(0))
}

// FormatFloat renders a float64 euro amount the same way Format does.
func FormatFloat(value float64) string {
	return NewMoney(value).Format()
}

// groupThousands inserts dots every three digits, keeping a leading minus
// sign intact.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
