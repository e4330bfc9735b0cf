package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// amountScale is the fixed-point scaling factor: amounts carry four decimal
// digits of precision.
const amountScale = 10000

// Amount is a fixed-point monetary value stored as ten-thousandths of a
// unit. Arithmetic is exact integer arithmetic; there is no rounding on
// addition or subtraction.
type Amount int64

// NewAmount builds an Amount from an already scaled integer
// (ten-thousandths of a unit).
func NewAmount(scaled int64) Amount {
	return Amount(scaled)
}

// ParseAmount parses decimal text into an Amount. Digits past the fourth
// fractional position are truncated toward zero, never rounded, so two
// Amounts parsed from the same text always compare equal.
func ParseAmount(text string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", text, err)
	}

	return Amount(d.Shift(4).IntPart()), nil
}

// Scaled returns the underlying scaled integer representation.
func (a Amount) Scaled() int64 {
	return int64(a)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Sub(b Amount) Amount {
	return a - b
}

func (a Amount) IsNegative() bool {
	return a < 0
}

func (a Amount) GreaterThan(b Amount) bool {
	return a > b
}

// Decimal returns the amount as an exact decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -4)
}

// String renders the amount divided by the scale with trailing zeros
// suppressed, keeping at least one fractional digit: 12000 -> "1.2",
// 10000 -> "1.0", 1234 -> "0.1234".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	frac := strings.TrimRight(fmt.Sprintf("%04d", v%amountScale), "0")
	if frac == "" {
		frac = "0"
	}

	return fmt.Sprintf("%s%d.%s", sign, v/amountScale, frac)
}
