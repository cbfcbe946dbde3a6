package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToPrecision rounds d to sig significant digits, half away from zero.
// 0.000123456 -> 0.00012346, 123456 -> 123460.
func ToPrecision(d decimal.Decimal, sig int32) decimal.Decimal {
	if d.IsZero() || sig <= 0 {
		return d
	}
	digits := int32(len(new(big.Int).Abs(d.Coefficient()).String()))
	// exponent of the most significant digit
	magnitude := digits - 1 + d.Exponent()
	return d.Round(sig - 1 - magnitude)
}

// RoundDecimals rounds d to at most places decimal places, clamped to [0, MaxScale].
func RoundDecimals(d decimal.Decimal, places int32) decimal.Decimal {
	if places > MaxScale {
		places = MaxScale
	}
	if places < 0 {
		places = 0
	}
	return d.Round(places)
}
