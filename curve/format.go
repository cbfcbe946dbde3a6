package curve

import (
	dmath "github.com/krazyTry/protoland-go/decimal_math"
	"github.com/shopspring/decimal"
)

// FormatGraphPoint rounds value to min(maxDecimalPoints, 18) decimal places
// (18 when nil). A non-zero value that would round to 0 is returned as is.
func FormatGraphPoint(value float64, maxDecimalPoints *int32) float64 {
	if !isFinite(value) || value == 0 {
		return value
	}
	places := int32(MaxDecimalPoints)
	if maxDecimalPoints != nil && *maxDecimalPoints < places {
		places = *maxDecimalPoints
	}

	rounded := dmath.RoundDecimals(decimal.NewFromFloat(value), places).InexactFloat64()
	if rounded == 0 {
		return value
	}
	return rounded
}

// formatPrice keeps PriceSignificantDigits digits, then caps the decimals at
// the reserve denomination when one is set.
func formatPrice(value float64, denomination int32) float64 {
	if !isFinite(value) || value == 0 {
		return value
	}
	p := dmath.ToPrecision(decimal.NewFromFloat(value), PriceSignificantDigits).InexactFloat64()
	if p == 0 {
		p = value
	}
	if denomination > 0 {
		return FormatGraphPoint(p, &denomination)
	}
	return p
}
