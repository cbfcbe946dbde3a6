package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxScale is the largest number of decimal places any helper in this package produces.
const MaxScale = 18

func Pow10(n int32) decimal.Decimal {
	return decimal.New(1, n)
}

func Sqrt(x decimal.Decimal, prec uint) decimal.Decimal {
	if x.Sign() < 0 {
		panic("sqrt on negative decimal")
	}
	if x.IsZero() {
		return decimal.Zero
	}

	out, _ := decimal.NewFromString(
		new(big.Float).SetPrec(prec).Sqrt(
			x.BigFloat().SetPrec(prec),
		).Text('f', MaxScale+2),
	)
	return out
}
