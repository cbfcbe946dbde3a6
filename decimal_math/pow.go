package decimal_math

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const rootPrec = 128

// Root returns the n-th root of x using Newton-Raphson on big.Float,
// keeping scale decimal places.
func Root(x decimal.Decimal, n int64, scale int32) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Decimal{}, errors.New("n must be positive")
	}
	if x.IsNegative() {
		return decimal.Decimal{}, errors.New("root of negative number")
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	if n == 1 {
		return x.Round(scale), nil
	}

	target := x.BigFloat().SetPrec(rootPrec)
	f, _ := x.Float64()
	guess := new(big.Float).SetPrec(rootPrec).SetFloat64(math.Pow(f, 1/float64(n)))
	if guess.Sign() <= 0 || guess.IsInf() {
		guess.SetFloat64(1)
	}

	nf := new(big.Float).SetPrec(rootPrec).SetInt64(n)
	n1 := new(big.Float).SetPrec(rootPrec).SetInt64(n - 1)
	epsilon := new(big.Float).SetPrec(rootPrec).SetFloat64(math.Pow10(-int(scale) - 2))

	for i := 0; i < 200; i++ {
		// guess = ((n-1)*guess + x/guess^(n-1)) / n
		guessPow := powInt(guess, n-1)
		if guessPow.Sign() == 0 {
			return decimal.Decimal{}, errors.New("division by zero in iteration")
		}
		term1 := new(big.Float).SetPrec(rootPrec).Mul(guess, n1)
		term2 := new(big.Float).SetPrec(rootPrec).Quo(target, guessPow)
		next := new(big.Float).SetPrec(rootPrec).Add(term1, term2)
		next.Quo(next, nf)

		diff := new(big.Float).SetPrec(rootPrec).Sub(next, guess)
		guess = next
		if diff.Abs(diff).Cmp(epsilon) < 0 {
			break
		}
	}

	out, err := decimal.NewFromString(guess.Text('f', int(scale)+2))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return out.Round(scale), nil
}

// powInt is exponentiation by squaring at rootPrec.
func powInt(base *big.Float, exp int64) *big.Float {
	result := new(big.Float).SetPrec(rootPrec).SetInt64(1)
	b := new(big.Float).SetPrec(rootPrec).Copy(base)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
		exp >>= 1
	}
	return result
}
