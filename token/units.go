package token

import (
	binary "github.com/gagliardetto/binary"
	"github.com/krazyTry/protoland-go/curve"
	"github.com/krazyTry/protoland-go/u128"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// StepUnits is a curve step in integer units: RangeTo in token units and
// Price in reserve units per whole token.
type StepUnits struct {
	RangeTo binary.Uint128
	Price   binary.Uint128
}

// ToUnits converts steps for on-chain use. A non-zero price that is finer
// than one reserve unit is rejected instead of being stored as zero.
func ToUnits(steps []curve.CurveStep, tokenDecimals, reserveDecimals int32) ([]StepUnits, error) {
	out := make([]StepUnits, 0, len(steps))
	for i, s := range steps {
		rangeTo, err := u128.FromDecimal(decimal.NewFromFloat(s.RangeTo), tokenDecimals)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d rangeTo", i)
		}
		price, err := u128.FromDecimal(decimal.NewFromFloat(s.Price), reserveDecimals)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d price", i)
		}
		if s.Price != 0 && price.BigInt().Sign() == 0 {
			return nil, errors.Errorf("step %d price %v is below one unit of a %d-decimal reserve", i, s.Price, reserveDecimals)
		}
		out = append(out, StepUnits{RangeTo: rangeTo, Price: price})
	}
	return out, nil
}

func FromUnits(steps []StepUnits, tokenDecimals, reserveDecimals int32) []curve.CurveStep {
	out := make([]curve.CurveStep, len(steps))
	for i, s := range steps {
		out[i] = curve.CurveStep{
			RangeTo: u128.ToDecimal(s.RangeTo, tokenDecimals).InexactFloat64(),
			Price:   u128.ToDecimal(s.Price, reserveDecimals).InexactFloat64(),
		}
	}
	return out
}
