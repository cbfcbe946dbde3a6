package curve

import (
	"math"

	"github.com/pkg/errors"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateCurveParameter checks p before any step is generated. Zero
// InitialPrice is allowed for non-FLAT curves; GenerateSteps re-anchors it.
func ValidateCurveParameter(p CurveParameter) error {
	if !p.CurveType.IsValid() {
		return errors.Wrapf(ErrInvalidCurveParameter, "unknown curve type %d", uint8(p.CurveType))
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"initialPrice", p.InitialPrice},
		{"finalPrice", p.FinalPrice},
		{"lpAllocation", p.LpAllocation},
		{"maxSupply", p.MaxSupply},
	}
	for _, f := range fields {
		if !isFinite(f.value) {
			return errors.Wrapf(ErrInvalidCurveParameter, "%s must be a finite number", f.name)
		}
		if f.value < 0 {
			return errors.Wrapf(ErrInvalidCurveParameter, "%s must not be negative, got %v", f.name, f.value)
		}
	}

	if p.MaxSupply <= 0 {
		return errors.Wrapf(ErrInvalidCurveParameter, "maxSupply must be greater than zero, got %v", p.MaxSupply)
	}
	if p.LpAllocation >= p.MaxSupply {
		return errors.Wrapf(ErrInvalidCurveParameter, "lpAllocation (%v) must be less than maxSupply (%v)", p.LpAllocation, p.MaxSupply)
	}
	if p.StepCount < 0 {
		return errors.Wrapf(ErrInvalidCurveParameter, "stepCount must be at least 1, got %d", p.StepCount)
	}
	if p.StepCount > MaxStepCount {
		return errors.Wrapf(ErrInvalidCurveParameter, "stepCount (%d) must be <= %d", p.StepCount, MaxStepCount)
	}

	if p.CurveType == CurveTypeFlat {
		if p.InitialPrice == 0 {
			return errors.Wrap(ErrInvalidCurveParameter, "flat curve requires a positive initialPrice")
		}
		return nil
	}

	if p.FinalPrice == 0 {
		return errors.Wrapf(ErrInvalidCurveParameter, "%s curve requires a positive finalPrice", p.CurveType)
	}
	if p.FinalPrice < p.InitialPrice {
		return errors.Wrapf(ErrInvalidCurveParameter, "finalPrice (%v) must be >= initialPrice (%v)", p.FinalPrice, p.InitialPrice)
	}
	if p.CurveType == CurveTypeExponential && p.StepCount == 1 {
		return errors.Wrap(ErrDegenerateStepCount, "exponential curve needs at least 2 steps")
	}
	return nil
}

func validateReserveToken(r ReserveToken) error {
	if r.Denomination < 0 || r.Denomination > MaxDecimalPoints {
		return errors.Wrapf(ErrInvalidCurveParameter, "reserve denomination must be within [0, %d], got %d", MaxDecimalPoints, r.Denomination)
	}
	return nil
}
