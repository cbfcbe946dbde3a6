package curve

import (
	"math"

	dmath "github.com/krazyTry/protoland-go/decimal_math"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// shape holds everything one generation pass needs.
type shape struct {
	curveType    CurveType
	startPrice   float64
	maxPrice     float64
	lpAllocation float64
	maxSupply    float64

	stepCount      int
	extraStepCount int
	deltaX         float64
	usable         float64

	// EXPONENTIAL growth per step
	ratio float64
	// LOGARITHMIC scale of (x - lpAllocation)^0.5
	coefficient float64

	priceDecimals  int32
	supplyDecimals int32
}

type priceFunc func(s *shape, i int, x, prev float64) float64

func flatPrice(s *shape, _ int, _, _ float64) float64 {
	return s.startPrice
}

func linearPrice(s *shape, _ int, x, _ float64) float64 {
	return s.startPrice + (s.maxPrice-s.startPrice)*(x-s.lpAllocation)/s.usable
}

func exponentialPrice(s *shape, i int, x, prev float64) float64 {
	if s.startPrice == 0 {
		// growth from zero is undefined; the first point is taken on the
		// straight line and the next pass anchors the geometric curve there
		return s.maxPrice * (x - s.lpAllocation) / s.usable
	}
	if i == s.extraStepCount {
		return s.startPrice
	}
	return prev * s.ratio
}

func logarithmicPrice(s *shape, _ int, x, _ float64) float64 {
	return s.startPrice + s.coefficient*math.Sqrt(x-s.lpAllocation)
}

func (s *shape) priceFunc() (priceFunc, error) {
	switch s.curveType {
	case CurveTypeFlat:
		return flatPrice, nil
	case CurveTypeLinear:
		return linearPrice, nil
	case CurveTypeExponential:
		return exponentialPrice, nil
	case CurveTypeLogarithmic:
		return logarithmicPrice, nil
	}
	return nil, errors.Wrapf(ErrInvalidCurveParameter, "unknown curve type %d", uint8(s.curveType))
}

func newShape(p CurveParameter, reserve ReserveToken, supplyDecimals int32) (*shape, error) {
	s := &shape{
		curveType:      p.CurveType,
		startPrice:     p.InitialPrice,
		maxPrice:       p.FinalPrice,
		lpAllocation:   p.LpAllocation,
		maxSupply:      p.MaxSupply,
		stepCount:      p.StepCount,
		priceDecimals:  reserve.Denomination,
		supplyDecimals: supplyDecimals,
	}
	if s.stepCount == 0 {
		s.stepCount = DefaultStepCount
	}
	if s.curveType == CurveTypeFlat {
		s.stepCount = 1
		s.maxPrice = s.startPrice
	}

	if s.startPrice == 0 {
		s.extraStepCount = 1
	}
	// never more steps than discrete supply units
	if float64(s.stepCount) > s.maxSupply {
		s.stepCount = int(math.Max(1, math.Floor(s.maxSupply)))
		s.extraStepCount = 1
	}

	if s.curveType == CurveTypeExponential && s.stepCount <= 1 {
		return nil, errors.Wrapf(ErrDegenerateStepCount, "exponential curve needs at least 2 steps, got %d", s.stepCount)
	}

	s.usable = s.maxSupply - s.lpAllocation
	s.deltaX = s.usable / float64(s.stepCount+s.extraStepCount)

	switch s.curveType {
	case CurveTypeExponential:
		if s.startPrice > 0 {
			ratio, err := dmath.Root(
				decimal.NewFromFloat(s.maxPrice).Div(decimal.NewFromFloat(s.startPrice)),
				int64(s.stepCount-1),
				MaxDecimalPoints,
			)
			if err != nil {
				return nil, errors.Wrap(err, "exponential growth ratio")
			}
			s.ratio = ratio.InexactFloat64()
		}
	case CurveTypeLogarithmic:
		s.coefficient = decimal.NewFromFloat(s.maxPrice - s.startPrice).
			DivRound(dmath.Sqrt(decimal.NewFromFloat(s.usable), 128), MaxDecimalPoints).
			InexactFloat64()
	}
	return s, nil
}

func (s *shape) clamp(y float64) float64 {
	return math.Max(s.startPrice, math.Min(y, s.maxPrice))
}

// points runs one generation pass. The returned prices are not shifted yet.
func (s *shape) points() ([]CurveStep, error) {
	price, err := s.priceFunc()
	if err != nil {
		return nil, err
	}

	last := s.stepCount + s.extraStepCount
	out := make([]CurveStep, 0, s.stepCount+1)
	prev := 0.0
	for i := s.extraStepCount; i <= last; i++ {
		x := s.lpAllocation + float64(i)*s.deltaX
		if i == last {
			x = s.maxSupply
		}

		y := price(s, i, x, prev)
		if !isFinite(y) {
			return nil, errors.Wrapf(ErrInvalidCurveParameter, "%s curve produced a non-finite price at step %d", s.curveType, i)
		}
		prev = y

		out = append(out, CurveStep{
			RangeTo: FormatGraphPoint(x, &s.supplyDecimals),
			Price:   s.clamp(formatPrice(s.clamp(y), s.priceDecimals)),
		})
	}

	if s.curveType != CurveTypeFlat {
		out[len(out)-1].Price = s.maxPrice
	}
	return out, nil
}

// GenerateSteps discretizes args.CurveData into price tiers.
//
// A zero initial price is re-anchored once: the curve is regenerated with the
// first computed price as its starting price. Equal neighbouring boundaries
// produced by rounding are merged and counted in MergeCount. Prices are then
// shifted one tier to the right so each tier carries the price of the range
// leading up to its boundary.
func GenerateSteps(args GenerateStepArgs) (GenerateStepResult, error) {
	param := args.CurveData
	if err := ValidateCurveParameter(param); err != nil {
		return GenerateStepResult{}, err
	}
	if err := validateReserveToken(args.ReserveToken); err != nil {
		return GenerateStepResult{}, err
	}

	supplyDecimals := int32(MaxDecimalPoints)
	if args.SupplyDecimals != nil {
		supplyDecimals = *args.SupplyDecimals
		if supplyDecimals < 0 || supplyDecimals > MaxDecimalPoints {
			return GenerateStepResult{}, errors.Wrapf(ErrInvalidCurveParameter, "supply decimals must be within [0, %d], got %d", MaxDecimalPoints, supplyDecimals)
		}
	}

	var points []CurveStep
	for pass := 0; pass < maxGenerationPasses; pass++ {
		s, err := newShape(param, args.ReserveToken, supplyDecimals)
		if err != nil {
			return GenerateStepResult{}, err
		}
		if points, err = s.points(); err != nil {
			return GenerateStepResult{}, err
		}
		if param.InitialPrice != 0 {
			break
		}
		param.InitialPrice = points[0].Price
	}
	if param.InitialPrice == 0 {
		return GenerateStepResult{}, errors.Wrap(ErrInvalidCurveParameter, "curve has no priced range")
	}

	steps, mergeCount := mergeBoundaries(points)
	steps = dedupSteps(steps)
	if len(steps) < 2 {
		return GenerateStepResult{}, errors.Wrapf(ErrDegenerateStepCount, "rounding to %d supply decimals left no priced range", supplyDecimals)
	}
	steps = shiftPrices(steps)

	if param.CurveType != CurveTypeFlat {
		steps[len(steps)-1].Price = param.FinalPrice
	}

	if param.LpAllocation > 0 {
		steps = append([]CurveStep{{RangeTo: param.LpAllocation, Price: 0}}, steps...)
	}

	return GenerateStepResult{StepData: steps, MergeCount: mergeCount}, nil
}

// mergeBoundaries drops every point whose RangeTo equals the next one's.
func mergeBoundaries(points []CurveStep) ([]CurveStep, int) {
	out := make([]CurveStep, 0, len(points))
	mergeCount := 0
	for i := range points {
		if i < len(points)-1 && points[i].RangeTo == points[i+1].RangeTo {
			mergeCount++
			continue
		}
		out = append(out, points[i])
	}
	return out, mergeCount
}

func dedupSteps(steps []CurveStep) []CurveStep {
	seen := make(map[CurveStep]struct{}, len(steps))
	out := steps[:0]
	for _, s := range steps {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// shiftPrices moves each price one position right and drops the first point.
func shiftPrices(steps []CurveStep) []CurveStep {
	out := make([]CurveStep, len(steps)-1)
	for i := 1; i < len(steps); i++ {
		out[i-1] = CurveStep{RangeTo: steps[i].RangeTo, Price: steps[i-1].Price}
	}
	return out
}
