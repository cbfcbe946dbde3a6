package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func generate(t *testing.T, p CurveParameter) GenerateStepResult {
	t.Helper()
	res, err := GenerateSteps(GenerateStepArgs{
		ReserveToken: ReserveToken{Ticker: "TUSDA", Denomination: 12},
		CurveData:    p,
	})
	require.NoError(t, err)
	return res
}

func TestGenerateSteps_Flat(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeFlat,
		InitialPrice: 1,
		FinalPrice:   1,
		MaxSupply:    1000,
	})
	require.Equal(t, []CurveStep{{RangeTo: 1000, Price: 1}}, res.StepData)
	require.Zero(t, res.MergeCount)
}

func TestGenerateSteps_FlatIgnoresStepCount(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeFlat,
		StepCount:    50,
		InitialPrice: 0.25,
		FinalPrice:   9,
		MaxSupply:    10,
	})
	require.Equal(t, []CurveStep{{RangeTo: 10, Price: 0.25}}, res.StepData)
}

func TestGenerateSteps_Linear(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeLinear,
		StepCount:    10,
		InitialPrice: 0.1,
		FinalPrice:   1,
		MaxSupply:    1000,
	})

	want := []CurveStep{
		{RangeTo: 100, Price: 0.1},
		{RangeTo: 200, Price: 0.19},
		{RangeTo: 300, Price: 0.28},
		{RangeTo: 400, Price: 0.37},
		{RangeTo: 500, Price: 0.46},
		{RangeTo: 600, Price: 0.55},
		{RangeTo: 700, Price: 0.64},
		{RangeTo: 800, Price: 0.73},
		{RangeTo: 900, Price: 0.82},
		{RangeTo: 1000, Price: 1},
	}
	if diff := cmp.Diff(want, res.StepData); diff != "" {
		t.Fatalf("linear steps mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateSteps_ZeroStartingPrice(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeLinear,
		InitialPrice: 0,
		FinalPrice:   1,
		MaxSupply:    1000,
	})

	require.Len(t, res.StepData, DefaultStepCount)
	assert.Equal(t, CurveStep{RangeTo: 1, Price: 0.000999}, res.StepData[0])
	assert.Equal(t, CurveStep{RangeTo: 1000, Price: 1}, res.StepData[len(res.StepData)-1])
	for i, s := range res.StepData {
		require.Positivef(t, s.Price, "step %d has a zero price", i)
	}
}

func TestGenerateSteps_ZeroStartingPriceKeepsLpSentinel(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeLogarithmic,
		StepCount:    20,
		FinalPrice:   4,
		LpAllocation: 100,
		MaxSupply:    1100,
	})

	require.Equal(t, CurveStep{RangeTo: 100, Price: 0}, res.StepData[0])
	for _, s := range res.StepData[1:] {
		require.Positive(t, s.Price)
	}
}

func TestGenerateSteps_LpAllocationPrefix(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeLinear,
		StepCount:    8,
		InitialPrice: 0.1,
		FinalPrice:   1,
		LpAllocation: 200,
		MaxSupply:    1000,
	})

	require.Len(t, res.StepData, 9)
	require.Equal(t, CurveStep{RangeTo: 200, Price: 0}, res.StepData[0])
	require.Equal(t, CurveStep{RangeTo: 300, Price: 0.1}, res.StepData[1])
	require.Equal(t, CurveStep{RangeTo: 1000, Price: 1}, res.StepData[8])
}

func TestGenerateSteps_Exponential(t *testing.T) {
	p := CurveParameter{
		CurveType:    CurveTypeExponential,
		InitialPrice: 0.01,
		FinalPrice:   1,
		MaxSupply:    1_000_000,
	}
	res := generate(t, p)

	steps := res.StepData
	require.Len(t, steps, DefaultStepCount)
	require.Equal(t, 0.01, steps[0].Price)
	require.Equal(t, 1.0, steps[len(steps)-1].Price)

	// geometric: the midpoint sits near the geometric mean of the bounds
	mid := steps[500].Price
	assert.InDelta(t, 0.1, mid, 0.002)

	for i := 1; i < len(steps); i++ {
		require.GreaterOrEqual(t, steps[i].Price, steps[i-1].Price)
	}
}

func TestGenerateSteps_ExponentialZeroStart(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:  CurveTypeExponential,
		StepCount:  10,
		FinalPrice: 1,
		MaxSupply:  1000,
	})

	steps := res.StepData
	require.Len(t, steps, 10)
	require.Equal(t, 0.090909, steps[0].Price)
	require.Equal(t, 1.0, steps[9].Price)
	for i := 1; i < len(steps); i++ {
		require.Greater(t, steps[i].Price, steps[i-1].Price)
	}
}

func TestGenerateSteps_Logarithmic(t *testing.T) {
	res := generate(t, CurveParameter{
		CurveType:    CurveTypeLogarithmic,
		StepCount:    100,
		InitialPrice: 0.5,
		FinalPrice:   2,
		MaxSupply:    10_000,
	})

	steps := res.StepData
	require.Len(t, steps, 100)
	require.Equal(t, 0.5, steps[0].Price)
	require.Equal(t, 2.0, steps[len(steps)-1].Price)

	// concave: early tiers climb faster than late ones
	early := steps[2].Price - steps[1].Price
	late := steps[97].Price - steps[96].Price
	require.Greater(t, early, late)
}

func TestGenerateSteps_MergesRoundedBoundaries(t *testing.T) {
	res, err := GenerateSteps(GenerateStepArgs{
		CurveData: CurveParameter{
			CurveType:    CurveTypeLinear,
			InitialPrice: 1,
			FinalPrice:   2,
			MaxSupply:    5,
		},
		SupplyDecimals: int32Ptr(0),
	})
	require.NoError(t, err)

	want := []CurveStep{
		{RangeTo: 2, Price: 1.1667},
		{RangeTo: 3, Price: 1.3333},
		{RangeTo: 4, Price: 1.6667},
		{RangeTo: 5, Price: 2},
	}
	require.Equal(t, want, res.StepData)
	require.Equal(t, 1, res.MergeCount)
}

func TestGenerateSteps_RoundingLeavesNoRange(t *testing.T) {
	_, err := GenerateSteps(GenerateStepArgs{
		CurveData: CurveParameter{
			CurveType:    CurveTypeLinear,
			InitialPrice: 1,
			FinalPrice:   2,
			LpAllocation: 9.6,
			MaxSupply:    10,
		},
		SupplyDecimals: int32Ptr(0),
	})
	require.True(t, errors.Is(err, ErrDegenerateStepCount), err)
}

func TestGenerateSteps_ExponentialDegenerateStepCount(t *testing.T) {
	_, err := GenerateSteps(GenerateStepArgs{CurveData: CurveParameter{
		CurveType:    CurveTypeExponential,
		StepCount:    1,
		InitialPrice: 1,
		FinalPrice:   2,
		MaxSupply:    100,
	}})
	require.True(t, errors.Is(err, ErrDegenerateStepCount), err)

	// capped at a max supply of one unit
	_, err = GenerateSteps(GenerateStepArgs{CurveData: CurveParameter{
		CurveType:    CurveTypeExponential,
		InitialPrice: 1,
		FinalPrice:   2,
		MaxSupply:    1,
	}})
	require.True(t, errors.Is(err, ErrDegenerateStepCount), err)
}

func TestGenerateSteps_Properties(t *testing.T) {
	params := []CurveParameter{
		{CurveType: CurveTypeLinear, StepCount: 37, InitialPrice: 0.003, FinalPrice: 0.9, MaxSupply: 21_000_000},
		{CurveType: CurveTypeLinear, InitialPrice: 1, FinalPrice: 3, MaxSupply: 250},
		{CurveType: CurveTypeExponential, StepCount: 64, InitialPrice: 0.5, FinalPrice: 64, LpAllocation: 1000, MaxSupply: 100_000},
		{CurveType: CurveTypeExponential, StepCount: 200, InitialPrice: 0.123456, FinalPrice: 0.987654, MaxSupply: 1e9},
		{CurveType: CurveTypeLogarithmic, StepCount: 500, InitialPrice: 0.0001, FinalPrice: 0.1, MaxSupply: 1e6},
		{CurveType: CurveTypeLogarithmic, InitialPrice: 0, FinalPrice: 10, LpAllocation: 50, MaxSupply: 60},
		{CurveType: CurveTypeFlat, InitialPrice: 3, FinalPrice: 3, LpAllocation: 10, MaxSupply: 20},
	}

	for _, p := range params {
		t.Run(p.CurveType.String(), func(t *testing.T) {
			first := generate(t, p)
			second := generate(t, p)
			require.Equal(t, first, second, "generation must be idempotent")

			steps := first.StepData
			require.NotEmpty(t, steps)

			for i := 1; i < len(steps); i++ {
				require.Greaterf(t, steps[i].RangeTo, steps[i-1].RangeTo, "rangeTo not increasing at %d", i)
			}

			priced := steps
			if p.LpAllocation > 0 {
				require.Equal(t, CurveStep{RangeTo: p.LpAllocation, Price: 0}, steps[0])
				priced = steps[1:]
			}

			maxPrice := p.FinalPrice
			if p.CurveType == CurveTypeFlat {
				maxPrice = p.InitialPrice
			}
			for i, s := range priced {
				require.GreaterOrEqualf(t, s.Price, p.InitialPrice, "step %d below initial price", i)
				require.LessOrEqualf(t, s.Price, maxPrice, "step %d above final price", i)
				require.Positive(t, s.Price)
			}
			require.Equal(t, maxPrice, priced[len(priced)-1].Price)
			require.Equal(t, p.MaxSupply, steps[len(steps)-1].RangeTo)
		})
	}
}

func TestGenerateSteps_DoesNotMutateArgs(t *testing.T) {
	args := GenerateStepArgs{
		ReserveToken: ReserveToken{Ticker: "TUSDA", Denomination: 6},
		CurveData: CurveParameter{
			CurveType:  CurveTypeLinear,
			FinalPrice: 1,
			MaxSupply:  100,
		},
		SupplyDecimals: int32Ptr(4),
	}
	before := args.CurveData

	_, err := GenerateSteps(args)
	require.NoError(t, err)
	require.Equal(t, before, args.CurveData)
	require.Equal(t, int32(4), *args.SupplyDecimals)
}

func TestGenerateSteps_InvalidArgs(t *testing.T) {
	_, err := GenerateSteps(GenerateStepArgs{
		ReserveToken: ReserveToken{Denomination: 19},
		CurveData:    CurveParameter{CurveType: CurveTypeFlat, InitialPrice: 1, MaxSupply: 1},
	})
	require.True(t, errors.Is(err, ErrInvalidCurveParameter), err)

	_, err = GenerateSteps(GenerateStepArgs{
		CurveData:      CurveParameter{CurveType: CurveTypeFlat, InitialPrice: 1, MaxSupply: 1},
		SupplyDecimals: int32Ptr(-1),
	})
	require.True(t, errors.Is(err, ErrInvalidCurveParameter), err)
}
