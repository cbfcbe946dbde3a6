package curve

// Allocation is the supply split and reserve economics of a curve.
type Allocation struct {
	MaxSupply    float64 `json:"maxSupply"`
	LpAllocation float64 `json:"lpAllocation"`
	CurveSupply  float64 `json:"curveSupply"`
	// TotalLockedValue is CalculateTotalLockedValue over the steps.
	TotalLockedValue float64 `json:"totalLockedValue"`
	// SellOutCost is what buying the whole curve supply costs.
	SellOutCost       float64 `json:"sellOutCost"`
	FinalPrice        float64 `json:"finalPrice"`
	FullyDilutedValue float64 `json:"fullyDilutedValue"`
}

func SummarizeAllocation(param CurveParameter, steps []CurveStep) Allocation {
	finalPrice := param.FinalPrice
	if param.CurveType == CurveTypeFlat {
		finalPrice = param.InitialPrice
	}

	maxSupply := dec(param.MaxSupply)
	lp := dec(param.LpAllocation)

	return Allocation{
		MaxSupply:         param.MaxSupply,
		LpAllocation:      param.LpAllocation,
		CurveSupply:       maxSupply.Sub(lp).InexactFloat64(),
		TotalLockedValue:  CalculateTotalLockedValue(steps),
		SellOutCost:       integrate(steps, lp, maxSupply).InexactFloat64(),
		FinalPrice:        finalPrice,
		FullyDilutedValue: maxSupply.Mul(dec(finalPrice)).InexactFloat64(),
	}
}
