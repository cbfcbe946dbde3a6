package curve

import (
	"sort"

	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// CalculateArea sums width*height over consecutive points sorted by X, where
// height is the left point's Y. With partialIndex the sum stops at that index
// and IntervalArea holds the area of the interval ending there.
func CalculateArea(points []GraphPoint, partialIndex *int) AreaResult {
	sorted := make([]GraphPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	last := len(sorted) - 1
	if partialIndex != nil && *partialIndex < last {
		last = *partialIndex
	}

	total := decimal.Zero
	interval := decimal.Zero
	for i := 1; i <= last; i++ {
		width := dec(sorted[i].X).Sub(dec(sorted[i-1].X))
		height := dec(sorted[i-1].Y)
		if !width.IsPositive() || !height.IsPositive() {
			continue
		}
		area := width.Mul(height)
		total = total.Add(area)
		if partialIndex != nil && i == *partialIndex {
			interval = area
		}
	}

	return AreaResult{
		IntervalArea: interval.InexactFloat64(),
		TotalArea:    total.InexactFloat64(),
	}
}

// GenerateTableData lays steps out as rows. A row shows its own price while
// its tvl is measured with the previous step's price.
func GenerateTableData(steps []CurveStep) TableResult {
	data := make([]TableData, 0, len(steps))
	total := decimal.Zero
	for i, step := range steps {
		row := TableData{End: step.RangeTo, Price: step.Price}
		if i > 0 {
			row.Start = steps[i-1].RangeTo
			width := dec(row.End).Sub(dec(row.Start))
			height := dec(steps[i-1].Price)
			if width.IsPositive() && height.IsPositive() {
				tvl := width.Mul(height)
				row.TVL = tvl.InexactFloat64()
				total = total.Add(tvl)
			}
		}
		data = append(data, row)
	}
	return TableResult{Data: data, TotalTVL: total.InexactFloat64()}
}

// CalculateTotalLockedValue sums the left-step value of every interval.
//
// The loop runs i = 1..len(steps) inclusive. The final pass has no right
// boundary and adds nothing, so the last price only ever acts as a boundary.
// TODO: reconcile the iteration bounds with GenerateTableData once the
// contract side settles which total it validates against.
func CalculateTotalLockedValue(steps []CurveStep) float64 {
	total := decimal.Zero
	for i := 1; i <= len(steps); i++ {
		if i == len(steps) {
			continue
		}
		width := dec(steps[i].RangeTo).Sub(dec(steps[i-1].RangeTo))
		height := dec(steps[i-1].Price)
		if width.IsPositive() && height.IsPositive() {
			total = total.Add(width.Mul(height))
		}
	}
	return total.InexactFloat64()
}

func StepsToPoints(steps []CurveStep) []GraphPoint {
	points := make([]GraphPoint, len(steps))
	for i, s := range steps {
		points[i] = GraphPoint{X: s.RangeTo, Y: s.Price}
	}
	return points
}
