package curve

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Quote is the reserve value of moving Amount tokens along the step table.
type Quote struct {
	Amount       float64 `json:"amount"`
	Cost         float64 `json:"cost"`
	AveragePrice float64 `json:"averagePrice"`
	StartPrice   float64 `json:"startPrice"`
	EndPrice     float64 `json:"endPrice"`
}

// Each step prices the range (previous RangeTo, RangeTo]; the first range starts at 0.

// stepAfter returns the first step whose boundary lies beyond supply.
func stepAfter(steps []CurveStep, supply decimal.Decimal) (CurveStep, bool) {
	for _, s := range steps {
		if dec(s.RangeTo).GreaterThan(supply) {
			return s, true
		}
	}
	return CurveStep{}, false
}

// stepReaching returns the first step whose boundary is at or beyond supply.
func stepReaching(steps []CurveStep, supply decimal.Decimal) (CurveStep, bool) {
	for _, s := range steps {
		if dec(s.RangeTo).GreaterThanOrEqual(supply) {
			return s, true
		}
	}
	return CurveStep{}, false
}

// integrate returns the reserve value of the supply between from and to.
func integrate(steps []CurveStep, from, to decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero
	for _, s := range steps {
		upper := dec(s.RangeTo)
		lo := decimal.Max(lower, from)
		hi := decimal.Min(upper, to)
		if hi.GreaterThan(lo) {
			total = total.Add(hi.Sub(lo).Mul(dec(s.Price)))
		}
		lower = upper
		if upper.GreaterThanOrEqual(to) {
			break
		}
	}
	return total
}

func curveEnd(steps []CurveStep) decimal.Decimal {
	if len(steps) == 0 {
		return decimal.Zero
	}
	return dec(steps[len(steps)-1].RangeTo)
}

// PriceAtSupply returns the price of the next token bought at supply.
func PriceAtSupply(steps []CurveStep, supply float64) (float64, error) {
	if !isFinite(supply) || supply < 0 {
		return 0, errors.Wrapf(ErrInvalidAmount, "supply %v", supply)
	}
	s, ok := stepAfter(steps, dec(supply))
	if !ok {
		return 0, errors.Wrapf(ErrSupplyOutOfRange, "supply %v is at or past the last step", supply)
	}
	return s.Price, nil
}

// BuyQuote prices buying amount tokens when currentSupply tokens are already out.
func BuyQuote(steps []CurveStep, currentSupply, amount float64) (Quote, error) {
	if !isFinite(amount) || amount <= 0 {
		return Quote{}, errors.Wrapf(ErrInvalidAmount, "buy amount must be positive, got %v", amount)
	}
	if !isFinite(currentSupply) || currentSupply < 0 {
		return Quote{}, errors.Wrapf(ErrInvalidAmount, "current supply must not be negative, got %v", currentSupply)
	}

	from := dec(currentSupply)
	to := from.Add(dec(amount))
	if to.GreaterThan(curveEnd(steps)) {
		return Quote{}, errors.Wrapf(ErrSupplyOutOfRange, "buying %v from %v exceeds curve supply %s", amount, currentSupply, curveEnd(steps))
	}

	start, _ := stepAfter(steps, from)
	end, _ := stepReaching(steps, to)
	return newQuote(dec(amount), integrate(steps, from, to), start.Price, end.Price), nil
}

// SellQuote prices selling amount tokens back when currentSupply tokens are out.
func SellQuote(steps []CurveStep, currentSupply, amount float64) (Quote, error) {
	if !isFinite(amount) || amount <= 0 {
		return Quote{}, errors.Wrapf(ErrInvalidAmount, "sell amount must be positive, got %v", amount)
	}
	if !isFinite(currentSupply) || amount > currentSupply {
		return Quote{}, errors.Wrapf(ErrInvalidAmount, "cannot sell %v with supply %v", amount, currentSupply)
	}

	to := dec(currentSupply)
	if to.GreaterThan(curveEnd(steps)) {
		return Quote{}, errors.Wrapf(ErrSupplyOutOfRange, "supply %v exceeds curve supply %s", currentSupply, curveEnd(steps))
	}
	from := to.Sub(dec(amount))

	start, _ := stepReaching(steps, to)
	end, _ := stepAfter(steps, from)
	return newQuote(dec(amount), integrate(steps, from, to), start.Price, end.Price), nil
}

func newQuote(amount, cost decimal.Decimal, startPrice, endPrice float64) Quote {
	q := Quote{
		Amount:     amount.InexactFloat64(),
		Cost:       cost.InexactFloat64(),
		StartPrice: startPrice,
		EndPrice:   endPrice,
	}
	if amount.IsPositive() {
		q.AveragePrice = cost.DivRound(amount, MaxDecimalPoints).InexactFloat64()
	}
	return q
}
