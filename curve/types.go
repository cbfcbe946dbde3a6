package curve

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type CurveType uint8

const (
	CurveTypeFlat        CurveType = 0
	CurveTypeLinear      CurveType = 1
	CurveTypeExponential CurveType = 2
	CurveTypeLogarithmic CurveType = 3
)

var curveTypeNames = map[CurveType]string{
	CurveTypeFlat:        "FLAT",
	CurveTypeLinear:      "LINEAR",
	CurveTypeExponential: "EXPONENTIAL",
	CurveTypeLogarithmic: "LOGARITHMIC",
}

func (t CurveType) IsValid() bool {
	_, ok := curveTypeNames[t]
	return ok
}

func (t CurveType) String() string {
	if name, ok := curveTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CurveType(%d)", uint8(t))
}

// ParseCurveType accepts the textual form in any letter case.
func ParseCurveType(s string) (CurveType, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range curveTypeNames {
		if name == want {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidCurveParameter, "unknown curve type %q", s)
}

func (t CurveType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, errors.Wrapf(ErrInvalidCurveParameter, "unknown curve type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *CurveType) UnmarshalText(text []byte) error {
	parsed, err := ParseCurveType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CurveParameter describes the desired price curve of a token sale.
type CurveParameter struct {
	CurveType CurveType `json:"curveType" yaml:"curveType"`
	// StepCount of zero means DefaultStepCount. FLAT curves always use one step.
	StepCount    int     `json:"stepCount,omitempty" yaml:"stepCount,omitempty"`
	InitialPrice float64 `json:"initialPrice" yaml:"initialPrice"`
	FinalPrice   float64 `json:"finalPrice" yaml:"finalPrice"`
	// LpAllocation is the zero-priced supply reserved before the curve starts.
	LpAllocation float64 `json:"lpAllocation,omitempty" yaml:"lpAllocation,omitempty"`
	MaxSupply    float64 `json:"maxSupply" yaml:"maxSupply"`
}

// CurveStep is one tier of the discretized curve: Price applies up to the
// cumulative supply boundary RangeTo.
type CurveStep struct {
	RangeTo float64 `json:"rangeTo" yaml:"rangeTo"`
	Price   float64 `json:"price" yaml:"price"`
}

type TableData struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Price float64 `json:"price"`
	TVL   float64 `json:"tvl"`
}

type GraphPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ReserveToken is the currency the curve is priced in.
type ReserveToken struct {
	Ticker string
	// Denomination caps the decimals kept on prices. Zero means unspecified.
	Denomination int32
}

type GenerateStepArgs struct {
	ReserveToken ReserveToken
	CurveData    CurveParameter
	// SupplyDecimals is the precision of supply positions, MaxDecimalPoints when nil.
	SupplyDecimals *int32
}

type GenerateStepResult struct {
	StepData   []CurveStep `json:"stepData"`
	MergeCount int         `json:"mergeCount"`
}

type AreaResult struct {
	IntervalArea float64 `json:"intervalArea"`
	TotalArea    float64 `json:"totalArea"`
}

type TableResult struct {
	Data     []TableData `json:"data"`
	TotalTVL float64     `json:"totalTVL"`
}
