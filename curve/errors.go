package curve

import "github.com/pkg/errors"

var (
	ErrInvalidCurveParameter = errors.New("invalid curve parameter")
	ErrDegenerateStepCount   = errors.New("degenerate step count")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrSupplyOutOfRange      = errors.New("supply out of curve range")
)
