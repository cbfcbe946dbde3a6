package curve

const (
	// DefaultStepCount is used when CurveParameter.StepCount is left at zero.
	DefaultStepCount = 1000
	// MaxStepCount bounds the size of a generated step table.
	MaxStepCount = 100_000

	// MaxDecimalPoints is the finest precision of any supply position or price.
	MaxDecimalPoints = 18
	// PriceSignificantDigits is the number of significant digits kept on prices.
	PriceSignificantDigits = 5

	// at most one re-anchor pass after a zero starting price
	maxGenerationPasses = 2
)
