package scoring

import "time"

// Category weights. They sum to 1.
const (
	WeightPaymentConsistency   = 0.25
	WeightIncomeStability      = 0.20
	WeightTransactionFrequency = 0.20
	WeightDigitalPaymentUsage  = 0.15
	WeightCashFlowHealth       = 0.20
)

const (
	// Window is how far back a transaction may be and still count.
	Window = 30 * 24 * time.Hour

	// MonthlyIncomeTarget is the window income that earns a full income
	// stability score.
	MonthlyIncomeTarget = 20_000.0

	// FrequencyTarget is the window transaction count that earns a full
	// frequency score.
	FrequencyTarget = 20

	// RecentSplit is how many leading window transactions count as recent
	// for cash flow health.
	RecentSplit = 5

	// DispersionPenalty scales the coefficient of variation into points
	// lost from payment consistency.
	DispersionPenalty = 50.0

	// MaxScore is the ceiling for every category and the overall score.
	MaxScore = 100.0

	// GoodCategoryScore is the category score at which the breakdown marks a
	// category as performing well.
	GoodCategoryScore = 70
)
