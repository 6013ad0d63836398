package model

// CategoryKey names one of the five weighted sub-scores.
type CategoryKey string

// Category keys in display order.
const (
	PaymentConsistency   CategoryKey = "payment_consistency"
	IncomeStability      CategoryKey = "income_stability"
	TransactionFrequency CategoryKey = "transaction_frequency"
	DigitalPaymentUsage  CategoryKey = "digital_payment_usage"
	CashFlowHealth       CategoryKey = "cash_flow_health"
)

// CategoryKeys lists the category keys in display order.
var CategoryKeys = []CategoryKey{
	PaymentConsistency,
	IncomeStability,
	TransactionFrequency,
	DigitalPaymentUsage,
	CashFlowHealth,
}

// CategoryScores holds the five category scores, each in [0, 100].
type CategoryScores struct {
	PaymentConsistency   int `json:"payment_consistency"`
	IncomeStability      int `json:"income_stability"`
	TransactionFrequency int `json:"transaction_frequency"`
	DigitalPaymentUsage  int `json:"digital_payment_usage"`
	CashFlowHealth       int `json:"cash_flow_health"`
}

// Get returns the score for key, or 0 for an unknown key.
func (c CategoryScores) Get(key CategoryKey) int {
	switch key {
	case PaymentConsistency:
		return c.PaymentConsistency
	case IncomeStability:
		return c.IncomeStability
	case TransactionFrequency:
		return c.TransactionFrequency
	case DigitalPaymentUsage:
		return c.DigitalPaymentUsage
	case CashFlowHealth:
		return c.CashFlowHealth
	default:
		return 0
	}
}

// CreditScore is the derived score for a transaction snapshot.
type CreditScore struct {
	Categories CategoryScores `json:"categories"`
	Overall    int            `json:"overall"`
}

// ScoreBand is a coarse label for an overall score.
type ScoreBand string

// Score bands from best to worst.
const (
	BandExcellent ScoreBand = "Excellent"
	BandGood      ScoreBand = "Good"
	BandFair      ScoreBand = "Fair"
	BandBuilding  ScoreBand = "Building"
	BandPoor      ScoreBand = "Poor"
)

// Band maps an overall score to its label.
func Band(overall int) ScoreBand {
	switch {
	case overall >= 80:
		return BandExcellent
	case overall >= 70:
		return BandGood
	case overall >= 60:
		return BandFair
	case overall >= 50:
		return BandBuilding
	default:
		return BandPoor
	}
}

// CategoryBreakdown explains one category's contribution to the overall score.
type CategoryBreakdown struct {
	Key         CategoryKey `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Tip         string      `json:"tip"`
	Weight      float64     `json:"weight"`
	Score       int         `json:"score"`
	Points      int         `json:"points"`
	MaxPoints   int         `json:"max_points"`
	Good        bool        `json:"good"`
}
