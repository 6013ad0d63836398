package scoring

import (
	"math"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
)

type categoryInfo struct {
	name        string
	description string
	lowTip      string
	highTip     string
	weight      float64
}

var categories = map[model.CategoryKey]categoryInfo{
	model.PaymentConsistency: {
		name:        "Payment Consistency",
		description: "Measures how steady your transaction amounts are from one payment to the next.",
		lowTip:      "Keep payment amounts and schedules steady and avoid long gaps between income.",
		highTip:     "Your payments are consistent. Keep maintaining this pattern.",
		weight:      WeightPaymentConsistency,
	},
	model.IncomeStability: {
		name:        "Income Stability",
		description: "Compares your income over the last 30 days against a monthly target.",
		lowTip:      "Record all business income so your monthly total reflects your real activity.",
		highTip:     "Your monthly income is on target. Continue this pattern.",
		weight:      WeightIncomeStability,
	},
	model.TransactionFrequency: {
		name:        "Transaction Frequency",
		description: "Tracks how often you conduct business transactions.",
		lowTip:      "Add more regular transactions to show active business operations.",
		highTip:     "Great transaction activity. Your business shows healthy regular operations.",
		weight:      WeightTransactionFrequency,
	},
	model.DigitalPaymentUsage: {
		name:        "Digital Payment Usage",
		description: "Measures your use of digital payments versus cash.",
		lowTip:      "Accept card and mobile money payments instead of cash where you can.",
		highTip:     "You are making effective use of digital payment methods.",
		weight:      WeightDigitalPaymentUsage,
	},
	model.CashFlowHealth: {
		name:        "Cash Flow Health",
		description: "Compares your most recent income with earlier income in the window.",
		lowTip:      "Recent income is lagging earlier months. Look for ways to keep cash coming in.",
		highTip:     "Your recent cash flow is healthy. Continue managing your finances well.",
		weight:      WeightCashFlowHealth,
	},
}

// CategoryName returns the display name for key.
func CategoryName(key model.CategoryKey) string {
	if info, ok := categories[key]; ok {
		return info.name
	}
	return string(key)
}

// Breakdown explains each category's share of the overall score, in
// display order. Points are the weighted contribution out of MaxPoints, so
// they may not add up exactly to the overall score.
func Breakdown(score model.CreditScore) []model.CategoryBreakdown {
	out := make([]model.CategoryBreakdown, 0, len(model.CategoryKeys))

	for _, key := range model.CategoryKeys {
		info := categories[key]
		value := score.Categories.Get(key)
		good := value >= GoodCategoryScore

		tip := info.lowTip
		if good {
			tip = info.highTip
		}

		out = append(out, model.CategoryBreakdown{
			Key:         key,
			Name:        info.name,
			Description: info.description,
			Tip:         tip,
			Weight:      info.weight,
			Score:       value,
			Points:      int(math.Round(float64(value) * info.weight)),
			MaxPoints:   int(math.Round(MaxScore * info.weight)),
			Good:        good,
		})
	}

	return out
}
