// Package insight explains a credit score through an ordered set of rules.
package insight

import "github.com/Veraticus/the-credit-must-flow/internal/model"

// Rule thresholds.
const (
	DigitalUsageStrong    = 70
	ConsistencyWeak       = 60
	FrequencyLow          = 50
	OverallBetterTerms    = 70
	CategoryDigital       = "Digital Payments"
	CategoryConsistency   = "Consistency"
	CategoryActivity      = "Activity"
	messageDigitalUsage   = "Excellent digital payment usage! This strengthens your creditworthiness."
	messageConsistency    = "Transaction amounts vary significantly. More consistent income patterns improve your score."
	messageFrequency      = "Increase transaction frequency by recording all business activities."
	messageBetterLoanTerm = "You qualify for better loan terms! Check your eligible offers."
)

// Predicate decides whether a rule fires for a score and its history.
type Predicate func(score model.CreditScore, txns []model.Transaction) bool

// Rule emits Insight when Applies holds.
type Rule struct {
	Applies Predicate
	Name    string
	Insight model.Insight
}

// DefaultRules returns the standard rule set in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "digital-usage-strong",
			Applies: func(s model.CreditScore, _ []model.Transaction) bool {
				return s.Categories.DigitalPaymentUsage >= DigitalUsageStrong
			},
			Insight: model.Insight{Kind: model.InsightPositive, Message: messageDigitalUsage, Category: CategoryDigital},
		},
		{
			Name: "consistency-weak",
			Applies: func(s model.CreditScore, _ []model.Transaction) bool {
				return s.Categories.PaymentConsistency < ConsistencyWeak
			},
			Insight: model.Insight{Kind: model.InsightWarning, Message: messageConsistency, Category: CategoryConsistency},
		},
		{
			Name: "frequency-low",
			Applies: func(s model.CreditScore, _ []model.Transaction) bool {
				return s.Categories.TransactionFrequency < FrequencyLow
			},
			Insight: model.Insight{Kind: model.InsightTip, Message: messageFrequency, Category: CategoryActivity},
		},
		{
			Name: "better-loan-terms",
			Applies: func(s model.CreditScore, _ []model.Transaction) bool {
				return s.Overall >= OverallBetterTerms
			},
			Insight: model.Insight{Kind: model.InsightPositive, Message: messageBetterLoanTerm},
		},
	}
}

// Generate evaluates the default rules.
func Generate(score model.CreditScore, txns []model.Transaction) []model.Insight {
	return Evaluate(DefaultRules(), score, txns)
}

// Evaluate runs every rule in order and collects the insights of those that
// fire. Rules are independent; the output keeps rule order.
func Evaluate(rules []Rule, score model.CreditScore, txns []model.Transaction) []model.Insight {
	insights := make([]model.Insight, 0, len(rules))
	for _, rule := range rules {
		if rule.Applies != nil && rule.Applies(score, txns) {
			insights = append(insights, rule.Insight)
		}
	}
	return insights
}
