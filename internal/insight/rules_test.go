package insight

import (
	"testing"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/scoring"
	"github.com/Veraticus/the-credit-must-flow/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		score     model.CreditScore
		wantKinds []model.InsightKind
		wantCats  []string
	}{
		{
			name: "strong digital and overall",
			score: model.CreditScore{Overall: 75, Categories: model.CategoryScores{
				DigitalPaymentUsage: 80, PaymentConsistency: 90, TransactionFrequency: 90,
			}},
			wantKinds: []model.InsightKind{model.InsightPositive, model.InsightPositive},
			wantCats:  []string{CategoryDigital, ""},
		},
		{
			name:      "every rule fires in order",
			score:     model.CreditScore{Overall: 70, Categories: model.CategoryScores{DigitalPaymentUsage: 70, PaymentConsistency: 59, TransactionFrequency: 49}},
			wantKinds: []model.InsightKind{model.InsightPositive, model.InsightWarning, model.InsightTip, model.InsightPositive},
			wantCats:  []string{CategoryDigital, CategoryConsistency, CategoryActivity, ""},
		},
		{
			name:  "nothing fires at the thresholds",
			score: model.CreditScore{Overall: 69, Categories: model.CategoryScores{DigitalPaymentUsage: 69, PaymentConsistency: 60, TransactionFrequency: 50}},
		},
		{
			name:      "empty history score only gets the activity tip",
			score:     model.CreditScore{Overall: 25, Categories: model.CategoryScores{PaymentConsistency: 100}},
			wantKinds: []model.InsightKind{model.InsightTip},
			wantCats:  []string{CategoryActivity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.score, nil)
			require.Len(t, got, len(tt.wantKinds))
			for i := range got {
				assert.Equal(t, tt.wantKinds[i], got[i].Kind)
				assert.Equal(t, tt.wantCats[i], got[i].Category)
				assert.NotEmpty(t, got[i].Message)
			}
		})
	}
}

func TestGenerate_DemoHistory(t *testing.T) {
	txns := seed.Demo()
	got := Generate(scoring.Compute(txns, seed.DemoAsOf), txns)

	require.Len(t, got, 3)
	assert.Equal(t, CategoryDigital, got[0].Category)
	assert.Equal(t, CategoryActivity, got[1].Category)
	assert.Equal(t, model.InsightPositive, got[2].Kind)
	assert.Empty(t, got[2].Category)
}

func TestEvaluate_CustomRules(t *testing.T) {
	always := Rule{
		Name:    "always",
		Applies: func(model.CreditScore, []model.Transaction) bool { return true },
		Insight: model.Insight{Kind: model.InsightTip, Message: "always"},
	}
	usesHistory := Rule{
		Name: "has-history",
		Applies: func(_ model.CreditScore, txns []model.Transaction) bool {
			return len(txns) > 0
		},
		Insight: model.Insight{Kind: model.InsightPositive, Message: "history"},
	}
	noPredicate := Rule{Name: "disabled", Insight: model.Insight{Message: "never"}}

	got := Evaluate([]Rule{usesHistory, noPredicate, always}, model.CreditScore{}, seed.Demo())
	require.Len(t, got, 2)
	assert.Equal(t, "history", got[0].Message)
	assert.Equal(t, "always", got[1].Message)

	assert.Empty(t, Evaluate(nil, model.CreditScore{}, nil))
}
