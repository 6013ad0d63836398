package scoring

import (
	"testing"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown_DemoHistory(t *testing.T) {
	rows := Breakdown(Compute(seed.Demo(), seed.DemoAsOf))
	require.Len(t, rows, len(model.CategoryKeys))

	tests := []struct {
		key       model.CategoryKey
		name      string
		score     int
		points    int
		maxPoints int
		good      bool
	}{
		{model.PaymentConsistency, "Payment Consistency", 71, 18, 25, true},
		{model.IncomeStability, "Income Stability", 68, 14, 20, false},
		{model.TransactionFrequency, "Transaction Frequency", 40, 8, 20, false},
		{model.DigitalPaymentUsage, "Digital Payment Usage", 75, 11, 15, true},
		{model.CashFlowHealth, "Cash Flow Health", 100, 20, 20, true},
	}

	for i, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			row := rows[i]
			assert.Equal(t, tt.key, row.Key)
			assert.Equal(t, tt.name, row.Name)
			assert.Equal(t, tt.score, row.Score)
			assert.Equal(t, tt.points, row.Points)
			assert.Equal(t, tt.maxPoints, row.MaxPoints)
			assert.Equal(t, tt.good, row.Good)
			assert.NotEmpty(t, row.Description)
			assert.NotEmpty(t, row.Tip)
		})
	}
}

func TestBreakdown_MaxPointsTotalOneHundred(t *testing.T) {
	total := 0
	for _, row := range Breakdown(model.CreditScore{}) {
		total += row.MaxPoints
		assert.Equal(t, 0, row.Points)
		assert.False(t, row.Good)
	}
	assert.Equal(t, 100, total)
}

func TestBreakdown_TipFollowsThreshold(t *testing.T) {
	low := Breakdown(model.CreditScore{Categories: model.CategoryScores{CashFlowHealth: GoodCategoryScore - 1}})
	high := Breakdown(model.CreditScore{Categories: model.CategoryScores{CashFlowHealth: GoodCategoryScore}})

	last := len(model.CategoryKeys) - 1
	assert.False(t, low[last].Good)
	assert.True(t, high[last].Good)
	assert.NotEqual(t, low[last].Tip, high[last].Tip)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Digital Payment Usage", CategoryName(model.DigitalPaymentUsage))
	assert.Equal(t, "unknown", CategoryName(model.CategoryKey("unknown")))
}
