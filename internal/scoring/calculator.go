// Package scoring turns a transaction history into a multi-factor credit score.
package scoring

import (
	"math"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
)

// rawScores holds unrounded category scores.
type rawScores struct {
	paymentConsistency   float64
	incomeStability      float64
	transactionFrequency float64
	digitalPaymentUsage  float64
	cashFlowHealth       float64
}

// overall is the weighted sum of the unrounded category scores.
func (r rawScores) overall() float64 {
	return r.paymentConsistency*WeightPaymentConsistency +
		r.incomeStability*WeightIncomeStability +
		r.transactionFrequency*WeightTransactionFrequency +
		r.digitalPaymentUsage*WeightDigitalPaymentUsage +
		r.cashFlowHealth*WeightCashFlowHealth
}

// Compute scores txns as of now. txns must be ordered newest first; the
// order decides which transactions count as recent for cash flow health.
// Compute never fails: an empty window scores through the fallback
// arithmetic described on each category.
func Compute(txns []model.Transaction, now time.Time) model.CreditScore {
	raw := computeRaw(InWindow(txns, now))

	return model.CreditScore{
		Overall: round(raw.overall()),
		Categories: model.CategoryScores{
			PaymentConsistency:   round(raw.paymentConsistency),
			IncomeStability:      round(raw.incomeStability),
			TransactionFrequency: round(raw.transactionFrequency),
			DigitalPaymentUsage:  round(raw.digitalPaymentUsage),
			CashFlowHealth:       round(raw.cashFlowHealth),
		},
	}
}

// InWindow returns the transactions no older than Window, preserving order.
func InWindow(txns []model.Transaction, now time.Time) []model.Transaction {
	window := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if now.Sub(txn.OccurredAt) <= Window {
			window = append(window, txn)
		}
	}
	return window
}

func computeRaw(window []model.Transaction) rawScores {
	amounts := make([]float64, len(window))
	digital := 0
	for i, txn := range window {
		amounts[i] = txn.AmountFloat()
		if txn.Method.IsDigital() {
			digital++
		}
	}

	count := len(amounts)
	denom := float64(max(count, 1))
	total := sum(amounts)

	return rawScores{
		paymentConsistency:   paymentConsistency(amounts, total, denom),
		incomeStability:      clamp(total / MonthlyIncomeTarget * MaxScore),
		transactionFrequency: clamp(float64(count) / FrequencyTarget * MaxScore),
		digitalPaymentUsage:  float64(digital) / denom * MaxScore,
		cashFlowHealth:       cashFlowHealth(amounts),
	}
}

// paymentConsistency penalizes the coefficient of variation of amounts. A
// zero mean counts as zero dispersion.
func paymentConsistency(amounts []float64, total, denom float64) float64 {
	mean := total / denom
	if mean == 0 {
		return MaxScore
	}

	var squares float64
	for _, a := range amounts {
		squares += (a - mean) * (a - mean)
	}
	stddev := math.Sqrt(squares / denom)

	return clamp(MaxScore - (stddev/mean)*DispersionPenalty)
}

// cashFlowHealth compares the first RecentSplit amounts to the rest. The
// older sum is floored at 1, so histories of RecentSplit or fewer
// transactions score high whenever they have any income.
func cashFlowHealth(amounts []float64) float64 {
	split := min(RecentSplit, len(amounts))
	recent := sum(amounts[:split])
	older := math.Max(sum(amounts[split:]), 1)

	return clamp(recent / older * MaxScore)
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(MaxScore, v))
}

func round(v float64) int {
	return int(math.Round(v))
}
