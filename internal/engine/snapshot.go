package engine

import (
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
)

// Snapshot is one published result of the scoring pipeline. Every field
// was computed from the same history.
type Snapshot struct {
	ComputedAt       time.Time                 `json:"computed_at"`
	Band             model.ScoreBand           `json:"band"`
	Offers           []model.LoanOffer         `json:"offers"`
	Insights         []model.Insight           `json:"insights"`
	Breakdown        []model.CategoryBreakdown `json:"breakdown"`
	Score            model.CreditScore         `json:"score"`
	TransactionCount int                       `json:"transaction_count"`
	WindowCount      int                       `json:"window_count"`
	Version          uint64                    `json:"version"`
}

func (s *Snapshot) clone() Snapshot {
	out := *s
	out.Offers = cloneSlice(s.Offers)
	out.Insights = cloneSlice(s.Insights)
	out.Breakdown = cloneSlice(s.Breakdown)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
