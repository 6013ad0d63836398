// Package seed provides the demo business history used by the CLI and the
// regression tests.
package seed

import (
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// DemoAsOf is the evaluation date the demo history was recorded against.
var DemoAsOf = time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)

// Demo returns the history of a freelance makeup artist, newest first.
func Demo() []model.Transaction {
	day := func(month time.Month, d int) time.Time {
		year := 2026
		if month == time.December {
			year = 2025
		}
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	return []model.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(3500), Method: model.MethodMobileMoney, OccurredAt: day(time.January, 18), Description: "Bridal makeup service"},
		{ID: "2", Amount: decimal.NewFromInt(1200), Method: model.MethodCard, OccurredAt: day(time.January, 15), Description: "Event makeup"},
		{ID: "3", Amount: decimal.NewFromInt(800), Method: model.MethodCash, OccurredAt: day(time.January, 12), Description: "Makeup lesson"},
		{ID: "4", Amount: decimal.NewFromInt(2200), Method: model.MethodMobileMoney, OccurredAt: day(time.January, 10), Description: "Wedding party makeup"},
		{ID: "5", Amount: decimal.NewFromInt(1500), Method: model.MethodCard, OccurredAt: day(time.January, 8), Description: "Photoshoot makeup"},
		{ID: "6", Amount: decimal.NewFromInt(950), Method: model.MethodMobileMoney, OccurredAt: day(time.January, 5), Description: "Regular client"},
		{ID: "7", Amount: decimal.NewFromInt(600), Method: model.MethodCash, OccurredAt: day(time.January, 3), Description: "Quick touch-up"},
		{ID: "8", Amount: decimal.NewFromInt(2800), Method: model.MethodCard, OccurredAt: day(time.December, 28), Description: "Corporate event"},
	}
}
