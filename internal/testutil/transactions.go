// Package testutil provides fluent builders for transaction histories used
// across package tests.
//
// Example usage:
//
//	txns := testutil.NewHistory(now).
//		Add(1500, model.MethodCard, 1).
//		Add(800, model.MethodCash, 3).
//		Build()
package testutil

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// History builds a newest-first transaction list relative to an evaluation
// date. Calls to Add should go from newest to oldest.
type History struct {
	now  time.Time
	txns []model.Transaction
}

// NewHistory starts an empty history evaluated at now.
func NewHistory(now time.Time) *History {
	return &History{now: now}
}

// Add appends a transaction that happened daysAgo days before now.
func (h *History) Add(amount float64, method model.PaymentMethod, daysAgo int) *History {
	h.txns = append(h.txns, model.Transaction{
		ID:          fmt.Sprintf("txn-%d", len(h.txns)+1),
		Amount:      decimal.NewFromFloat(amount),
		Method:      method,
		OccurredAt:  h.now.AddDate(0, 0, -daysAgo),
		Description: fmt.Sprintf("test transaction %d", len(h.txns)+1),
	})
	return h
}

// Repeat adds n identical transactions spaced one day apart, starting
// daysAgo days before now.
func (h *History) Repeat(n int, amount float64, method model.PaymentMethod, daysAgo int) *History {
	for i := 0; i < n; i++ {
		h.Add(amount, method, daysAgo+i)
	}
	return h
}

// Build returns a copy of the history.
func (h *History) Build() []model.Transaction {
	out := make([]model.Transaction, len(h.txns))
	copy(out, h.txns)
	return out
}

// Entry returns a NewTransaction for feeding a store or engine.
func Entry(amount float64, method model.PaymentMethod, at time.Time) model.NewTransaction {
	return model.NewTransaction{
		Amount:      decimal.NewFromFloat(amount),
		Method:      method,
		OccurredAt:  at,
		Description: "test entry",
	}
}
