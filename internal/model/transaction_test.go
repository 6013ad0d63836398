package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethod(t *testing.T) {
	tests := []struct {
		method  PaymentMethod
		label   string
		valid   bool
		digital bool
	}{
		{method: MethodCash, label: "Cash", valid: true, digital: false},
		{method: MethodCard, label: "Card Payment", valid: true, digital: true},
		{method: MethodMobileMoney, label: "Mobile Money", valid: true, digital: true},
		{method: PaymentMethod("barter"), label: "barter", valid: false, digital: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.method.Valid())
			assert.Equal(t, tt.digital, tt.method.IsDigital())
			assert.Equal(t, tt.label, tt.method.String())
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentMethod
	}{
		{in: "cash", want: MethodCash},
		{in: " CASH ", want: MethodCash},
		{in: "Card Payment", want: MethodCard},
		{in: "card", want: MethodCard},
		{in: "Mobile Money", want: MethodMobileMoney},
		{in: "mobile-money", want: MethodMobileMoney},
		{in: "momo", want: MethodMobileMoney},
		{in: "cheque", want: PaymentMethod("cheque")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseMethod(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.False(t, ParseMethod("cheque").Valid())
}

func TestNewTransaction_Hash(t *testing.T) {
	base := NewTransaction{
		OccurredAt:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Event makeup",
		Method:      MethodCard,
		Amount:      decimal.RequireFromString("1200.50"),
	}

	same := base
	same.Amount = decimal.RequireFromString("1200.5")
	assert.Equal(t, base.Hash(), same.Hash(), "equal amounts hash equally")

	otherZone := base
	otherZone.OccurredAt = base.OccurredAt.In(time.FixedZone("EAT", 3*60*60))
	assert.Equal(t, base.Hash(), otherZone.Hash())

	changed := base
	changed.Amount = decimal.NewFromInt(1300)
	assert.NotEqual(t, base.Hash(), changed.Hash())

	changed = base
	changed.OccurredAt = base.OccurredAt.AddDate(0, 0, 1)
	assert.NotEqual(t, base.Hash(), changed.Hash())

	changed = base
	changed.Method = MethodCash
	assert.NotEqual(t, base.Hash(), changed.Hash())

	changed = base
	changed.SourceID = "2026011501"
	assert.NotEqual(t, base.Hash(), changed.Hash())
}

func TestTransaction_AmountFloat(t *testing.T) {
	txn := Transaction{Amount: decimal.RequireFromString("2200.25")}
	assert.InDelta(t, 2200.25, txn.AmountFloat(), 1e-9)
}
