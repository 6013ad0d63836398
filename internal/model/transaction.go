package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	// MethodCash is a cash payment.
	MethodCash PaymentMethod = "cash"
	// MethodCard is a debit or credit card payment.
	MethodCard PaymentMethod = "card"
	// MethodMobileMoney is a mobile wallet transfer.
	MethodMobileMoney PaymentMethod = "mobile_money"
)

// PaymentMethods lists every supported method in display order.
var PaymentMethods = []PaymentMethod{MethodMobileMoney, MethodCard, MethodCash}

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodMobileMoney:
		return true
	}
	return false
}

// IsDigital reports whether the method counts as a digital payment.
func (m PaymentMethod) IsDigital() bool {
	return m != MethodCash
}

// ParseMethod resolves a method name or display label, ignoring case and
// separators. Unknown names return an invalid method unchanged.
func ParseMethod(s string) PaymentMethod {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)

	switch norm {
	case "cash":
		return MethodCash
	case "card", "card_payment":
		return MethodCard
	case "mobile_money", "mobile", "momo":
		return MethodMobileMoney
	default:
		return PaymentMethod(s)
	}
}

// String returns a human-readable label.
func (m PaymentMethod) String() string {
	switch m {
	case MethodCash:
		return "Cash"
	case MethodCard:
		return "Card Payment"
	case MethodMobileMoney:
		return "Mobile Money"
	default:
		return string(m)
	}
}

// Transaction is a recorded income event. Transactions are immutable once
// stored; the store hands out copies.
type Transaction struct {
	OccurredAt  time.Time       `json:"occurred_at"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Method      PaymentMethod   `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewTransaction is the caller-supplied part of a transaction. The store
// assigns the ID. SourceID carries the statement's own line identifier
// (the OFX FITID) when there is one.
type NewTransaction struct {
	OccurredAt  time.Time       `json:"occurred_at"`
	SourceID    string          `json:"source_id,omitempty"`
	Description string          `json:"description"`
	Method      PaymentMethod   `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
}

// AmountFloat returns the amount as a float64 for scoring arithmetic.
func (t Transaction) AmountFloat() float64 {
	return t.Amount.InexactFloat64()
}

// Hash returns a stable fingerprint used to recognize the same statement
// line in overlapping statement files.
func (t NewTransaction) Hash() string {
	data := fmt.Sprintf("%s:%s:%s:%s:%s",
		t.SourceID,
		t.OccurredAt.UTC().Format(time.RFC3339),
		t.Amount.StringFixed(2),
		t.Method,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
