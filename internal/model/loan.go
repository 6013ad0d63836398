package model

import "github.com/shopspring/decimal"

// LoanTier names a product in the loan catalog.
type LoanTier string

// Loan tiers in catalog order.
const (
	TierStarter LoanTier = "Starter"
	TierGrowth  LoanTier = "Growth"
	TierPremium LoanTier = "Premium"
)

// LoanOffer is one catalog product together with its eligibility for the
// current score.
type LoanOffer struct {
	ID             string          `json:"id"`
	Tier           LoanTier        `json:"tier"`
	LockReason     string          `json:"lock_reason,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	InterestRate   float64         `json:"interest_rate"`
	TermMonths     int             `json:"term_months"`
	MinScore       int             `json:"min_score"`
	Eligible       bool            `json:"eligible"`
}
