// Package loan resolves which catalog loan products a credit score unlocks.
package loan

import (
	"fmt"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// Minimum overall scores for each tier.
const (
	StarterMinScore = 50
	GrowthMinScore  = 65
	PremiumMinScore = 80
)

// Product is a fixed catalog entry. MonthlyPayment is quoted by the lender
// and is not derived from the other terms.
type Product struct {
	ID             string
	Tier           model.LoanTier
	Amount         decimal.Decimal
	MonthlyPayment decimal.Decimal
	InterestRate   float64
	TermMonths     int
	MinScore       int
}

// Catalog returns the loan products in tier order.
func Catalog() []Product {
	return []Product{
		{
			ID:             "tier1",
			Tier:           model.TierStarter,
			Amount:         decimal.NewFromInt(15_000),
			InterestRate:   8.5,
			TermMonths:     12,
			MonthlyPayment: decimal.NewFromInt(1_350),
			MinScore:       StarterMinScore,
		},
		{
			ID:             "tier2",
			Tier:           model.TierGrowth,
			Amount:         decimal.NewFromInt(35_000),
			InterestRate:   7.0,
			TermMonths:     18,
			MonthlyPayment: decimal.NewFromInt(2_150),
			MinScore:       GrowthMinScore,
		},
		{
			ID:             "tier3",
			Tier:           model.TierPremium,
			Amount:         decimal.NewFromInt(75_000),
			InterestRate:   5.5,
			TermMonths:     24,
			MonthlyPayment: decimal.NewFromInt(3_450),
			MinScore:       PremiumMinScore,
		},
	}
}

// Resolve returns every catalog product with its eligibility for score.
// The result always has one offer per tier, in catalog order.
func Resolve(score model.CreditScore) []model.LoanOffer {
	products := Catalog()
	offers := make([]model.LoanOffer, 0, len(products))

	for _, p := range products {
		offer := model.LoanOffer{
			ID:             p.ID,
			Tier:           p.Tier,
			Amount:         p.Amount,
			InterestRate:   p.InterestRate,
			TermMonths:     p.TermMonths,
			MonthlyPayment: p.MonthlyPayment,
			MinScore:       p.MinScore,
			Eligible:       score.Overall >= p.MinScore,
		}
		if !offer.Eligible {
			offer.LockReason = LockReason(p.MinScore)
		}
		offers = append(offers, offer)
	}

	return offers
}

// LockReason explains why a tier with the given threshold is locked.
func LockReason(minScore int) string {
	return fmt.Sprintf("Minimum score of %d required", minScore)
}

// Eligible filters offers down to the unlocked ones.
func Eligible(offers []model.LoanOffer) []model.LoanOffer {
	var out []model.LoanOffer
	for _, o := range offers {
		if o.Eligible {
			out = append(out, o)
		}
	}
	return out
}
