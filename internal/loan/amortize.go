package loan

import (
	"math"

	"github.com/shopspring/decimal"
)

// AmortizedPayment returns the level monthly payment that repays amount at
// the given annual percentage rate over termMonths, rounded to cents. It is
// used to compare against the catalog quote; offers keep the quoted value.
func AmortizedPayment(amount decimal.Decimal, annualRate float64, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}

	principal := amount.InexactFloat64()
	n := float64(termMonths)

	var payment float64
	if annualRate == 0 {
		payment = principal / n
	} else {
		monthly := annualRate / 100 / 12
		payment = principal * (monthly / (1 - math.Pow(1+monthly, -n)))
	}

	return decimal.NewFromFloat(payment).Round(2)
}

// QuoteSpread returns how far the catalog quote for p sits above (positive)
// or below (negative) the amortized payment.
func QuoteSpread(p Product) decimal.Decimal {
	return p.MonthlyPayment.Sub(AmortizedPayment(p.Amount, p.InterestRate, p.TermMonths))
}
