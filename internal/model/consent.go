package model

import (
	"fmt"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
)

// ConsentKey names a consent toggle.
type ConsentKey string

// Consent toggles.
const (
	ConsentCreditScoring     ConsentKey = "credit_scoring"
	ConsentLoanEligibility   ConsentKey = "loan_eligibility"
	ConsentThirdPartySharing ConsentKey = "third_party_sharing"
)

// ConsentSettings records what the business owner agreed to. The scoring
// pipeline does not read these; hosts use them to decide what to show or share.
type ConsentSettings struct {
	CreditScoring     bool `json:"credit_scoring"`
	LoanEligibility   bool `json:"loan_eligibility"`
	ThirdPartySharing bool `json:"third_party_sharing"`
}

// DefaultConsent returns the settings a new profile starts with.
func DefaultConsent() ConsentSettings {
	return ConsentSettings{
		CreditScoring:     true,
		LoanEligibility:   true,
		ThirdPartySharing: false,
	}
}

// With returns a copy of c with key set to value.
func (c ConsentSettings) With(key ConsentKey, value bool) (ConsentSettings, error) {
	switch key {
	case ConsentCreditScoring:
		c.CreditScoring = value
	case ConsentLoanEligibility:
		c.LoanEligibility = value
	case ConsentThirdPartySharing:
		c.ThirdPartySharing = value
	default:
		return c, fmt.Errorf("%w: %q", common.ErrUnknownConsent, key)
	}
	return c, nil
}
