package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// JSONReader reads a JSON array of entries shaped like the API's
// transaction payload.
type JSONReader struct{}

type jsonEntry struct {
	OccurredAt  string          `json:"occurred_at"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
}

// ParseFile decodes the array and validates each element.
func (j *JSONReader) ParseFile(ctx context.Context, r io.Reader) ([]model.NewTransaction, error) {
	var raw []jsonEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON statement: %w", err)
	}

	entries := make([]model.NewTransaction, 0, len(raw))
	for i, e := range raw {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		when := e.OccurredAt
		if when == "" {
			when = e.Date
		}
		at, err := ParseDate(strings.TrimSpace(when))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if !e.Amount.IsPositive() {
			return nil, fmt.Errorf("entry %d: %w: %s", i, common.ErrInvalidAmount, e.Amount)
		}
		method := model.ParseMethod(e.Method)
		if !method.Valid() {
			return nil, fmt.Errorf("entry %d: %w: %q", i, common.ErrInvalidMethod, e.Method)
		}

		entries = append(entries, model.NewTransaction{
			OccurredAt:  at,
			Amount:      e.Amount,
			Method:      method,
			Description: strings.TrimSpace(e.Description),
		})
	}

	return entries, nil
}
