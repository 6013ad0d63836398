package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// DateLayouts lists the accepted date formats, tried in order.
var DateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// CSVReader reads statements with a header row naming at least the date,
// amount, and method columns. A description column is optional. Column
// order and header case do not matter.
type CSVReader struct{}

// ParseFile reads every data row as an income entry. Rows with a zero or
// negative amount are expenses and are skipped.
func (c *CSVReader) ParseFile(ctx context.Context, r io.Reader) ([]model.NewTransaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, common.ErrNoTransactions
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var entries []model.NewTransaction
	skipped := 0
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", line, err)
		}

		entry, ok, err := cols.entry(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	slog.Debug("Parsed CSV statement",
		"income_entries", len(entries),
		"skipped_debits", skipped)

	return entries, nil
}

type columns struct {
	date, amount, method, description int
}

func columnIndex(header []string) (columns, error) {
	cols := columns{date: -1, amount: -1, method: -1, description: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date", "occurred_at":
			cols.date = i
		case "amount":
			cols.amount = i
		case "method", "payment_method":
			cols.method = i
		case "description", "memo":
			cols.description = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, "date")
	}
	if cols.amount < 0 {
		missing = append(missing, "amount")
	}
	if cols.method < 0 {
		missing = append(missing, "method")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("CSV header missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// entry converts one row. The second result is false for expense rows.
func (c columns) entry(record []string) (model.NewTransaction, bool, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	at, err := ParseDate(field(c.date))
	if err != nil {
		return model.NewTransaction{}, false, err
	}

	amount, err := parseSignedAmount(field(c.amount))
	if err != nil {
		return model.NewTransaction{}, false, err
	}
	if !amount.IsPositive() {
		return model.NewTransaction{}, false, nil
	}

	method := model.ParseMethod(field(c.method))
	if !method.Valid() {
		return model.NewTransaction{}, false, fmt.Errorf("%w: %q", common.ErrInvalidMethod, field(c.method))
	}

	return model.NewTransaction{
		OccurredAt:  at,
		Amount:      amount,
		Method:      method,
		Description: field(c.description),
	}, true, nil
}

// ParseDate parses s using the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseAmount parses a positive decimal amount. Thousands separators and a
// leading currency symbol are tolerated.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := parseSignedAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", common.ErrInvalidAmount, s)
	}
	return amount, nil
}

// parseSignedAmount parses an amount that may carry a sign, either before
// or after the currency symbol ("-$40", "$-40").
func parseSignedAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	negative := strings.HasPrefix(clean, "-")
	clean = strings.TrimLeft(strings.TrimPrefix(clean, "-"), "$€£₦ ")
	clean = strings.ReplaceAll(clean, ",", "")

	amount, err := decimal.NewFromString(clean)
	if err != nil || clean == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", common.ErrInvalidAmount, s)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}
