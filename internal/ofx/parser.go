// Package ofx reads OFX/QFX bank and card statements into income entries.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser implements OFX/QFX statement parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be upper case.
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Some SGML exports drop the closing bracket on bare opening tags.
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX statement and returns its credits as income
// entries in statement order. Debits are not income and are skipped.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.NewTransaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []model.NewTransaction
	var bankStmts, ccStmts, skipped int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			got, dropped := p.convertList(stmt.BankTranList.Transactions)
			entries = append(entries, got...)
			skipped += dropped
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			got, dropped := p.convertList(stmt.BankTranList.Transactions)
			entries = append(entries, got...)
			skipped += dropped
		}
	}

	slog.Info("Parsed OFX file",
		"income_entries", len(entries),
		"skipped_debits", skipped,
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return entries, nil
}

func (p *Parser) convertList(txns []ofxgo.Transaction) ([]model.NewTransaction, int) {
	entries := make([]model.NewTransaction, 0, len(txns))
	skipped := 0
	for _, tx := range txns {
		entry, ok := p.convertTransaction(tx)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped
}

// convertTransaction converts a statement line to an income entry. The
// second result is false for debits and zero-amount lines.
func (p *Parser) convertTransaction(tx ofxgo.Transaction) (model.NewTransaction, bool) {
	amount := decimal.NewFromBigRat(&tx.TrnAmt.Rat, 2)
	if !amount.IsPositive() {
		return model.NewTransaction{}, false
	}

	return model.NewTransaction{
		SourceID:    strings.TrimSpace(string(tx.FiTID)),
		Amount:      amount,
		Method:      MethodForType(fmt.Sprint(tx.TrnType)),
		OccurredAt:  tx.DtPosted.Time,
		Description: p.extractDescription(tx),
	}, true
}

// MethodForType maps an OFX TRNTYPE to the payment method it most likely
// arrived through.
func MethodForType(trnType string) model.PaymentMethod {
	switch strings.ToUpper(strings.TrimSpace(trnType)) {
	case "CASH", "ATM":
		return model.MethodCash
	case "POS", "CREDIT", "DEBIT", "CHECK":
		return model.MethodCard
	default:
		return model.MethodMobileMoney
	}
}

// extractDescription picks the cleanest payer description from the line.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}

	prefixes := []string{
		"ACH CREDIT ",
		"DIRECT DEPOSIT ",
		"MOBILE DEPOSIT ",
		"ONLINE TRANSFER FROM ",
		"POS REFUND ",
		"DEPOSIT ",
	}
	upper := strings.ToUpper(name)
	for _, prefix := range prefixes {
		if strings.HasPrefix(upper, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}

	return name
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "", "CREDIT", "DEPOSIT", "TRANSFER", "PAYMENT", "DIRECT DEPOSIT":
		return true
	}
	return false
}
