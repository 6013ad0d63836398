package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/shopspring/decimal"
)

// maxAttempts bounds how often a single field is re-asked after bad input.
const maxAttempts = 3

// ErrTooManyAttempts is returned when a field keeps receiving invalid input.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Prompter collects a transaction interactively.
type Prompter struct {
	writer io.Writer
	reader *NonBlockingReader
}

// NewCLIPrompter creates a prompter reading from reader and writing to writer.
func NewCLIPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// PromptTransaction asks for amount, payment method, and description. The
// date is left zero so the recorder stamps it.
func (p *Prompter) PromptTransaction(ctx context.Context) (model.NewTransaction, error) {
	if _, err := fmt.Fprintln(p.writer, FormatTitle("Record a Transaction")); err != nil {
		return model.NewTransaction{}, fmt.Errorf("failed to write title: %w", err)
	}

	amount, err := p.promptAmount(ctx)
	if err != nil {
		return model.NewTransaction{}, err
	}

	method, err := p.promptMethod(ctx)
	if err != nil {
		return model.NewTransaction{}, err
	}

	if err := p.write(FormatPrompt("Description (optional)")); err != nil {
		return model.NewTransaction{}, err
	}
	description, err := p.reader.ReadLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return model.NewTransaction{}, err
	}

	return model.NewTransaction{
		Amount:      amount,
		Method:      method,
		Description: description,
	}, nil
}

func (p *Prompter) promptAmount(ctx context.Context) (decimal.Decimal, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := p.write(FormatPrompt("Amount")); err != nil {
			return decimal.Zero, err
		}

		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		amount, parseErr := decimal.NewFromString(strings.ReplaceAll(line, ",", ""))
		if parseErr == nil && amount.IsPositive() {
			return amount, nil
		}
		if err := p.writeLine(FormatError("Enter an amount greater than zero")); err != nil {
			return decimal.Zero, err
		}
	}
	return decimal.Zero, fmt.Errorf("amount: %w", ErrTooManyAttempts)
}

func (p *Prompter) promptMethod(ctx context.Context) (model.PaymentMethod, error) {
	for i, m := range model.PaymentMethods {
		if err := p.writeLine(fmt.Sprintf("  [%d] %s", i+1, m)); err != nil {
			return "", err
		}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := p.write(FormatPrompt("Payment method")); err != nil {
			return "", err
		}

		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(model.PaymentMethods) {
			return model.PaymentMethods[n-1], nil
		}
		if method := model.ParseMethod(line); method.Valid() {
			return method, nil
		}
		if err := p.writeLine(FormatError("Choose one of the listed payment methods")); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("payment method: %w", ErrTooManyAttempts)
}

func (p *Prompter) write(s string) error {
	if _, err := fmt.Fprint(p.writer, s); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

func (p *Prompter) writeLine(s string) error {
	if _, err := fmt.Fprintln(p.writer, s); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}
