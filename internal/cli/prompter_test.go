package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewCLIPrompter(strings.NewReader(input), &out), &out
}

func TestPrompter_PromptTransaction(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAmount  string
		wantMethod  model.PaymentMethod
		wantDesc    string
		wantRetries int
	}{
		{
			name:       "menu number",
			input:      "1500\n2\nPhotoshoot makeup\n",
			wantAmount: "1500",
			wantMethod: model.MethodCard,
			wantDesc:   "Photoshoot makeup",
		},
		{
			name:       "method by name and no description",
			input:      "2,200.50\nmobile money\n\n",
			wantAmount: "2200.5",
			wantMethod: model.MethodMobileMoney,
		},
		{
			name:        "retries bad input",
			input:       "abc\n-5\n800\n9\ncash\nLesson",
			wantAmount:  "800",
			wantMethod:  model.MethodCash,
			wantDesc:    "Lesson",
			wantRetries: 3,
		},
		{
			name:       "input ends before description",
			input:      "100\n3\n",
			wantAmount: "100",
			wantMethod: model.MethodCash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			got, err := p.PromptTransaction(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantAmount, got.Amount.String())
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.wantDesc, got.Description)
			assert.True(t, got.OccurredAt.IsZero())

			retries := strings.Count(out.String(), ErrorIcon)
			assert.Equal(t, tt.wantRetries, retries)
			assert.Contains(t, out.String(), "[1] Mobile Money")
		})
	}
}

func TestPrompter_TooManyAttempts(t *testing.T) {
	p, _ := newTestPrompter("x\ny\nz\n")

	_, err := p.PromptTransaction(context.Background())
	require.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestPrompter_EndOfInput(t *testing.T) {
	p, _ := newTestPrompter("")

	_, err := p.PromptTransaction(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Cancelled(t *testing.T) {
	p, _ := newTestPrompter("100\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.PromptTransaction(ctx)
	require.ErrorIs(t, err, ErrInputCancelled)
}
