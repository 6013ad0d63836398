package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonBlockingReader_ReadLine(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
		expectedErr   error
	}{
		{name: "successful read", input: "1500\n", expectedValue: "1500"},
		{name: "extra whitespace", input: "  card  \n", expectedValue: "card"},
		{name: "empty line", input: "\n", expectedValue: ""},
		{name: "final line without newline", input: "Bridal makeup", expectedValue: "Bridal makeup"},
		{name: "end of input", input: "", expectedErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nbr := NewNonBlockingReader(strings.NewReader(tt.input))

			result, err := nbr.ReadLine(context.Background())
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, result)
		})
	}
}

func TestNonBlockingReader_ContextCancellation(t *testing.T) {
	t.Run("immediate cancellation", func(t *testing.T) {
		nbr := NewNonBlockingReader(strings.NewReader("ignored\n"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := nbr.ReadLine(ctx)
		assert.Equal(t, ErrInputCancelled, err)
	})

	t.Run("cancellation during read", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pr.Close() }()
		defer func() { _ = pw.Close() }()

		nbr := NewNonBlockingReader(pr)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := nbr.ReadLine(ctx)
		assert.Equal(t, ErrInputCancelled, err)
	})
}

func TestNonBlockingReader_MultipleReads(t *testing.T) {
	nbr := NewNonBlockingReader(strings.NewReader("line1\nline2\nline3\n"))
	ctx := context.Background()

	for _, want := range []string{"line1", "line2", "line3"} {
		line, err := nbr.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
}
