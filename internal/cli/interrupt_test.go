package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{name: "with custom writer", writer: &bytes.Buffer{}},
		{name: "with nil writer", writer: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.WasInterrupted())
		})
	}
}

func TestHandleInterrupts_Signal(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx, stop := handler.HandleInterrupts(context.Background(), "API server")
	defer stop()

	handler.signals <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled after interrupt")
	}

	require.Eventually(t, handler.WasInterrupted, time.Second, 5*time.Millisecond)
	assert.Contains(t, output.String(), "Interrupted!")
	assert.Contains(t, output.String(), "Stopping API server...")
	assert.Equal(t, 1, strings.Count(output.String(), "Interrupted!"))
}

func TestHandleInterrupts_ParentCancel(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := handler.HandleInterrupts(parent, "import")
	defer stop()

	cancel()
	<-ctx.Done()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, handler.WasInterrupted(), "parent cancellation is not an interrupt")
	assert.Empty(t, output.String())
}

func TestHandleInterrupts_Stop(t *testing.T) {
	handler := NewInterruptHandler(&syncBuffer{})

	ctx, stop := handler.HandleInterrupts(context.Background(), "")
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the context")
	}
}

func TestShowInterruptMessage(t *testing.T) {
	var output bytes.Buffer
	handler := &InterruptHandler{writer: &output}

	handler.showInterruptMessage()
	assert.Contains(t, output.String(), "Interrupted!")
	assert.NotContains(t, output.String(), "Stopping")
}
