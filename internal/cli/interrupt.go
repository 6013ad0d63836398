package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler turns SIGINT/SIGTERM into context cancellation with a
// friendly goodbye.
type InterruptHandler struct {
	writer      io.Writer
	signals     chan os.Signal
	activity    string
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	return &InterruptHandler{
		writer:  writer,
		signals: make(chan os.Signal, 1),
	}
}

// HandleInterrupts returns a context canceled on the first interrupt. The
// returned stop function releases the signal handler.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context, activity string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	h.activity = activity

	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-h.signals:
			h.mu.Lock()
			if !h.interrupted {
				h.interrupted = true
				h.showInterruptMessage()
			}
			h.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(h.signals)
		cancel()
	}
}

func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n" + FormatWarning("Interrupted!")
	if h.activity != "" {
		msg += "\n" + FormatInfo("Stopping "+h.activity+"...")
	}
	msg += "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		slog.Warn("Failed to write interrupt message", "error", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
