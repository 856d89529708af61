package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/huimingz/gitcz/internal/ui"
)

// InterruptHandler cancels the run context on the first interrupt signal.
// Answers collected so far are dropped and nothing is committed.
type InterruptHandler struct {
	cancel      context.CancelFunc
	sigChan     chan os.Signal
	done        chan struct{}
	printer     *ui.Printer
	interrupted atomic.Bool
}

// NewInterruptHandler creates a new interrupt handler
func NewInterruptHandler(cancel context.CancelFunc, printer *ui.Printer) *InterruptHandler {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return &InterruptHandler{
		cancel:  cancel,
		sigChan: sigChan,
		done:    make(chan struct{}),
		printer: printer,
	}
}

// Start starts the interrupt handler in a goroutine
func (h *InterruptHandler) Start() {
	go h.handleSignals()
}

// handleSignals waits for an interrupt signal or Stop
func (h *InterruptHandler) handleSignals() {
	select {
	case <-h.sigChan:
		h.interrupted.Store(true)
		_ = h.printer.PrintWarning("Received interrupt signal.")
		h.cancel()
	case <-h.done:
	}
}

// IsInterrupted returns whether the handler has been interrupted
func (h *InterruptHandler) IsInterrupted() bool {
	return h.interrupted.Load()
}

// Wrap marks a failed run as interrupted when a signal arrived during it.
// A git process killed by the cancelled context then still exits with 130.
func (h *InterruptHandler) Wrap(err error) error {
	if err == nil || !h.IsInterrupted() || errors.Is(err, ui.ErrInterrupted) {
		return err
	}
	return fmt.Errorf("%w: %w", ui.ErrInterrupted, err)
}

// Stop stops the signal handling
func (h *InterruptHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.done)
}
