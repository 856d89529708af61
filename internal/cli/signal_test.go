package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huimingz/gitcz/internal/ui"
)

func TestInterruptHandler_Cancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	h := NewInterruptHandler(cancel, ui.NewPrinter(&out, ui.WithColor(false)))
	h.Start()
	defer h.Stop()

	h.sigChan <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		require.FailNow(t, "context was not cancelled")
	}
	assert.True(t, h.IsInterrupted())
	assert.Contains(t, out.String(), "Received interrupt signal.")
}

func TestInterruptHandler_Stop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewInterruptHandler(cancel, ui.NewPrinter(&bytes.Buffer{}))
	h.Start()
	h.Stop()

	assert.False(t, h.IsInterrupted())
	assert.NoError(t, ctx.Err())
}

func TestInterruptHandler_Wrap(t *testing.T) {
	killed := errors.New("failed to commit: signal: killed")

	t.Run("without a signal", func(t *testing.T) {
		h := NewInterruptHandler(func() {}, ui.NewPrinter(&bytes.Buffer{}))
		defer h.Stop()

		assert.NoError(t, h.Wrap(nil))
		assert.Same(t, killed, h.Wrap(killed))
	})

	t.Run("after a signal", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		h := NewInterruptHandler(cancel, ui.NewPrinter(&bytes.Buffer{}))
		h.Start()
		defer h.Stop()

		h.sigChan <- os.Interrupt
		<-ctx.Done()
		require.Eventually(t, h.IsInterrupted, time.Second, time.Millisecond)

		err := h.Wrap(killed)
		assert.ErrorIs(t, err, ui.ErrInterrupted)
		assert.ErrorIs(t, err, killed)

		aborted := fmt.Errorf("commit aborted: %w", ui.ErrInterrupted)
		assert.Same(t, aborted, h.Wrap(aborted))
		assert.NoError(t, h.Wrap(nil))
	})
}
