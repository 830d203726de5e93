package controller

import (
	"context"
	"sync/atomic"
	"time"
)

// stopContext is a plain context.Context; the alias exists only so
// driveDevice's signature reads in terms of the controller's own
// vocabulary rather than the stdlib's.
type stopContext = context.Context

// newStopContext returns a context.Context that is cancelled shortly
// after stop is set, translating the controller's atomic stop flag
// (spec.md §5: "a shared atomic stop flag checked between batches") into
// the context.Context a gpuexec.Device.RunBatch expects.
func newStopContext(stop *atomic.Bool) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if stop.Load() {
					cancel()
					return
				}
			}
		}
	}()
	return ctx, func() {
		close(done)
		cancel()
	}
}
