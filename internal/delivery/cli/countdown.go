package cli

import (
	"context"
	"fmt"
	"time"
)

// startCountdown prints the remaining seconds once per second until the
// returned stop function is called. The countdown is advisory display
// only: expiry prints a notice but never interrupts the pending read.
func (h *Handler) startCountdown(ctx context.Context, seconds int) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for remaining := seconds; remaining > 0; {
			fmt.Fprintf(h.out, "\r⏳ %3ds remaining", remaining)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				remaining--
			}
		}
		fmt.Fprint(h.out, "\r⏰ Time is up! Answers are still accepted.   ")
	}()

	return func() {
		cancel()
		<-done
	}
}
