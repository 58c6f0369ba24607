package analysis

import (
	"context"
	"time"

	"newscred/internal/ports"
)

// SleepPacer spaces outbound requests with real wall-clock waits. It honors
// context cancellation so a shutting-down run is not stuck in a delay.
type SleepPacer struct{}

var _ ports.Pacer = SleepPacer{}

// Pace blocks for d or until the context is done, whichever comes first.
func (SleepPacer) Pace(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
