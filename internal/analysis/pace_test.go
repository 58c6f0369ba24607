package analysis

import (
	"context"
	"testing"
	"time"
)

func TestSleepPacerRespectsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	SleepPacer{}.Pace(ctx, time.Minute)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled pace took %v", elapsed)
	}
}

func TestSleepPacerZeroDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()
	SleepPacer{}.Pace(context.Background(), 0)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("zero delay pace took %v", elapsed)
	}
}
