// Package pause blocks the caller for a computed interval.
package pause

import (
	"context"
	"math"
	"time"
)

// MaxDuration is the longest wait that fits in a time.Duration, a little
// under 300 years. Longer intervals are cut down to it.
const MaxDuration = time.Duration(math.MaxInt64)

// Duration converts a millisecond count to a time.Duration, saturating at
// MaxDuration.
func Duration(ms uint64) time.Duration {
	if ms > uint64(MaxDuration/time.Millisecond) {
		return MaxDuration
	}
	return time.Duration(ms) * time.Millisecond
}

// Sleep waits for d or until ctx is done, whichever comes first. It returns
// nil when the full duration elapsed and ctx.Err() otherwise.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
