package pause

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		ms   uint64
		want time.Duration
	}{
		{"zero", 0, 0},
		{"one second", 1000, time.Second},
		{"one day", 86400000, 24 * time.Hour},
		{"largest exact", uint64(MaxDuration / time.Millisecond), (MaxDuration / time.Millisecond) * time.Millisecond},
		{"saturates", math.MaxUint64, MaxDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.ms); got != tt.want {
				t.Errorf("Duration(%d) = %v, want %v", tt.ms, got, tt.want)
			}
		})
	}
}

func TestSleepElapses(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Sleep returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Sleep returned after %v, want at least 20ms", elapsed)
	}
}

func TestSleepZero(t *testing.T) {
	if err := Sleep(context.Background(), 0); err != nil {
		t.Errorf("Sleep(0) returned error: %v", err)
	}
}

func TestSleepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Sleep error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Sleep took %v after cancel", elapsed)
	}
}
