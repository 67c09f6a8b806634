package core

import (
	"math"
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no step")
	}
	if got := fs.Remaining(); got != 100*time.Millisecond {
		t.Fatalf("Remaining = %v, want 100ms", got)
	}
	clock = clock.Add(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after a full interval")
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, want 1/60s", fs.step)
	}
}

func TestRateMeter(t *testing.T) {
	var m RateMeter
	start := time.Unix(100, 0)
	if got := m.Mark(start); got != 0 {
		t.Fatalf("first mark rate = %f, want 0", got)
	}
	for i := 1; i <= 30; i++ {
		m.Mark(start.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	if got := m.Rate(); math.Abs(got-20) > 1e-6 {
		t.Fatalf("rate = %f, want 20", got)
	}
}
