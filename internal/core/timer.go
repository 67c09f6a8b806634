package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Remaining returns how long until the next tick is due as of the last
// ShouldStep call.
func (f *FixedStep) Remaining() time.Duration {
	if f.accumulator >= f.step {
		return 0
	}
	return f.step - f.accumulator
}

const rateWindow = 20

// RateMeter tracks a rolling average of events per second over the last
// rateWindow intervals. The zero value is ready to use.
type RateMeter struct {
	samples [rateWindow]float64
	next    int
	filled  int
	last    time.Time
}

// Mark records an event at t and returns the updated average rate.
func (m *RateMeter) Mark(t time.Time) float64 {
	if !m.last.IsZero() {
		dt := t.Sub(m.last).Seconds()
		if dt > 0 {
			m.samples[m.next] = 1 / dt
			m.next = (m.next + 1) % rateWindow
			if m.filled < rateWindow {
				m.filled++
			}
		}
	}
	m.last = t
	return m.Rate()
}

// Rate returns the current rolling average, or 0 before two marks.
func (m *RateMeter) Rate() float64 {
	if m.filled == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < m.filled; i++ {
		sum += m.samples[i]
	}
	return sum / float64(m.filled)
}
