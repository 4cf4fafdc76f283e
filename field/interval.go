package field

import "time"

// Interval is a periodic task driven by elapsed time rather than a
// goroutine. The owner feeds it time with Advance; the callback runs on the
// owner's goroutine once per whole period of running time.
type Interval struct {
	period  time.Duration
	elapsed time.Duration
	running bool
	fn      func()
}

// NewInterval creates a stopped interval.
func NewInterval(period time.Duration, fn func()) *Interval {
	return &Interval{period: period, fn: fn}
}

// Start begins accumulating time. Starting a running interval is a no-op.
func (iv *Interval) Start() {
	if iv.running {
		return
	}
	iv.running = true
	iv.elapsed = 0
}

// Stop cancels the interval and discards any partial period. After Stop
// returns the callback will not run until Start is called again.
func (iv *Interval) Stop() {
	iv.running = false
	iv.elapsed = 0
}

// Running reports whether the interval is started.
func (iv *Interval) Running() bool {
	return iv.running
}

// Period returns the configured period.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// Advance adds dt of running time and fires the callback once for every
// period that completed. It returns the number of firings.
func (iv *Interval) Advance(dt time.Duration) int {
	if !iv.running || iv.period <= 0 || dt <= 0 {
		return 0
	}

	iv.elapsed += dt
	fired := 0
	for iv.elapsed >= iv.period {
		iv.elapsed -= iv.period
		fired++
		iv.fn()
		// The callback may have stopped us.
		if !iv.running {
			break
		}
	}
	return fired
}
