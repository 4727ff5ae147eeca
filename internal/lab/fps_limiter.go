package lab

import (
	"time"

	"glabs/internal/config"
)

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due under the configured FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// FPSCounter counts frames and reports the rate once per interval
type FPSCounter struct {
	Interval time.Duration

	frames int
	start  time.Time
}

// NewFPSCounter creates a counter reporting every interval
func NewFPSCounter(interval time.Duration) *FPSCounter {
	return &FPSCounter{Interval: interval}
}

// Frame records a frame finished at now. When an interval has elapsed it
// returns the average rate over it and starts a new one.
func (c *FPSCounter) Frame(now time.Time) (float64, bool) {
	if c.start.IsZero() {
		c.start = now
		return 0, false
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed < c.Interval || elapsed <= 0 {
		return 0, false
	}
	fps := float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return fps, true
}
