// Package throttle coalesces bursts of calls, such as terminal resizes, into
// a single call.
package throttle

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period that ends a burst.
const DefaultDelay = 500 * time.Millisecond

// Coalescer runs the latest submitted func once a burst of submissions has
// been quiet for delay. Each submission restarts the wait.
//
// With Leading set, a submission arriving at least delay after the previous
// run executes immediately on the caller's goroutine instead, so an isolated
// event is not held back.
type Coalescer struct {
	Leading bool

	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	last    time.Time
	pending func()
	gen     uint64
}

// New returns a Coalescer with the given quiet period. Non-positive delays
// use DefaultDelay.
func New(delay time.Duration) *Coalescer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Coalescer{delay: delay}
}

func (c *Coalescer) Delay() time.Duration {
	return c.delay
}

// Do submits fn, replacing any func still waiting.
func (c *Coalescer) Do(fn func()) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	now := time.Now()
	if c.Leading && now.Sub(c.last) >= c.delay {
		c.last = now
		c.pending = nil
		c.mu.Unlock()
		fn()
		return
	}
	c.pending = fn
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(gen)
	})
	c.mu.Unlock()
}

func (c *Coalescer) fire(gen uint64) {
	c.mu.Lock()
	// A newer submission owns the timer.
	if gen != c.gen || c.pending == nil {
		c.mu.Unlock()
		return
	}
	fn := c.pending
	c.pending = nil
	c.timer = nil
	c.last = time.Now()
	c.mu.Unlock()

	fn()
}

// Flush runs the waiting func now, if any. It reports whether one ran.
func (c *Coalescer) Flush() bool {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	fn := c.pending
	c.pending = nil
	c.gen++
	if fn != nil {
		c.last = time.Now()
	}
	c.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Stop drops the waiting func without running it.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = nil
	c.gen++
	c.mu.Unlock()
}
