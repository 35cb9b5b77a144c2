package throttle

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBurstRunsLatestOnce(t *testing.T) {
	c := New(40 * time.Millisecond)
	var calls, last int32
	for i := int32(1); i <= 5; i++ {
		i := i
		c.Do(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, i)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	if got := atomic.LoadInt32(&last); got != 5 {
		t.Fatalf("expected the latest func to run, got %d", got)
	}
}

func TestSeparateBurstsRunSeparately(t *testing.T) {
	c := New(20 * time.Millisecond)
	var calls int32
	inc := func() { atomic.AddInt32(&calls, 1) }

	c.Do(inc)
	time.Sleep(80 * time.Millisecond)
	c.Do(inc)
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestLeadingRunsImmediately(t *testing.T) {
	c := New(50 * time.Millisecond)
	c.Leading = true
	var calls int32
	inc := func() { atomic.AddInt32(&calls, 1) }

	c.Do(inc)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected the first call to run at once, got %d", got)
	}
	c.Do(inc)
	c.Do(inc)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected follow ups to wait, got %d", got)
	}
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected one trailing call, got %d", got)
	}
}

func TestStopAndFlush(t *testing.T) {
	c := New(30 * time.Millisecond)
	var calls int32
	inc := func() { atomic.AddInt32(&calls, 1) }

	c.Do(inc)
	c.Stop()
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("stopped func ran")
	}

	c.Do(inc)
	if !c.Flush() {
		t.Fatalf("expected Flush to run the waiting func")
	}
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 call, got %d", got)
	}
	if c.Flush() {
		t.Fatalf("nothing should be waiting")
	}
}

func TestDefaultDelay(t *testing.T) {
	if New(0).Delay() != DefaultDelay {
		t.Fatalf("expected default delay")
	}
}
