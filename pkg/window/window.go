// Package window holds the committed time window every row of the timeline
// is rendered against.
package window

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/coord"
)

// ErrInvalidWindow is returned by Validate.
var ErrInvalidWindow = errors.New("invalid time window")

// TimeWindow is the visible span of the timeline. It is always replaced as a
// whole so anchor, scale and slider never disagree.
type TimeWindow struct {
	// Anchor is the time at the left edge of the viewport, in ms.
	Anchor float64 `json:"anchor"`
	// Scale is the duration spanned by one viewport width, in ms.
	Scale float64 `json:"scale"`
	// Slider is derived from Scale, see coord.ScaleToSlider.
	Slider float64 `json:"slider"`
	// CalendarMode names a pinned level, empty to select by scale.
	CalendarMode calendar.Name `json:"calendarMode"`
}

// New returns a window with scale clamped and slider derived from it.
func New(anchor, scale float64, mode calendar.Name) TimeWindow {
	scale = coord.ClampScale(scale)
	return TimeWindow{
		Anchor:       anchor,
		Scale:        scale,
		Slider:       coord.ScaleToSlider(scale),
		CalendarMode: mode,
	}
}

// Default is the window shown on first render: one second from the start of
// the day containing now.
func Default(now time.Time, loc *time.Location) TimeWindow {
	if loc == nil {
		loc = time.Local
	}
	d := now.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return New(coord.Millis(start), coord.OneSecond, "")
}

// End is the time at the right edge of the viewport.
func (w TimeWindow) End() float64 {
	return w.Anchor + w.Scale
}

// Mid is the time in the middle of the viewport.
func (w TimeWindow) Mid() float64 {
	return w.Anchor + w.Scale/2
}

// Pinned reports whether a calendar level is pinned.
func (w TimeWindow) Pinned() bool {
	return w.CalendarMode != ""
}

// Validate checks the fields a hand edited or decoded window can get wrong.
// Out of range scales are not an error; they are clamped on use.
func (w TimeWindow) Validate() error {
	switch {
	case math.IsNaN(w.Anchor) || math.IsInf(w.Anchor, 0):
		return fmt.Errorf("%w: anchor %v", ErrInvalidWindow, w.Anchor)
	case math.IsNaN(w.Scale) || w.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidWindow, w.Scale)
	}
	return nil
}

// Normalize clamps the scale and re-derives the slider.
func (w TimeWindow) Normalize() TimeWindow {
	return New(w.Anchor, w.Scale, w.CalendarMode)
}

func (w TimeWindow) String() string {
	mode := string(w.CalendarMode)
	if mode == "" {
		mode = "auto"
	}
	return fmt.Sprintf("anchor=%d scale=%gms slider=%.3f mode=%s", int64(w.Anchor), w.Scale, w.Slider, mode)
}

// Store holds the committed window. Set replaces the whole window at once.
type Store interface {
	Get() TimeWindow
	Set(TimeWindow)
}

// Memory is an in-process Store that notifies subscribers of every commit.
type Memory struct {
	mu     sync.RWMutex
	w      TimeWindow
	nextID int
	subs   map[int]func(TimeWindow)
}

var _ Store = (*Memory)(nil)

// NewMemory returns a store holding w.
func NewMemory(w TimeWindow) *Memory {
	return &Memory{w: w, subs: make(map[int]func(TimeWindow))}
}

func (m *Memory) Get() TimeWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.w
}

// Set commits w and calls every subscriber with it. Subscribers run on the
// caller's goroutine after the lock is released.
func (m *Memory) Set(w TimeWindow) {
	m.mu.Lock()
	m.w = w
	subs := make([]func(TimeWindow), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(w)
	}
}

// Subscribe registers fn to be called after each commit. The returned cancel
// func removes it.
func (m *Memory) Subscribe(fn func(TimeWindow)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
