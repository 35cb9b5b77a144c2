// Package control turns pointer, wheel, slider and navigation input into
// updates of the committed time window.
//
// Drag and slider input first produce a local preview that only the caller
// sees; the release commits it to the store in one Set. Wheel zoom and level
// navigation commit immediately.
package control

import (
	"errors"
	"fmt"
	"time"

	"github.com/majdbaddour/timeline/pkg/axis"
	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/window"
)

// DefaultZoomFactor is the scale multiplier applied per wheel tick.
const DefaultZoomFactor = 1.25

// ErrUnknownLevel is returned when navigation names a level the table does
// not have, or no level covers the current scale.
var ErrUnknownLevel = errors.New("unknown calendar level")

// State is the interaction the controller is in.
type State int

const (
	Idle State = iota
	Dragging
	SliderAdjusting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case SliderAdjusting:
		return "slider"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures a Controller.
type Option func(*Controller)

// WithZoomFactor sets the wheel zoom factor. Factors not above 1 are ignored.
func WithZoomFactor(f float64) Option {
	return func(c *Controller) {
		if f > 1 {
			c.zoom = f
		}
	}
}

// Controller is the zoom and pan state machine. It is not safe for concurrent
// use; input is expected to arrive from a single event loop.
type Controller struct {
	store window.Store
	table *calendar.Table
	width float64
	zoom  float64

	state   State
	preview *window.TimeWindow
}

// New returns a controller committing to store for a viewport width pixels
// wide.
func New(store window.Store, table *calendar.Table, width float64, opts ...Option) *Controller {
	if table == nil {
		table = calendar.Default()
	}
	c := &Controller{
		store: store,
		table: table,
		width: width,
		zoom:  DefaultZoomFactor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Width() float64 { return c.width }

func (c *Controller) Table() *calendar.Table { return c.table }

func (c *Controller) ZoomFactor() float64 { return c.zoom }

// SetWidth updates the viewport width. Non-positive widths are ignored.
func (c *Controller) SetWidth(width float64) {
	if width > 0 {
		c.width = width
	}
}

// Committed returns the window held by the store.
func (c *Controller) Committed() window.TimeWindow {
	return c.store.Get()
}

// View returns the window to draw: the preview while one is in progress,
// otherwise the committed window.
func (c *Controller) View() window.TimeWindow {
	if c.preview != nil {
		return *c.preview
	}
	return c.store.Get()
}

// Labels generates the axis for the current view.
func (c *Controller) Labels() axis.Result {
	v := c.View()
	return axis.Generate(c.table, v.Anchor, v.Scale, c.width, v.CalendarMode)
}

// Level returns the effective level of the current view.
func (c *Controller) Level() (calendar.Level, bool) {
	v := c.View()
	return c.table.Resolve(v.CalendarMode, v.Scale)
}

// SliderRange returns the slider values for the widest and narrowest scale.
func (c *Controller) SliderRange() (min, max float64) {
	return coord.SliderRange()
}

// Drag moves the view by dx pixels. Moving right reveals earlier time. Each
// call is relative to the current view, so a gesture reported as a series of
// deltas accumulates in the preview. Dragging always leaves any pinned level.
func (c *Controller) Drag(dx float64, committed bool) window.TimeWindow {
	v := c.View()
	dt := coord.TimeDelta(dx, v.Scale, c.width)
	next := window.TimeWindow{
		Anchor: v.Anchor - dt,
		Scale:  v.Scale,
		Slider: v.Slider,
	}
	if committed {
		c.commit(next)
	} else {
		c.setPreview(next, Dragging)
	}
	return next
}

// Wheel zooms around the time under frame pixel x, measured from the left
// edge of the extended frame. A positive direction zooms out. Wheel input is
// ignored mid drag and reports false.
func (c *Controller) Wheel(direction, x float64) (window.TimeWindow, bool) {
	if c.state == Dragging {
		return c.View(), false
	}
	v := c.View()
	scale := v.Scale / c.zoom
	if direction > 0 {
		scale = v.Scale * c.zoom
	}
	scale = coord.ClampScale(scale)
	fixed := coord.Time(x, v.Anchor, v.Scale, c.width)
	next := window.New(coord.NewAnchorForZoom(fixed, v.Anchor, v.Scale, scale), scale, "")
	c.commit(next)
	return next, true
}

// Slider zooms to the scale for value, keeping the middle of the view fixed.
func (c *Controller) Slider(value float64, committed bool) window.TimeWindow {
	return c.SliderAt(value, c.View().Mid(), committed)
}

// SliderAt zooms to the scale for value keeping the time fixed at the same
// pixel. Values outside the slider range are clamped.
func (c *Controller) SliderAt(value, fixed float64, committed bool) window.TimeWindow {
	v := c.View()
	value = coord.ClampSlider(value)
	scale := coord.SliderToScale(value)
	next := window.TimeWindow{
		Anchor: coord.NewAnchorForZoom(fixed, v.Anchor, v.Scale, scale),
		Scale:  scale,
		Slider: value,
	}
	if committed {
		c.commit(next)
	} else {
		c.setPreview(next, SliderAdjusting)
	}
	return next
}

// SelectLevel pins the level called name and shows its unit containing
// reference.
func (c *Controller) SelectLevel(name calendar.Name, reference float64) (window.TimeWindow, error) {
	l, ok := c.table.Lookup(name)
	if !ok {
		return c.View(), fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	start, end := l.Bounds(reference)
	next := window.New(start, end-start, l.Name)
	c.commit(next)
	return next, nil
}

// Step pins the effective level and moves to the unit after the one holding
// the anchor, or the one before it when forward is false.
func (c *Controller) Step(forward bool) (window.TimeWindow, error) {
	v := c.View()
	l, ok := c.table.Resolve(v.CalendarMode, v.Scale)
	if !ok {
		return v, fmt.Errorf("%w: none covers scale %gms", ErrUnknownLevel, v.Scale)
	}
	span := l.Prev
	if forward {
		span = l.Next
	}
	start, end := span.Start(v.Anchor), span.End(v.Anchor)
	next := window.New(start, end-start, l.Name)
	c.commit(next)
	return next, nil
}

// Today shows the day containing now.
func (c *Controller) Today(now time.Time) (window.TimeWindow, error) {
	return c.SelectLevel(calendar.Day, coord.Millis(now))
}

// Cancel drops any preview without committing it.
func (c *Controller) Cancel() {
	c.preview = nil
	c.state = Idle
}

func (c *Controller) setPreview(w window.TimeWindow, s State) {
	c.preview = &w
	c.state = s
}

func (c *Controller) commit(w window.TimeWindow) {
	c.preview = nil
	c.state = Idle
	c.store.Set(w)
}
