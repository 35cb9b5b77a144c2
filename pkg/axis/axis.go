// Package axis generates the tick labels drawn along the timeline.
package axis

import (
	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/coord"
)

// MaxTicks bounds the number of labels produced for one window. A pinned fine
// level on a wide window would otherwise walk millions of units.
const MaxTicks = 2048

// Result is the axis for one window.
type Result struct {
	Labels []calendar.Label `json:"labels"`
	// UnitWidth is the average pixel width of a tick. Calendar units vary in
	// length so this is only good for a uniform grid approximation.
	UnitWidth float64 `json:"unitWidth"`
	// UnitOffset is the signed pixel offset of the first tick from the left
	// edge of the viewport.
	UnitOffset float64 `json:"unitOffset"`
	// Level is the effective level, zero when none matched.
	Level calendar.Level `json:"-"`
}

// Generate computes the labels for the window starting at anchor and spanning
// scale, drawn width pixels wide. A non-empty pinned level takes precedence
// over the level selected for scale.
func Generate(table *calendar.Table, anchor, scale, width float64, pinned calendar.Name) Result {
	if table == nil || scale <= 0 || width <= 0 {
		return Result{}
	}
	level, ok := table.Resolve(pinned, scale)
	if !ok {
		return Result{}
	}
	child := table.Child(level)

	tick := child.Start(anchor)
	res := Result{
		Level:      level,
		UnitOffset: coord.PixelDelta(tick-anchor, scale, width),
	}

	end := anchor + scale
	total := 0.0
	for tick < end && len(res.Labels) < MaxTicks {
		res.Labels = append(res.Labels, level.Format(tick))
		next := child.Next.Start(tick)
		if next <= tick {
			break
		}
		total += coord.PixelDelta(next-tick, scale, width)
		tick = next
	}
	// One trailing step so the last label has a width sample.
	if next := child.Next.Start(tick); next > tick {
		total += coord.PixelDelta(next-tick, scale, width)
	}
	res.UnitWidth = total / float64(len(res.Labels)+1)
	return res
}

// Band is one background stripe behind a tick.
type Band struct {
	Left  float64
	Width float64
	Dark  bool
}

// Bands lays alternating light and dark stripes of UnitWidth across a
// viewport of the given width, starting from UnitOffset. Stripe parity
// follows the label index so a stripe keeps its shade while panning within
// the same set of ticks.
func (r Result) Bands(width float64) []Band {
	if r.UnitWidth <= 0 || width <= 0 || len(r.Labels) == 0 {
		return nil
	}
	var out []Band
	for i := 0; i < len(r.Labels)+1; i++ {
		left := r.UnitOffset + float64(i)*r.UnitWidth
		if left >= width {
			break
		}
		right := left + r.UnitWidth
		if right <= 0 {
			continue
		}
		l, w := left, r.UnitWidth
		if l < 0 {
			w += l
			l = 0
		}
		if l+w > width {
			w = width - l
		}
		out = append(out, Band{Left: l, Width: w, Dark: i%2 == 1})
	}
	return out
}
