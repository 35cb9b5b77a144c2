// Package calendar defines the granularity levels used to label the
// timeline axis and to navigate it one calendar unit at a time.
//
// A level is plain data: its unit boundaries, neighbour units and label
// formatter are function values stored on the struct, and levels are found by
// scale zone or by name in a fixed Table.
package calendar

import (
	"fmt"
	"time"

	"github.com/majdbaddour/timeline/pkg/coord"
)

// Name identifies a calendar level.
type Name string

// Reference level names, coarsest to finest.
const (
	Decade         Name = "decade"
	BigYear        Name = "bigYear"
	Year           Name = "year"
	BigMonth       Name = "bigMonth"
	Month          Name = "month"
	Week           Name = "week"
	Day            Name = "day"
	Hour           Name = "hour"
	Minutes5       Name = "minutes5"
	Minute         Name = "minute"
	Seconds5       Name = "seconds5"
	Second         Name = "second"
	Millisecond100 Name = "millisecond100"
)

// Zone is the half-open scale range (Min, Max] in milliseconds for which a
// level is auto-selected.
type Zone struct {
	Min float64
	Max float64
}

// Contains reports whether scale falls in (Min, Max].
func (z Zone) Contains(scale float64) bool {
	return scale > z.Min && scale <= z.Max
}

func (z Zone) String() string {
	return fmt.Sprintf("(%s, %s]", formatSpan(z.Min), formatSpan(z.Max))
}

// UnitFunc maps a time to a unit boundary. Both sides are milliseconds since
// the Unix epoch.
type UnitFunc func(ms float64) float64

// Span pairs the start and end functions of a neighbouring unit. Given any
// time t inside the current unit, Start(t) and End(t) bound the adjacent one.
type Span struct {
	Start UnitFunc
	End   UnitFunc
}

// Label is the two-line text rendered under an axis tick.
type Label struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Level is one calendar granularity.
type Level struct {
	Name  Name
	Label string
	// Render marks the levels offered as quick-select controls.
	Render bool
	Zone   Zone

	Start UnitFunc
	End   UnitFunc
	Next  Span
	Prev  Span

	Format func(ms float64) Label
	// Child is the finer level whose units space the axis ticks.
	Child Name
}

// IsZero reports whether l is the zero Level.
func (l Level) IsZero() bool {
	return l.Name == ""
}

// Bounds returns the unit containing ms.
func (l Level) Bounds(ms float64) (start, end float64) {
	return l.Start(ms), l.End(ms)
}

// Table is an ordered set of levels, coarsest first.
type Table struct {
	loc    *time.Location
	levels []Level
	byName map[Name]int
}

// New returns the reference table computing unit boundaries in loc.
func New(loc *time.Location) *Table {
	if loc == nil {
		loc = time.Local
	}
	return FromLevels(loc, referenceLevels(clock{loc: loc})...)
}

// Default returns the reference table for the local time zone.
func Default() *Table {
	return New(time.Local)
}

// FromLevels builds a table from custom levels. Order is preserved and later
// duplicates of a name are ignored.
func FromLevels(loc *time.Location, levels ...Level) *Table {
	if loc == nil {
		loc = time.Local
	}
	t := &Table{
		loc:    loc,
		levels: make([]Level, 0, len(levels)),
		byName: make(map[Name]int, len(levels)),
	}
	for _, l := range levels {
		if _, dup := t.byName[l.Name]; dup || l.Name == "" {
			continue
		}
		t.byName[l.Name] = len(t.levels)
		t.levels = append(t.levels, l)
	}
	return t
}

// Location returns the time zone unit boundaries are computed in.
func (t *Table) Location() *time.Location {
	return t.loc
}

// Levels returns a copy of the table, coarsest first.
func (t *Table) Levels() []Level {
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}

// Quick returns the levels flagged for quick selection, in table order.
func (t *Table) Quick() []Level {
	var out []Level
	for _, l := range t.levels {
		if l.Render {
			out = append(out, l)
		}
	}
	return out
}

// Select returns the level whose zone contains scale. ok is false when the
// table has no zone covering it.
func (t *Table) Select(scale float64) (Level, bool) {
	for _, l := range t.levels {
		if l.Zone.Contains(scale) {
			return l, true
		}
	}
	return Level{}, false
}

// Lookup returns the level called name.
func (t *Table) Lookup(name Name) (Level, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Level{}, false
	}
	return t.levels[i], true
}

// Resolve returns the pinned level when it names one in the table, otherwise
// the level selected for scale.
func (t *Table) Resolve(pinned Name, scale float64) (Level, bool) {
	if pinned != "" {
		if l, ok := t.Lookup(pinned); ok {
			return l, true
		}
	}
	return t.Select(scale)
}

// Child returns the level used to space ticks for l. A level without a known
// child ticks by its own unit.
func (t *Table) Child(l Level) Level {
	if c, ok := t.Lookup(l.Child); ok {
		return c
	}
	return l
}

// Instant converts ms to a time in the table's location.
func (t *Table) Instant(ms float64) time.Time {
	return coord.Instant(ms, t.loc)
}

func formatSpan(ms float64) string {
	switch {
	case ms == 0:
		return "0"
	case ms >= 365*coord.OneDay:
		return fmt.Sprintf("%.2fy", ms/(365.25*coord.OneDay))
	case ms >= coord.OneDay:
		return fmt.Sprintf("%gd", ms/coord.OneDay)
	case ms >= coord.OneHour:
		return fmt.Sprintf("%gh", ms/coord.OneHour)
	case ms >= coord.OneMinute:
		return fmt.Sprintf("%gm", ms/coord.OneMinute)
	case ms >= coord.OneSecond:
		return fmt.Sprintf("%gs", ms/coord.OneSecond)
	}
	return fmt.Sprintf("%gms", ms)
}
