// Package levels provides the CLI runner listing calendar levels.
package levels

import (
	"context"
	"io"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/printers"
	"github.com/majdbaddour/timeline/pkg/window"
)

// Levels prints the calendar table and marks the level of Window.
type Levels struct {
	Table  *calendar.Table
	Window window.TimeWindow
	JSON   bool
	Out    io.Writer
}

type levelJSON struct {
	Name    calendar.Name `json:"name"`
	Label   string        `json:"label"`
	Min     float64       `json:"min"`
	Max     float64       `json:"max"`
	Ticks   calendar.Name `json:"ticks,omitempty"`
	Quick   bool          `json:"quick"`
	Current bool          `json:"current"`
}

// Do renders the levels.
func (l *Levels) Do(_ context.Context) error {
	out := l.Out
	if out == nil {
		out = color.Output
	}
	var current calendar.Name
	if lvl, ok := l.Table.Resolve(l.Window.CalendarMode, l.Window.Scale); ok {
		current = lvl.Name
	}

	if !l.JSON {
		printers.Levels(out, l.Table, current)
		return nil
	}
	all := l.Table.Levels()
	rows := make([]levelJSON, 0, len(all))
	for _, lvl := range all {
		rows = append(rows, levelJSON{
			Name:    lvl.Name,
			Label:   lvl.Label,
			Min:     lvl.Zone.Min,
			Max:     lvl.Zone.Max,
			Ticks:   l.Table.Child(lvl).Name,
			Quick:   lvl.Render,
			Current: lvl.Name == current,
		})
	}
	return printers.JSON(out, rows)
}
