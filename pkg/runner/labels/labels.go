// Package labels provides the CLI runner printing the axis of a window.
package labels

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/axis"
	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/printers"
	"github.com/majdbaddour/timeline/pkg/window"
)

// Labels prints the tick labels of Window drawn Width pixels wide.
type Labels struct {
	Table  *calendar.Table
	Window window.TimeWindow
	Width  float64
	JSON   bool
	Out    io.Writer
}

type labelsJSON struct {
	Level calendar.Name `json:"level,omitempty"`
	axis.Result
}

// Do renders the labels.
func (l *Labels) Do(_ context.Context) error {
	if l.Width <= 0 {
		return errors.New("labels: width must be positive")
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}
	res := axis.Generate(l.Table, l.Window.Anchor, l.Window.Scale, l.Width, l.Window.CalendarMode)
	if l.JSON {
		return printers.JSON(out, labelsJSON{Level: res.Level.Name, Result: res})
	}
	printers.Labels(out, res)
	return nil
}
