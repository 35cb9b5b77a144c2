package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/row"
	"github.com/majdbaddour/timeline/pkg/timeutil"
	"github.com/majdbaddour/timeline/pkg/window"
)

const layoutShort = "1/2"

// AtOptions names an instant on the command line.
type AtOptions struct {
	At string
}

func AddAtArgs(cmd *cobra.Command, o *AtOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Specify an instant, example: --at="2024-02-14", --at="2024-02-14T13:00" or --at="2/14".`)
}

// Time resolves the flag in loc, returning now when it is empty. The short
// m/d form stays in the current year.
func (o *AtOptions) Time(now time.Time, loc *time.Location) (time.Time, error) {
	if o.At == "" {
		return now.In(loc), nil
	}
	if t, ok := row.ParseTimestamp(o.At, loc); ok {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutShort, strings.TrimSpace(o.At), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q", o.At)
	}
	return t.AddDate(now.In(loc).Year(), 0, 0), nil
}

// WindowOptions override parts of the committed window for read-only
// commands.
type WindowOptions struct {
	AtOptions
	Scale string
	Level string
	Width float64
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	AddAtArgs(cmd, &o.AtOptions)
	cmd.Flags().StringVar(&o.Scale, "scale", "",
		`Width of the window in time, example: --scale=1w.`)
	cmd.Flags().StringVarP(&o.Level, "level", "l", "",
		`Show the calendar level containing --at instead.`)
	cmd.Flags().Float64Var(&o.Width, "width", 0,
		`Viewport width in pixels, defaults to the configured width.`)
}

// Apply returns base with the flags applied. --level wins over --at and
// --scale.
func (o *WindowOptions) Apply(base window.TimeWindow, table *calendar.Table, now time.Time) (window.TimeWindow, error) {
	if o.Level != "" {
		name, err := ResolveLevel(table, o.Level)
		if err != nil {
			return base, err
		}
		l, _ := table.Lookup(name)
		ref := base.Anchor
		if o.At != "" {
			at, err := o.Time(now, table.Location())
			if err != nil {
				return base, err
			}
			ref = coord.Millis(at)
		}
		start, end := l.Bounds(ref)
		return window.New(start, end-start, name), nil
	}

	w := base
	if o.Scale != "" {
		scale, _, err := timeutil.ParseSpan(o.Scale)
		if err != nil {
			return base, err
		}
		w = window.New(w.Anchor, scale, "")
	}
	if o.At != "" {
		at, err := o.Time(now, table.Location())
		if err != nil {
			return base, err
		}
		w = window.New(coord.Millis(at), w.Scale, w.CalendarMode)
	}
	return w, nil
}
