// Package info provides the runner describing where timeline keeps its state.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/config"
	"github.com/majdbaddour/timeline/pkg/window"
)

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
)

// Info prints the configuration in effect and the committed window.
type Info struct {
	Config *config.Config
	// Path is the file holding the committed window.
	Path  string
	Store window.Store
	Table *calendar.Table
	Out   io.Writer
}

func (n *Info) Do(_ context.Context) error {
	if n.Config == nil || n.Store == nil || n.Table == nil {
		return fmt.Errorf("info: config, store and calendar are required")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = faint.Fprintln(out, "TIMELINE_CONFIG_PATH env var not set")
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Config.path:"), n.Config.Path)
	if n.Path != "" {
		_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Window file:"), n.Path)
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Timezone:"), n.Table.Location())
	_, _ = fmt.Fprintf(out, "%s %.0fpx, zoom factor %g\n", bold.Sprint("Width:"), n.Config.Width, n.Config.ZoomFactor)
	if n.Config.Debug != "" {
		_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Debug log:"), n.Config.Debug)
	}

	w := n.Store.Get()
	_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Window:"), w)
	if l, ok := n.Table.Resolve(w.CalendarMode, w.Scale); ok {
		_, _ = fmt.Fprintf(out, "%s %s (%s)\n", bold.Sprint("Level:"), l.Label, n.Table.NavTitle(w.CalendarMode, w.Anchor))
	} else {
		_, _ = faint.Fprintln(out, "  no calendar level covers this window")
	}
	_, _ = fmt.Fprintf(out, "%s %d\n", bold.Sprint("Levels:"), len(n.Table.Levels()))
	return nil
}
