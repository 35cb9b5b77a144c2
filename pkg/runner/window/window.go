// Package window provides the CLI runner showing or resetting the committed
// window.
package window

import (
	"context"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/printers"
	tw "github.com/majdbaddour/timeline/pkg/window"
)

// Resetter clears a persisted window back to a default.
type Resetter interface {
	Clear(w tw.TimeWindow) error
}

// Window prints the committed window, or with Reset replaces it by the
// default window for Now first.
type Window struct {
	Table *calendar.Table
	Store tw.Store
	Reset bool
	// Resetter is used with Reset, usually the same store.
	Resetter Resetter
	Now      func() time.Time
	JSON     bool
	Out      io.Writer
}

// Do renders the window.
func (n *Window) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Reset {
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		def := tw.Default(now(), n.Table.Location())
		if n.Resetter != nil {
			if err := n.Resetter.Clear(def); err != nil {
				return err
			}
		} else {
			n.Store.Set(def)
		}
	}
	return Print(out, n.Table, n.Store.Get(), n.JSON)
}

// Print writes w as a table or as JSON.
func Print(out io.Writer, table *calendar.Table, w tw.TimeWindow, asJSON bool) error {
	if asJSON {
		return printers.JSON(out, w)
	}
	printers.Window(out, table, w)
	return nil
}
