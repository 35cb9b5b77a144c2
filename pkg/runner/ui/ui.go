// Package ui provides the runner for the interactive terminal timeline.
package ui

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/majdbaddour/timeline/pkg/control"
	"github.com/majdbaddour/timeline/pkg/row"
	teaui "github.com/majdbaddour/timeline/pkg/tui/app"
)

// ErrNotTerminal is returned when stdout cannot host the interface.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

// UI opens the timeline over Rows. Activated clusters are written to
// Selections, one JSON object per line.
type UI struct {
	Controller *control.Controller
	// Watcher follows windows committed by other timeline processes.
	Watcher     teaui.Watcher
	Rows        []row.Row
	ResizeDelay time.Duration
	Selections  io.Writer

	// run replaces teaui.Run in tests.
	run func(context.Context, *control.Controller, teaui.Options) error
}

// Do runs the interface until the user quits.
func (u *UI) Do(ctx context.Context) error {
	run := u.run
	if run == nil {
		if !isTerminal(os.Stdout.Fd()) {
			return ErrNotTerminal
		}
		run = teaui.Run
	}
	opts := teaui.Options{
		Rows:         u.Rows,
		Handler:      u.handler(),
		Watcher:      u.Watcher,
		DarkTerminal: u.run == nil && termenv.HasDarkBackground(),
		ResizeDelay:  u.ResizeDelay,
		Copy:         clipboard.WriteAll,
	}
	return run(ctx, u.Controller, opts)
}

func (u *UI) handler() row.Handler {
	var mu sync.Mutex
	return func(s row.Selection) {
		log.Printf("selection %s: %d items from %s/%s", s.ID, len(s.Items), s.SourceType, s.SubType)
		if u.Selections == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewEncoder(u.Selections).Encode(s); err != nil {
			log.Printf("write selection %s: %v", s.ID, err)
		}
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
