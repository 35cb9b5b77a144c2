package info

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/config"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/window"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	t.Setenv("TIMELINE_CONFIG_PATH", "/etc/timeline")
	var buf bytes.Buffer
	n := &Info{
		Config: &config.Config{Path: "/tmp/tl", Width: 600, ZoomFactor: 1.25},
		Path:   "/tmp/tl/window",
		Store:  window.NewMemory(window.New(0, coord.OneWeek, "")),
		Table:  calendar.New(time.UTC),
		Out:    &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"using /etc/timeline", "/tmp/tl/window", "600px", "WEEK", "Levels: 13"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestInfoRequiresStore(t *testing.T) {
	if err := (&Info{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
