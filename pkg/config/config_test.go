package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/majdbaddour/timeline/pkg/control"
	"github.com/majdbaddour/timeline/pkg/throttle"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_PATH", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Width != 600 || c.ZoomFactor != control.DefaultZoomFactor || c.ResizeDelay != throttle.DefaultDelay {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Location != time.Local || c.Debug != "" {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if filepath.Base(c.BasePath()) != ".timeline" || c.BasePath()[0] == '~' {
		t.Fatalf("expected an expanded store path, got %q", c.BasePath())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	body := "path: " + filepath.Join(dir, "db") + "\nwidth: 800\nzoom_factor: 2\nresize_delay: 250ms\ntimezone: UTC\n"
	if err := os.WriteFile(filepath.Join(dir, ".timeline.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TIMELINE_CONFIG_PATH", dir)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Path != filepath.Join(dir, "db") || c.Width != 800 || c.ZoomFactor != 2 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.ResizeDelay != 250*time.Millisecond || c.Location != time.UTC {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_PATH", t.TempDir())
	t.Setenv("TIMELINE_WIDTH", "1024")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Width != 1024 {
		t.Fatalf("expected env width, got %v", c.Width)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_PATH", t.TempDir())

	t.Setenv("TIMELINE_ZOOM_FACTOR", "0.5")
	if _, err := Load(); err == nil {
		t.Fatalf("expected zoom factor error")
	}
	t.Setenv("TIMELINE_ZOOM_FACTOR", "1.25")
	t.Setenv("TIMELINE_TIMEZONE", "Nowhere/Special")
	if _, err := Load(); err == nil {
		t.Fatalf("expected time zone error")
	}
}
