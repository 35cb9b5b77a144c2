package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Setup(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	log.Printf("window committed")
	cleanup()
	defer log.SetOutput(os.Stderr)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "window committed") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestSetupDiscards(t *testing.T) {
	cleanup, err := Setup("")
	if err != nil {
		t.Fatal(err)
	}
	defer log.SetOutput(os.Stderr)
	cleanup()
	if log.Writer() == os.Stderr {
		t.Fatalf("expected logs to be discarded")
	}
}

func TestSetupSingleHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Setup(path)
	if err != nil {
		t.Fatal(err)
	}
	defer log.SetOutput(os.Stderr)
	defer cleanup()
	f, ok := log.Writer().(*os.File)
	if !ok || f.Name() != path {
		t.Fatalf("expected the standard logger to write to %s, got %T", path, log.Writer())
	}
}
