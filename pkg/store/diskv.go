package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/majdbaddour/timeline/pkg/window"
)

// ErrNoWindow is returned by Read when nothing has been committed yet.
var ErrNoWindow = errors.New("store: no window committed")

// windowKey is the diskv key, and file name, of the committed window.
const windowKey = "window"

// Config supplies the store location.
type Config interface {
	BasePath() string
}

// Disk is a window.Store persisted as JSON under a base directory. Reads are
// served from memory; the file is the hand-off point between processes, see
// Watch.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	mem      *window.Memory
}

var _ window.Store = (*Disk)(nil)

// Load opens the store at cfg.BasePath(). The committed window, or fallback
// when there is none yet, is loaded into memory.
func Load(cfg Config, fallback window.TimeWindow) (*Disk, error) {
	if cfg == nil || cfg.BasePath() == "" {
		return nil, errors.New("store: base path unknown")
	}
	basePath := cfg.BasePath()
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	p := &Disk{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			Transform: func(string) []string { return []string{} },
			// No cache: other processes write the same file.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}

	w, err := p.Read()
	switch {
	case errors.Is(err, ErrNoWindow):
		w = fallback
	case err != nil:
		fmt.Fprintf(os.Stderr, "store: %v, using default window\n", err)
		w = fallback
	}
	p.mem = window.NewMemory(w.Normalize())
	return p, nil
}

// Path is the file holding the committed window.
func (p *Disk) Path() string {
	return filepath.Join(p.basePath, windowKey)
}

// Read loads the committed window from disk.
func (p *Disk) Read() (window.TimeWindow, error) {
	if !p.d.Has(windowKey) {
		return window.TimeWindow{}, ErrNoWindow
	}
	val, err := p.d.Read(windowKey)
	if err != nil {
		return window.TimeWindow{}, err
	}
	var w window.TimeWindow
	if err := json.Unmarshal(val, &w); err != nil {
		return window.TimeWindow{}, fmt.Errorf("%s: %w", windowKey, err)
	}
	if err := w.Validate(); err != nil {
		return window.TimeWindow{}, err
	}
	return w.Normalize(), nil
}

// Write commits w to disk and memory. The window is normalized first so the
// copy in memory matches what Read returns for the file.
func (p *Disk) Write(w window.TimeWindow) error {
	w = w.Normalize()
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}
	if err := p.d.Write(windowKey, data); err != nil {
		return err
	}
	p.mem.Set(w)
	return nil
}

// Clear removes the committed window from disk and resets memory to w.
func (p *Disk) Clear(w window.TimeWindow) error {
	if p.d.Has(windowKey) {
		if err := p.d.Erase(windowKey); err != nil {
			return err
		}
	}
	p.mem.Set(w)
	return nil
}

func (p *Disk) Get() window.TimeWindow {
	return p.mem.Get()
}

// Set implements window.Store. Write failures are logged; the in-memory
// window is still replaced so the session stays consistent.
func (p *Disk) Set(w window.TimeWindow) {
	if err := p.Write(w); err != nil {
		log.Printf("store: write window: %v", err)
		p.mem.Set(w.Normalize())
	}
}

// Subscribe registers fn for every commit, local or picked up by Watch.
func (p *Disk) Subscribe(fn func(window.TimeWindow)) (cancel func()) {
	return p.mem.Subscribe(fn)
}
