package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/majdbaddour/timeline/pkg/throttle"
	"github.com/majdbaddour/timeline/pkg/window"
)

// watchDelay coalesces the several filesystem events of one write.
const watchDelay = 100 * time.Millisecond

// Watch streams windows committed by other processes until ctx is cancelled.
// Each one has already replaced the in-memory window, so subscribers are
// notified too. Callers should drain the returned channel; it is closed once
// ctx is done or the watcher fails.
func (p *Disk) Watch(ctx context.Context) (<-chan window.TimeWindow, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	// Watch the directory so the window file may appear after we start.
	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	windows := make(chan window.TimeWindow, 16)
	target := filepath.Clean(p.Path())

	go func() {
		defer close(windows)
		defer closeWatcher()

		coalesce := throttle.New(watchDelay)
		defer coalesce.Stop()

		var mu sync.Mutex
		done := false
		reload := func() {
			w, err := p.Read()
			if err != nil {
				return
			}
			if w == p.mem.Get() {
				// Our own write.
				return
			}
			p.mem.Set(w)

			mu.Lock()
			defer mu.Unlock()
			if done {
				return
			}
			select {
			case windows <- w:
			default:
				// Drop if the consumer is behind, the next read is current.
			}
		}
		defer func() {
			mu.Lock()
			done = true
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Could not classify the change, re-read anyway.
				coalesce.Do(reload)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				coalesce.Do(reload)
			}
		}
	}()

	return windows, nil
}
