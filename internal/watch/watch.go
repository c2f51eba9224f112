// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch invokes a caller-supplied callback when any of a set of
// files (such as IndexFile.Dependencies) changes on disk; a caller that
// wants a reparse issues it from that callback. It is an ambient
// convenience; it does not change the core's indexing semantics.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ccindex/ccindex/internal/log"
)

// Watcher monitors a translation unit's dependency files (its own
// source plus every resolved include) and invokes onChange, debounced,
// whenever any of them changes.
type Watcher struct {
	fsw    *fsnotify.Watcher
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	debounce time.Duration
}

// New starts a Watcher watching paths. onChange is called with the
// triggering path no more often than once per debounce window, to
// absorb editor save bursts (write + chmod + rename in quick
// succession).
func New(paths []string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			log.Warnf("watch: cannot watch %s: %v", p, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{fsw: fsw, ctx: ctx, cancel: cancel, debounce: debounce}

	w.wg.Add(1)
	go w.run(onChange)

	return w, nil
}

func (w *Watcher) run(onChange func(path string)) {
	defer w.wg.Done()

	pending := map[string]*time.Timer{}
	var mu sync.Mutex

	for {
		select {
		case <-w.ctx.Done():
			mu.Lock()
			for _, t := range pending {
				t.Stop()
			}
			mu.Unlock()
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			path := ev.Name
			mu.Lock()
			if t, scheduled := pending[path]; scheduled {
				t.Stop()
			}
			pending[path] = time.AfterFunc(w.debounce, func() {
				mu.Lock()
				delete(pending, path)
				mu.Unlock()
				onChange(path)
			})
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warnf("watch: %v", err)
		}
	}
}

// Add watches an additional path, e.g. a newly-resolved include not
// present at construction time.
func (w *Watcher) Add(path string) error {
	return w.fsw.Add(path)
}

// Close stops watching and releases the underlying fsnotify handle.
func (w *Watcher) Close() error {
	w.cancel()
	w.wg.Wait()
	return w.fsw.Close()
}
