// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ccindex/ccindex/internal/watch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherFiresOnChangeDebounced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dep.h")
	require.NoError(t, os.WriteFile(path, []byte("// v1"), 0o644))

	var mu sync.Mutex
	var fired []string
	w, err := watch.New([]string{path}, 20*time.Millisecond, func(p string) {
		mu.Lock()
		fired = append(fired, p)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer w.Close()

	// Two rapid writes within the debounce window; the callback must fire
	// once the window has passed. Only that it fires is checked here, not
	// how many times.
	require.NoError(t, os.WriteFile(path, []byte("// v2"), 0o644))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("// v3"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestWatcherCloseStopsBackgroundGoroutine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dep.h")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := watch.New([]string{path}, time.Millisecond, func(string) {})
	require.NoError(t, err)

	assert.NoError(t, w.Close())
}
