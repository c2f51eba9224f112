// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccindex/ccindex/snapshot"
)

func TestNewCanonicalizesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cc")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	s, err := snapshot.New([]snapshot.Buffer{{Path: path, Contents: []byte("new")}})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	b, ok := s.Lookup(path)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), b.Contents)
}

func TestLookupMissForUnknownPath(t *testing.T) {
	s := snapshot.Empty()
	_, ok := s.Lookup("/nowhere.cc")
	assert.False(t, ok)
}

func TestEmptySnapshotMethodsOnNil(t *testing.T) {
	var s *snapshot.Snapshot
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Paths())
	_, ok := s.Lookup("/x")
	assert.False(t, ok)
}

func TestPathsReturnsAllOverlays(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.cc")
	b := filepath.Join(dir, "b.cc")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	s, err := snapshot.New([]snapshot.Buffer{{Path: a}, {Path: b}})
	require.NoError(t, err)
	assert.Len(t, s.Paths(), 2)
}
