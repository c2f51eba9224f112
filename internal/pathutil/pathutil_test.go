// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccindex/ccindex/internal/pathutil"
)

func TestFindProjectRootFindsMarkerFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "compile_commands.json"), nil, 0o644))

	sub := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	file := filepath.Join(sub, "a.cc")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	got, err := pathutil.FindProjectRoot(file)
	require.NoError(t, err)

	wantReal, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, wantReal, gotReal)
}

func TestFindProjectRootErrorsWhenNoneFound(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.cc")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	// A bare temp dir (outside any repo carrying a marker file) has
	// nothing for FindProjectRoot to walk up to... unless the test
	// runner's own tree happens to have one above it, which os.TempDir
	// never does.
	_, err := pathutil.FindProjectRoot(file)
	assert.Error(t, err)
}

func TestCanonicalFallsBackForNonexistentPath(t *testing.T) {
	got, err := pathutil.Canonical("/definitely/does/not/exist.cc")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestCanonicalResolvesSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real.cc")
	require.NoError(t, os.WriteFile(real, nil, 0o644))

	link := filepath.Join(dir, "link.cc")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := pathutil.Canonical(link)
	require.NoError(t, err)

	wantReal, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)
	assert.Equal(t, wantReal, got)
}

func TestCacheDirIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, pathutil.CacheDir())
}
