// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathutil collects path-resolution helpers used across ccindex.
package pathutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// markerFiles are checked, in order, when walking up from a file to find
// the enclosing project root.
var markerFiles = []string{
	"compile_commands.json",
	"compile_flags.txt",
	".ccindex.toml",
	".git",
}

// FindProjectRoot walks up from path looking for one of markerFiles,
// returning the directory that contains it.
func FindProjectRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WithStack(err)
	}

	dir := abs
	if fi, err := os.Stat(abs); err == nil && !fi.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		for _, marker := range markerFiles {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("pathutil: no project root found above %s", abs)
		}
		dir = parent
	}
}

// CacheDir returns the per-user cache directory for ccindex: a "ccindex"
// folder under the user cache directory, or under the temp directory when
// that is unknown. It does not create the directory.
func CacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "ccindex")
	}
	return filepath.Join(os.TempDir(), "ccindex")
}

// Canonical returns the absolute, symlink-resolved form of path, matching
// the canonical-path invariant required of IndexFile.path, IndexInclude's
// resolved path, and dependency entries.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// file may not exist yet (e.g. an unsaved buffer overlay); fall back
		// to the absolute form rather than failing.
		return abs, nil
	}
	return real, nil
}
