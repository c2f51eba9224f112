// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot holds the immutable unsaved-buffer bundle passed into
// a parse.
package snapshot

import "github.com/ccindex/ccindex/internal/pathutil"

// Buffer is one in-memory overlay: an absolute path and the bytes the
// editor currently holds for it, which may differ from disk.
type Buffer struct {
	Path     string
	Contents []byte
}

// Snapshot is an immutable mapping from absolute path to overlay bytes,
// taken at parse start. Once built it is never mutated; a new Snapshot is
// built for every Create/Reparse call.
type Snapshot struct {
	buffers map[string]Buffer
}

// New builds a Snapshot from a slice of working-file overlays, canonicalizing
// each path so lookups agree with IndexFile.path.
func New(buffers []Buffer) (*Snapshot, error) {
	s := &Snapshot{buffers: make(map[string]Buffer, len(buffers))}
	for _, b := range buffers {
		path, err := pathutil.Canonical(b.Path)
		if err != nil {
			return nil, err
		}
		s.buffers[path] = Buffer{Path: path, Contents: b.Contents}
	}
	return s, nil
}

// Empty returns a Snapshot with no overlays.
func Empty() *Snapshot {
	return &Snapshot{buffers: map[string]Buffer{}}
}

// Lookup returns the overlay for path, if any.
func (s *Snapshot) Lookup(path string) (Buffer, bool) {
	if s == nil {
		return Buffer{}, false
	}
	b, ok := s.buffers[path]
	return b, ok
}

// Len returns the number of overlaid files.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buffers)
}

// Paths returns the overlaid paths in unspecified order.
func (s *Snapshot) Paths() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.buffers))
	for p := range s.buffers {
		out = append(out, p)
	}
	return out
}
