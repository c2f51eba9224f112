// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileconsumer implements the cross-translation-unit arbiter: a
// process-wide map enforcing at-most-one-worker-per-header. It is the
// only shared mutable state a parse touches.
package fileconsumer

import "sync"

// FileId is the frontend's own unique file identity (inode-like), used
// instead of the textual path so symlink aliases collapse.
type FileId uint64

// SharedState is the arbiter. The zero value is not usable; construct
// one with New. Tests construct fresh arbiters rather than relying on a
// package-level singleton, so state from one test case can never leak
// into another.
type SharedState struct {
	mu     sync.Mutex
	marked map[FileId]struct{}
}

// New returns an empty SharedState.
func New() *SharedState {
	return &SharedState{marked: map[FileId]struct{}{}}
}

// Mark claims id for the calling worker. The first caller for an id
// receives true and must index the file; every subsequent caller
// receives false and must drop its in-progress IndexFile for that file
// at end of parse.
func (s *SharedState) Mark(id FileId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, already := s.marked[id]; already {
		return false
	}
	s.marked[id] = struct{}{}
	return true
}

// Owns reports whether id has already been claimed by some worker,
// without claiming it. Used by tests to observe the arbiter's state.
func (s *SharedState) Owns(id FileId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.marked[id]
	return ok
}
