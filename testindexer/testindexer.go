// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testindexer implements the alternative IIndexer used to
// exercise a dispatcher layer without a real compiler frontend: given a
// fixed list of (path, num_indexes) entries, it pretends to index those
// paths, returning empty IndexFiles and counting how many times each
// path was asked for.
package testindexer

import (
	"sync"

	"github.com/ccindex/ccindex/indexfile"
)

// Entry names one path this fake will pretend to index and how many
// distinct IndexFiles a real parse of it would have produced.
type Entry struct {
	Path       string
	NumIndexes int
}

// Indexer is the IIndexer fake. The zero value is not usable; construct
// one with New.
type Indexer struct {
	mu      sync.Mutex
	entries map[string]int
	counts  map[string]int
}

// New returns an Indexer that recognizes exactly the given entries.
func New(entries []Entry) *Indexer {
	idx := &Indexer{
		entries: make(map[string]int, len(entries)),
		counts:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		idx.entries[e.Path] = e.NumIndexes
	}
	return idx
}

// Parse pretends to index file, returning numIndexes empty IndexFiles
// and incrementing the per-path call counter. Unknown paths, and entries
// with a non-positive count, return a single empty IndexFile and still
// increment their counter; the result is never nil.
func (idx *Indexer) Parse(file string, args []string) []*indexfile.IndexFile {
	idx.mu.Lock()
	idx.counts[file]++
	idx.mu.Unlock()

	n, ok := idx.entries[file]
	if !ok || n <= 0 {
		n = 1
	}

	out := make([]*indexfile.IndexFile, n)
	for i := range out {
		out[i] = indexfile.New(file, file, args)
	}
	return out
}

// CallCount reports how many times Parse has been invoked for path.
func (idx *Indexer) CallCount(path string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.counts[path]
}
