// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexerfacade composes tu, indexer, crashrecovery and
// fileconsumer into the two entry points callers actually use: Parse
// allocates a fresh translation unit, ParseWithTu reuses one on reparse.
// Both filter their result to files this worker won ownership of and
// attach the diagnostics and file contents the wire format never
// persists.
package indexerfacade

import (
	"time"

	"github.com/go-clang/v3.9/clang"

	"github.com/ccindex/ccindex/crashrecovery"
	"github.com/ccindex/ccindex/fileconsumer"
	"github.com/ccindex/ccindex/indexer"
	"github.com/ccindex/ccindex/indexfile"
	"github.com/ccindex/ccindex/internal/log"
	"github.com/ccindex/ccindex/snapshot"
	"github.com/ccindex/ccindex/tu"
)

// Perf accumulates wall-clock timings for one parse. Callers may pass a
// zero-value Perf and ignore it, or inspect it afterward for profiling.
type Perf struct {
	ParseTime time.Duration
	IndexTime time.Duration
	TotalTime time.Duration
}

// IndexHandle is the process-wide frontend handle. Its construction
// takes a global lock, so one handle per worker thread, held for the
// worker's lifetime, is the intended pool model.
type IndexHandle struct {
	idx clang.Index
}

// NewIndexHandle constructs an IndexHandle. excludeDeclarationsFromPCH
// and displayDiagnostics are both left at the frontend's defaults (0).
func NewIndexHandle() *IndexHandle {
	return &IndexHandle{idx: clang.NewIndex(0, 0)}
}

// Dispose releases the underlying frontend index.
func (h *IndexHandle) Dispose() {
	h.idx.Dispose()
}

// Parse allocates a fresh translation unit for file under args, drives
// the indexer over it, and returns the claimed IndexFiles. On a
// crash-shim failure (or a failed snapshot or parse) it returns nil: no
// partial results surface.
func Parse(shared *fileconsumer.SharedState, handle *IndexHandle, file string, args []string, unsaved []snapshot.Buffer, perf *Perf) []*indexfile.IndexFile {
	start := time.Now()
	defer func() {
		if perf != nil {
			perf.TotalTime = time.Since(start)
		}
	}()

	snap, err := snapshot.New(unsaved)
	if err != nil {
		log.Warnf("indexerfacade: invalid unsaved-buffer snapshot for %s: %v", file, err)
		return nil
	}

	parseStart := time.Now()
	unit, err := tu.Create(&handle.idx, file, args, snap)
	if perf != nil {
		perf.ParseTime = time.Since(parseStart)
	}
	if err != nil {
		log.Warnf("indexerfacade: parse failed for %s: %v", file, err)
		return nil
	}

	return parseWithTu(shared, perf, unit, file, args, snap, true)
}

// ParseWithTu reuses an already-open translation unit — the reparse
// path — instead of allocating a new one.
func ParseWithTu(shared *fileconsumer.SharedState, perf *Perf, unit *tu.TU, file string, args []string, unsaved []snapshot.Buffer) []*indexfile.IndexFile {
	snap, err := snapshot.New(unsaved)
	if err != nil {
		log.Warnf("indexerfacade: invalid unsaved-buffer snapshot for %s: %v", file, err)
		return nil
	}

	reparseStart := time.Now()
	err = unit.Reparse(snap)
	if perf != nil {
		perf.ParseTime = time.Since(reparseStart)
	}
	if err != nil {
		log.Warnf("indexerfacade: reparse failed for %s: %v", file, err)
		return nil
	}

	return parseWithTu(shared, perf, unit, file, args, snap, false)
}

func parseWithTu(shared *fileconsumer.SharedState, perf *Perf, unit *tu.TU, file string, args []string, snap *snapshot.Snapshot, disposeOnExit bool) []*indexfile.IndexFile {
	var result []*indexfile.IndexFile

	runErr := crashrecovery.RunSafely(func() error {
		indexStart := time.Now()
		defer func() {
			if perf != nil {
				perf.IndexTime = time.Since(indexStart)
			}
		}()

		a := indexer.New(shared, file, args)
		indexer.Drive(a, unit)

		for _, f := range a.ClaimedFiles() {
			if buf, ok := snap.Lookup(f.Path); ok {
				f.FileContents = string(buf.Contents)
			}
			result = append(result, f)
		}
		return nil
	})

	if disposeOnExit {
		unit.Dispose()
	}

	if runErr != nil {
		log.Warnf("indexerfacade: crash shim caught a fault indexing %s: %v", file, runErr)
		return nil
	}

	return result
}
