// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tu wraps the frontend's translation-unit lifecycle: creation,
// safe reparse, and unsaved-buffer remapping.
package tu

import (
	"os"
	"time"

	"github.com/go-clang/v3.9/clang"
	"github.com/pkg/errors"

	"github.com/ccindex/ccindex/internal/log"
	"github.com/ccindex/ccindex/snapshot"
)

// defaultOptions combines the editing-session preset with KeepGoing, so
// a single malformed declaration does not abort the whole parse.
var defaultOptions = clang.DefaultEditingTranslationUnitOptions() | uint32(clang.TranslationUnit_KeepGoing)

// TU owns one frontend translation unit plus the arguments and snapshot
// that produced it. Create is coarser and slower; Reparse is cheap and
// must be preferred whenever a unit already exists.
type TU struct {
	Filepath string
	Args     []string

	index *clang.Index
	unit  clang.TranslationUnit
	owned bool
}

// Create drives the frontend to produce a parsed unit for filepath using
// args, remapping every overlay in snap in place of on-disk contents.
func Create(index *clang.Index, filepath string, args []string, snap *snapshot.Snapshot) (*TU, error) {
	unsaved := toUnsavedFiles(filepath, snap)

	var unit clang.TranslationUnit
	cErr := index.ParseTranslationUnit2(filepath, args, unsaved, defaultOptions, &unit)
	if clang.ErrorCode(cErr) != clang.Error_Success {
		return nil, errors.Errorf("tu: parse %s: %s", filepath, clang.ErrorCode(cErr).Spelling())
	}

	return &TU{
		Filepath: filepath,
		Args:     args,
		index:    index,
		unit:     unit,
		owned:    true,
	}, nil
}

// Reparse recomputes the unit against a fresh snapshot, returning a
// non-zero error on frontend failure. The prior AST is
// discarded in place; callers must not retain references to entities
// derived from the unit before Reparse returns.
func (t *TU) Reparse(snap *snapshot.Snapshot) error {
	unsaved := toUnsavedFiles(t.Filepath, snap)

	cErr := t.unit.Reparse(unsaved, defaultOptions)
	if clang.ErrorCode(cErr) != clang.Error_Success {
		return errors.Errorf("tu: reparse %s: %s", t.Filepath, clang.ErrorCode(cErr).Spelling())
	}
	log.Debugf("tu: reparsed %s", t.Filepath)
	return nil
}

// Cursor returns the root cursor the indexing callback adapter walks.
func (t *TU) Cursor() clang.Cursor {
	return t.unit.TranslationUnitCursor()
}

// Diagnostics returns the frontend's current diagnostics for this unit.
func (t *TU) Diagnostics() []clang.Diagnostic {
	return t.unit.Diagnostics()
}

// Dispose releases the unit's storage. Safe to call more than once.
func (t *TU) Dispose() {
	if !t.owned {
		return
	}
	t.unit.Dispose()
	t.owned = false
}

// ModTime returns the on-disk modification time of Filepath, used to
// populate IndexFile.LastModificationTime.
func (t *TU) ModTime() time.Time {
	fi, err := os.Stat(t.Filepath)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}

func toUnsavedFiles(rootFile string, snap *snapshot.Snapshot) []clang.UnsavedFile {
	if snap == nil {
		return nil
	}
	paths := snap.Paths()
	unsaved := make([]clang.UnsavedFile, 0, len(paths))
	for _, p := range paths {
		b, ok := snap.Lookup(p)
		if !ok {
			continue
		}
		unsaved = append(unsaved, clang.NewUnsavedFile(p, string(b.Contents)))
	}
	return unsaved
}
