// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"github.com/pkg/errors"

	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/fileconsumer"
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/indexfile"
	"github.com/ccindex/ccindex/internal/log"
	"github.com/ccindex/ccindex/position"
)

// selfFileId is the constant Id<File> representing "this IndexFile's own
// path": within a single IndexFile every entity is owned by that file, so
// File never needs more than one slot (component 4, File kind).
var selfFileId = ids.New[ids.File](0)

func fileSelfId(_ *indexfile.IndexFile) ids.Id[ids.File] {
	return selfFileId
}

// declKeyOf derives the container key other declarations use to refer
// back to ev's entity: the frontend's own USR is already a stable,
// cursor-independent identity, so it doubles as the container key.
func declKeyOf(ev DeclEvent) ContainerRef {
	return ContainerRef{Key: ev.USR, Kind: ev.Kind, Name: ev.Spelling}
}

// logSkip records a skipped, non-fatal invariant violation.
func logSkip(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// newUse builds a Use whose Id/Kind denote container, the lexical
// parent of the range. An unresolved or file-scope container yields a
// Use with an invalid id.
func (a *Adapter) newUse(r position.Range, container *ContainerRef) entity.Use {
	u := entity.Use{Reference: entity.Reference{Range: r, Id: ids.Nil[ids.Void](), Kind: entity.SymbolKindInvalid}}
	if c, ok := a.resolveContainer(container); ok {
		u.Id = c.id
		u.Kind = c.kind
	}
	return u
}

// fileIdFor returns the working-set FileId already assigned to f's path.
func (a *Adapter) fileIdFor(f *indexfile.IndexFile) fileconsumer.FileId {
	return a.byPath[f.Path]
}

func (a *Adapter) typeIn(c containerEntry) (*entity.IndexType, error) {
	e, ok := a.byId[c.fileId]
	if !ok {
		return nil, errors.Errorf("indexer: no working-set entry for file id %d", c.fileId)
	}
	return e.file.Type(ids.Narrow[ids.Type](c.id))
}

func (a *Adapter) funcIn(c containerEntry) (*entity.IndexFunc, error) {
	e, ok := a.byId[c.fileId]
	if !ok {
		return nil, errors.Errorf("indexer: no working-set entry for file id %d", c.fileId)
	}
	return e.file.Func(ids.Narrow[ids.Func](c.id))
}
