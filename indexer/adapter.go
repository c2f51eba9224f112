// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/fileconsumer"
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/indexfile"
	"github.com/ccindex/ccindex/internal/hashutil"
	"github.com/ccindex/ccindex/internal/log"
	"github.com/ccindex/ccindex/namespace"
	"github.com/ccindex/ccindex/usr"
)

// containerEntry is what the adapter remembers about a container cursor
// between events: which file and entity it resolves to.
type containerEntry struct {
	fileId fileconsumer.FileId
	id     ids.Void
	kind   entity.SymbolKind
}

// fileEntry is one file in this parse's working set.
type fileEntry struct {
	file    *indexfile.IndexFile
	claimed bool
}

// Adapter projects the frontend's event stream onto the entity model.
// One Adapter serves exactly one parse and requires no internal
// locking: the frontend delivers its event stream serially.
type Adapter struct {
	arbiter    *fileconsumer.SharedState
	importFile string
	rootArgs   []string

	ns *namespace.Helper

	byId   map[fileconsumer.FileId]*fileEntry
	byPath map[string]fileconsumer.FileId

	containers map[string]containerEntry

	rootFileId fileconsumer.FileId
}

// New returns an Adapter for one parse of importFile (the translation
// unit's own root file) with the given compiler arguments.
func New(arbiter *fileconsumer.SharedState, importFile string, args []string) *Adapter {
	return &Adapter{
		arbiter:    arbiter,
		importFile: importFile,
		rootArgs:   args,
		ns:         namespace.NewHelper(),
		byId:       map[fileconsumer.FileId]*fileEntry{},
		byPath:     map[string]fileconsumer.FileId{},
		containers: map[string]containerEntry{},
	}
}

// fileIdOf derives a FileId from a canonical path. The frontend's own
// inode-like unique id is not reachable from outside its C ABI in this
// binding's Go surface, so the adapter hashes the canonicalized
// (symlink-resolved) path instead — achieving the same collapsing of
// symlink aliases one layer up the stack.
func fileIdOf(canonicalPath string) fileconsumer.FileId {
	return fileconsumer.FileId(hashutil.Sum64String(canonicalPath))
}

// fileFor returns the working-set entry for path, lazily allocating and
// arbitrating ownership on first sight. The translation-unit root file is always claimed by its own
// parse, bypassing the arbiter.
func (a *Adapter) fileFor(path string) *fileEntry {
	id := fileIdOf(path)
	if e, ok := a.byId[id]; ok {
		return e
	}

	claimed := path == a.importFile
	if !claimed {
		claimed = a.arbiter.Mark(id)
	}

	f := indexfile.New(path, a.importFile, a.rootArgs)
	e := &fileEntry{file: f, claimed: claimed}
	a.byId[id] = e
	a.byPath[path] = id
	if path == a.importFile {
		a.rootFileId = id
	}
	return e
}

// StartedTranslationUnit records the root file of the parse.
func (a *Adapter) StartedTranslationUnit(rootPath string) {
	a.fileFor(rootPath)
}

// EnteredMainFile allocates the working-set entry for the main file; it
// changes nothing if the file was already allocated.
func (a *Adapter) EnteredMainFile(path string) {
	a.fileFor(path)
}

// PPIncludedFile appends an include edge to the including file.
func (a *Adapter) PPIncludedFile(ev IncludeEvent) {
	e := a.fileFor(ev.IncludingPath)
	e.file.AddInclude(ev.Line, ev.ResolvedPath)
}

// Skipped appends a preprocessor-elided range to the enclosing file.
func (a *Adapter) Skipped(ev SkippedEvent) {
	e := a.fileFor(ev.Path)
	e.file.AddSkipped(ev.Range)
}

// Diagnostic collects a frontend diagnostic into its owning file.
func (a *Adapter) Diagnostic(ev DiagnosticEvent) {
	e := a.fileFor(ev.Path)
	e.file.Diagnostics = append(e.file.Diagnostics, indexfile.Diagnostic{
		Range:    ev.Range,
		Severity: ev.Severity,
		Message:  ev.Message,
	})
}

// resolveContainer looks up ref in the container map, logging and
// returning ok=false if unknown.
func (a *Adapter) resolveContainer(ref *ContainerRef) (containerEntry, bool) {
	if ref == nil {
		return containerEntry{}, false
	}
	c, ok := a.containers[ref.Key]
	if !ok {
		log.Warnf("indexer: unknown container %q (kind %v); skipping dependent event", ref.Key, ref.Kind)
	}
	return c, ok
}

// registerContainer remembers that ref resolves to (fileId, id, kind), so
// later events naming the same container key can be tagged.
func (a *Adapter) registerContainer(ref ContainerRef, fileId fileconsumer.FileId, id ids.Void, kind entity.SymbolKind) {
	a.containers[ref.Key] = containerEntry{fileId: fileId, id: id, kind: kind}
}

// Files returns every IndexFile this parse touched, claimed or not. The
// façade (component 12) is responsible for filtering to claimed files
// before returning to its caller.
func (a *Adapter) Files() []*indexfile.IndexFile {
	out := make([]*indexfile.IndexFile, 0, len(a.byId))
	for _, e := range a.byId {
		out = append(out, e.file)
	}
	return out
}

// ClaimedFiles returns only the files this worker won ownership of.
func (a *Adapter) ClaimedFiles() []*indexfile.IndexFile {
	out := make([]*indexfile.IndexFile, 0, len(a.byId))
	for _, e := range a.byId {
		if e.claimed {
			out = append(out, e.file)
		}
	}
	return out
}

// usrOf hashes a frontend unified symbol name into a usr.USR, or reports
// invalid for the empty string (anonymous/unnamed entities the frontend
// declines to name).
func usrOf(unifiedSymbolName string) (usr.USR, bool) {
	if unifiedSymbolName == "" {
		return usr.Invalid, false
	}
	return usr.Of(unifiedSymbolName), true
}
