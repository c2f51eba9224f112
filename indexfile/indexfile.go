// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexfile

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/position"
	"github.com/ccindex/ccindex/usr"
)

// IndexInclude is one #include edge: the 1-based line of the directive and
// the absolute, canonical path it resolved to.
type IndexInclude struct {
	Line         int
	ResolvedPath string
}

// IndexFile is the per-source-file output of one parse. It owns three dense arrays — Types, Funcs, Vars — each
// indexed by the corresponding Id<K>.
type IndexFile struct {
	// Path is this file's own absolute, canonical path.
	Path string
	// Args are the compiler arguments used to produce this IndexFile.
	Args []string
	// LastModificationTime is the mtime of Path at parse time.
	LastModificationTime time.Time
	// Language names the source language ("c", "c++", "objective-c", ...).
	Language string
	// ImportFile is the translation-unit file that caused this IndexFile
	// to be created; equal to Path for the TU's own file.
	ImportFile string

	SkippedByPreprocessor []position.Range
	Includes              []IndexInclude
	Dependencies          []string

	// Diagnostics and FileContents are populated by the façade but are
	// never serialized.
	Diagnostics  []Diagnostic `json:"-"`
	FileContents string       `json:"-"`

	IdCache *IdCache

	Types []entity.IndexType
	Funcs []entity.IndexFunc
	Vars  []entity.IndexVar
}

// Diagnostic mirrors one frontend diagnostic event.
type Diagnostic struct {
	Range    position.Range
	Severity string
	Message  string
}

// New returns an empty IndexFile for path, imported by importFile (equal
// to path for a translation unit's own root file).
func New(path, importFile string, args []string) *IndexFile {
	return &IndexFile{
		Path:       path,
		ImportFile: importFile,
		Args:       args,
		IdCache:    NewIdCache(),
	}
}

// ToTypeId is total: on first sight of usr it allocates a fresh TypeDef,
// appends it, populates both cache directions, and returns the new id. On
// subsequent sightings it returns the existing id.
func (f *IndexFile) ToTypeId(u usr.USR) ids.Id[ids.Type] {
	if id, ok := f.IdCache.LookupType(u); ok {
		return id
	}
	id := ids.New[ids.Type](uint32(len(f.Types)))
	f.Types = append(f.Types, entity.IndexType{
		Id:  id,
		USR: u,
		Def: entity.TypeDef{AliasOf: ids.Nil[ids.Type]()},
	})
	f.IdCache.InternType(u, id)
	return id
}

// ToFuncId is the Func analogue of ToTypeId.
func (f *IndexFile) ToFuncId(u usr.USR) ids.Id[ids.Func] {
	if id, ok := f.IdCache.LookupFunc(u); ok {
		return id
	}
	id := ids.New[ids.Func](uint32(len(f.Funcs)))
	f.Funcs = append(f.Funcs, entity.IndexFunc{
		Id:  id,
		USR: u,
		Def: entity.FuncDef{DeclaringType: ids.Nil[ids.Type]()},
	})
	f.IdCache.InternFunc(u, id)
	return id
}

// ToVarId is the Var analogue of ToTypeId.
func (f *IndexFile) ToVarId(u usr.USR) ids.Id[ids.Var] {
	if id, ok := f.IdCache.LookupVar(u); ok {
		return id
	}
	id := ids.New[ids.Var](uint32(len(f.Vars)))
	f.Vars = append(f.Vars, entity.IndexVar{
		Id:  id,
		USR: u,
		Def: entity.VarDef{Type: ids.Nil[ids.Type]()},
	})
	f.IdCache.InternVar(u, id)
	return id
}

// Type returns a pointer to the type record for id, valid per invariant 1
// (an Id<K> is a valid index into the corresponding entity vector).
func (f *IndexFile) Type(id ids.Id[ids.Type]) (*entity.IndexType, error) {
	if !id.Valid() || int(id.Value) >= len(f.Types) {
		return nil, errors.Errorf("indexfile: type id %d out of range (have %d)", id.Value, len(f.Types))
	}
	return &f.Types[id.Value], nil
}

// Func returns a pointer to the func record for id.
func (f *IndexFile) Func(id ids.Id[ids.Func]) (*entity.IndexFunc, error) {
	if !id.Valid() || int(id.Value) >= len(f.Funcs) {
		return nil, errors.Errorf("indexfile: func id %d out of range (have %d)", id.Value, len(f.Funcs))
	}
	return &f.Funcs[id.Value], nil
}

// Var returns a pointer to the var record for id.
func (f *IndexFile) Var(id ids.Id[ids.Var]) (*entity.IndexVar, error) {
	if !id.Valid() || int(id.Value) >= len(f.Vars) {
		return nil, errors.Errorf("indexfile: var id %d out of range (have %d)", id.Value, len(f.Vars))
	}
	return &f.Vars[id.Value], nil
}

// AddInclude appends an include edge and records its resolved path as a
// dependency.
func (f *IndexFile) AddInclude(line int, resolvedPath string) {
	f.Includes = append(f.Includes, IndexInclude{Line: line, ResolvedPath: resolvedPath})
	for _, dep := range f.Dependencies {
		if dep == resolvedPath {
			return
		}
	}
	f.Dependencies = append(f.Dependencies, resolvedPath)
}

// AddSkipped appends a preprocessor-elided range.
func (f *IndexFile) AddSkipped(r position.Range) {
	f.SkippedByPreprocessor = append(f.SkippedByPreprocessor, r)
}

// CheckInvariants validates the structural properties that hold of a
// single IndexFile in isolation: IdCache bijection, spell-within-extent,
// and base/derived and declaring-type/member reciprocity. It is used by
// tests and may be run by callers wanting defense-in-depth before
// persisting a result.
func (f *IndexFile) CheckInvariants() error {
	for i := range f.Types {
		t := &f.Types[i]
		if id, ok := f.IdCache.LookupType(t.USR); !ok || id != t.Id {
			return errors.Errorf("indexfile: type %s: id_cache mismatch", t.USR)
		}
		if u, ok := f.IdCache.USROfType(t.Id); !ok || u != t.USR {
			return errors.Errorf("indexfile: type id %d: reverse id_cache mismatch", t.Id.Value)
		}
		if t.Def.Spell.Range.Valid() && t.Def.Extent.Range.Valid() {
			if !t.Def.Extent.Range.Contains(t.Def.Spell.Range) {
				return errors.Errorf("indexfile: type %s: spell not contained in extent", t.USR)
			}
		}
		for _, b := range t.Def.Bases {
			base, err := f.Type(b)
			if err == nil {
				found := false
				for _, d := range base.Def.Derived {
					if d == t.Id {
						found = true
						break
					}
				}
				if !found {
					return errors.Errorf("indexfile: type %s: base %d missing reciprocal derived edge", t.USR, b.Value)
				}
			}
		}
	}

	for i := range f.Funcs {
		fn := &f.Funcs[i]
		if id, ok := f.IdCache.LookupFunc(fn.USR); !ok || id != fn.Id {
			return errors.Errorf("indexfile: func %s: id_cache mismatch", fn.USR)
		}
		if u, ok := f.IdCache.USROfFunc(fn.Id); !ok || u != fn.USR {
			return errors.Errorf("indexfile: func id %d: reverse id_cache mismatch", fn.Id.Value)
		}
		if fn.Def.Spell.Range.Valid() && fn.Def.Extent.Range.Valid() {
			if !fn.Def.Extent.Range.Contains(fn.Def.Spell.Range) {
				return errors.Errorf("indexfile: func %s: spell not contained in extent", fn.USR)
			}
		}
		if fn.IsMethod() {
			declType, err := f.Type(fn.Def.DeclaringType)
			if err == nil {
				found := false
				for _, m := range declType.Def.Funcs {
					if m == fn.Id {
						found = true
						break
					}
				}
				if !found {
					return errors.Errorf("indexfile: func %s: declaring_type.funcs missing %d", fn.USR, fn.Id.Value)
				}
			}
		}
	}

	for i := range f.Vars {
		v := &f.Vars[i]
		if id, ok := f.IdCache.LookupVar(v.USR); !ok || id != v.Id {
			return errors.Errorf("indexfile: var %s: id_cache mismatch", v.USR)
		}
		if u, ok := f.IdCache.USROfVar(v.Id); !ok || u != v.USR {
			return errors.Errorf("indexfile: var id %d: reverse id_cache mismatch", v.Id.Value)
		}
	}

	return nil
}
