// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/usr"
)

// Declaration is one spelling of a function's name, plus the ranges of its
// parameter-name spellings — one per Declaration since each overload or
// forward declaration may name its parameters differently.
type Declaration struct {
	Spell      Use
	ParamSpell []Use
}

// FuncDef is the mutable body of an IndexFunc.
type FuncDef struct {
	Header

	Kind LSSymbolKind
	Storage StorageClass

	// Bases are methods this method overrides.
	Bases []ids.Id[ids.Func]
	// Derived are direct overrides of this method observed in this TU.
	Derived []ids.Id[ids.Func]

	// DeclaringType is a valid id (not ids.Nil) iff this is a method.
	DeclaringType ids.Id[ids.Type]

	// Vars are locals and parameters.
	Vars []ids.Id[ids.Var]

	// Callees records every call this function makes.
	Callees []SymbolRef

	Declarations []Declaration
	// Uses are non-call references to this function.
	Uses []Use
}

// IndexFunc is the per-file record for a Func entity.
type IndexFunc struct {
	Id  ids.Id[ids.Func]
	USR usr.USR
	Def FuncDef
}

// IsMethod reports whether this function is a method (has a declaring type).
func (f *IndexFunc) IsMethod() bool {
	return f.Def.DeclaringType.Valid()
}

// AddDeclaration appends a declaration's spelling, keyed by its Spell range
// so a duplicate declaration event at the same range is ignored.
func (d *FuncDef) AddDeclaration(decl Declaration) {
	for _, existing := range d.Declarations {
		if existing.Spell.Key() == decl.Spell.Key() {
			return
		}
	}
	i := 0
	for ; i < len(d.Declarations); i++ {
		if decl.Spell.Less(d.Declarations[i].Spell.Reference) {
			break
		}
	}
	d.Declarations = append(d.Declarations, Declaration{})
	copy(d.Declarations[i+1:], d.Declarations[i:])
	d.Declarations[i] = decl
}

// AddUse appends u to Uses, sorted and deduplicated.
func (d *FuncDef) AddUse(u Use) {
	d.Uses = insertSortedUse(d.Uses, u)
}

// AddCallee appends a call edge, deduplicated on (range, id).
func (d *FuncDef) AddCallee(ref SymbolRef) {
	key := ref.Key()
	for _, existing := range d.Callees {
		if existing.Key() == key {
			return
		}
	}
	d.Callees = append(d.Callees, ref)
}
