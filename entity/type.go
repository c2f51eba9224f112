// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/usr"
)

// TypeDef is the mutable body of an IndexType: everything that can
// change as further indexing events arrive for the same USR.
type TypeDef struct {
	Header

	Kind SymbolKind
	LS   LSSymbolKind

	// Bases are direct parent types.
	Bases []ids.Id[ids.Type]
	// Derived are direct subclasses observed in this TU.
	Derived []ids.Id[ids.Type]

	// Types, Funcs, Vars are nested members (for classes/namespaces).
	Types []ids.Id[ids.Type]
	Funcs []ids.Id[ids.Func]
	Vars  []ids.Id[ids.Var]

	// AliasOf is a valid id (not ids.Nil) iff this is a typedef/using alias.
	AliasOf ids.Id[ids.Type]

	// Instances are variables observed to have this type.
	Instances []ids.Id[ids.Var]

	// Declarations are this type's forward-declaration Uses. Classes
	// collapse declaration and definition into a single record: forward
	// declarations seen before the definition stay here, those seen after
	// it are not recorded.
	Declarations []Use
	// Uses are every occurrence of this type as a reference.
	Uses []Use
}

// IndexType is the per-file record for a Type entity.
type IndexType struct {
	Id  ids.Id[ids.Type]
	USR usr.USR
	Def TypeDef
}

// HasAlias reports whether this type is a typedef/using alias.
func (t *IndexType) HasAlias() bool {
	return t.Def.AliasOf.Valid()
}

// AddDeclaration appends u to Declarations, keeping the slice sorted by
// range with duplicates at the same key collapsed.
func (d *TypeDef) AddDeclaration(u Use) {
	d.Declarations = insertSortedUse(d.Declarations, u)
}

// AddUse appends u to Uses, keeping the slice sorted and deduplicated.
func (d *TypeDef) AddUse(u Use) {
	d.Uses = insertSortedUse(d.Uses, u)
}

func insertSortedUse(uses []Use, u Use) []Use {
	key := u.Key()
	for _, existing := range uses {
		if existing.Key() == key {
			return uses
		}
	}
	i := 0
	for ; i < len(uses); i++ {
		if u.Less(uses[i].Reference) {
			break
		}
	}
	uses = append(uses, Use{})
	copy(uses[i+1:], uses[i:])
	uses[i] = u
	return uses
}
