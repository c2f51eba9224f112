// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/usr"
)

// VarDef is the mutable body of an IndexVar.
type VarDef struct {
	Header

	Kind    LSSymbolKind
	Storage StorageClass

	// Type is the variable's type, if known.
	Type ids.Id[ids.Type]

	Declarations []Use
	Uses         []Use
}

// IndexVar is the per-file record for a Var entity.
type IndexVar struct {
	Id  ids.Id[ids.Var]
	USR usr.USR
	Def VarDef
}

// IsLocal holds exactly when v's LSSymbolKind is Variable, as opposed to
// Field/Parameter/EnumMember.
func (v *IndexVar) IsLocal() bool {
	return v.Def.Kind == LSVariable
}

func (d *VarDef) AddDeclaration(u Use) {
	d.Declarations = insertSortedUse(d.Declarations, u)
}

func (d *VarDef) AddUse(u Use) {
	d.Uses = insertSortedUse(d.Uses, u)
}
