// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/indexfile"
	"github.com/ccindex/ccindex/usr"
)

// EntityReference projects one reference event onto the entity model.
// It builds a Use tagged with the lexical parent, and for call
// references additionally appends a SymbolRef to the parent function's
// callees.
func (a *Adapter) EntityReference(ev RefEvent) {
	targetUSR, ok := usrOf(ev.TargetUSR)
	if !ok {
		logSkip("entityReference with empty target USR at %s", ev.Loc.Path)
		return
	}

	owner := a.fileFor(ev.Loc.Path)
	use := a.newUse(ev.Range, ev.Container)
	use.Role = ev.Role

	targetVoid := resolveTargetId(owner.file, targetUSR, ev.TargetKind)

	switch ev.TargetKind {
	case entity.SymbolKindType:
		t, err := owner.file.Type(ids.Narrow[ids.Type](targetVoid))
		if err == nil {
			t.Def.AddUse(use)
		}
	case entity.SymbolKindFunc:
		f, err := owner.file.Func(ids.Narrow[ids.Func](targetVoid))
		if err == nil {
			f.Def.AddUse(use)
		}
	case entity.SymbolKindVar:
		v, err := owner.file.Var(ids.Narrow[ids.Var](targetVoid))
		if err == nil {
			v.Def.AddUse(use)
		}
	default:
		logSkip("entityReference to unhandled kind %v at %s", ev.TargetKind, ev.Loc.Path)
		return
	}

	if ev.IsCall {
		if parent, ok := a.resolveContainer(ev.Container); ok && parent.kind == entity.SymbolKindFunc {
			parentFunc, err := a.funcIn(parent)
			if err == nil {
				ref := entity.SymbolRef{Reference: entity.Reference{
					Range: ev.Range,
					Id:    targetVoid,
					Kind:  ev.TargetKind,
					Role:  ev.Role | entity.RoleCall,
				}}
				parentFunc.Def.AddCallee(ref)
			}
		}
	}
}

// resolveTargetId obtains the referenced entity's id within owner,
// allocating its IdCache slot if this is the first time owner has seen
// that USR. Cross-file edges are permitted: the
// referenced entity need not live in this same IndexFile, but the local
// IdCache slot standing in for it is always allocated here.
func resolveTargetId(owner *indexfile.IndexFile, u usr.USR, kind entity.SymbolKind) ids.Void {
	switch kind {
	case entity.SymbolKindType:
		return ids.Widen(owner.ToTypeId(u))
	case entity.SymbolKindFunc:
		return ids.Widen(owner.ToFuncId(u))
	case entity.SymbolKindVar:
		return ids.Widen(owner.ToVarId(u))
	default:
		return ids.Nil[ids.Void]()
	}
}
