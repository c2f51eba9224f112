// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/indexfile"
	"github.com/ccindex/ccindex/namespace"
	"github.com/ccindex/ccindex/usr"
)

// Declaration projects one declaration event onto the entity model: it
// computes the USR, consults the owning file's IdCache, obtains or
// creates the entity, fills in the qualified name via the namespace
// helper, and sets kind/storage/file plus either spell+extent (for a
// definition) or a new declaration record.
func (a *Adapter) Declaration(ev DeclEvent) {
	owner := a.fileFor(ev.Loc.Path)

	u, ok := usrOf(ev.USR)
	if !ok {
		logSkip("declaration with empty USR at %s", ev.Loc.Path)
		return
	}

	switch ev.Kind {
	case entity.SymbolKindType:
		a.declareType(owner.file, u, ev)
	case entity.SymbolKindFunc:
		a.declareFunc(owner.file, u, ev)
	case entity.SymbolKindVar:
		a.declareVar(owner.file, u, ev)
	default:
		logSkip("declaration of unhandled kind %v at %s", ev.Kind, ev.Loc.Path)
	}
}

func (a *Adapter) nsChain(ev DeclEvent) []namespace.Container {
	chain := make([]namespace.Container, 0, len(ev.Chain))
	for _, c := range ev.Chain {
		chain = append(chain, namespace.Container{
			CursorKey: c.Key,
			Kind:      toNSKind(c.NSKind),
			Name:      c.Name,
		})
	}
	return chain
}

func toNSKind(k NSContainerKind) namespace.ContainerKind {
	switch k {
	case NSNamespace:
		return namespace.ContainerNamespace
	case NSInlineNamespace:
		return namespace.ContainerInlineNamespace
	case NSClass:
		return namespace.ContainerClass
	case NSFunction:
		return namespace.ContainerFunction
	default:
		return namespace.ContainerNone
	}
}

// fillHeader synthesizes DetailedName/offsets and copies over the shared
// header fields; detailedPrefix/detailedSuffix let callers wrap the qualified
// name in a fuller declaration string (e.g. "void ns::C::m(int) const").
func (a *Adapter) fillHeader(h *entity.Header, ev DeclEvent, detailedPrefix, detailedSuffix string) {
	chain := a.nsChain(ev)
	res := a.ns.Qualify(chain, ev.Spelling, uint16(len(detailedPrefix)))

	h.DetailedName = detailedPrefix + res.Qualified + detailedSuffix
	h.QualNameOffset = res.QualNameOffset
	h.ShortNameOffset = res.ShortNameOffset
	h.ShortNameSize = res.ShortNameSize

	if ev.Hover != "" {
		h.Hover = ev.Hover
	}
	if ev.Comments != "" {
		h.Comments = ev.Comments
	}
}

func (a *Adapter) declareType(owner *indexfile.IndexFile, u usr.USR, ev DeclEvent) {
	id := owner.ToTypeId(u)
	t, err := owner.Type(id)
	if err != nil {
		logSkip("declareType: %v", err)
		return
	}

	// Classes collapse declaration and definition into a single record:
	// every event fills in detailed_name, only the definition sets
	// spell/extent, and a forward `class Foo;` is recorded as a
	// declaration Use only while no definition has been seen.
	a.fillHeader(&t.Def.Header, ev, "", "")
	t.Def.Kind = ev.Kind
	t.Def.LS = ev.LSKind
	t.Def.File = fileSelfId(owner)

	if ev.IsDefinition {
		t.Def.Spell = a.newUse(ev.SpellRange, ev.Container)
		t.Def.Extent = a.newUse(ev.ExtentRange, ev.Container)
	} else if !t.Def.Extent.Range.Valid() {
		// No definition seen yet: record this as a forward declaration
		// Use rather than silently dropping it.
		t.Def.AddDeclaration(a.newUse(ev.SpellRange, ev.Container))
	}

	if ev.AliasOfUSR != "" {
		t.Def.AliasOf = owner.ToTypeId(usr.Of(ev.AliasOfUSR))
	}

	for _, baseUSR := range ev.Bases {
		baseId := owner.ToTypeId(usr.Of(baseUSR))
		t.Def.Bases = appendUniqueType(t.Def.Bases, baseId)

		base, err := owner.Type(baseId)
		if err == nil {
			base.Def.Derived = appendUniqueType(base.Def.Derived, id)
		}
	}

	if parent, ok := a.resolveContainer(ev.Container); ok && parent.kind == entity.SymbolKindType {
		parentType, err := a.typeIn(parent)
		if err == nil {
			parentType.Def.Types = appendUniqueType(parentType.Def.Types, id)
		}
	}

	a.registerContainer(declKeyOf(ev), a.fileIdFor(owner), ids.Widen(id), entity.SymbolKindType)
}

func (a *Adapter) declareFunc(owner *indexfile.IndexFile, u usr.USR, ev DeclEvent) {
	id := owner.ToFuncId(u)
	f, err := owner.Func(id)
	if err != nil {
		logSkip("declareFunc: %v", err)
		return
	}

	a.fillHeader(&f.Def.Header, ev, "", "")
	f.Def.Kind = ev.LSKind
	f.Def.Storage = ev.Storage
	f.Def.File = fileSelfId(owner)

	if ev.IsDefinition {
		f.Def.Spell = a.newUse(ev.SpellRange, ev.Container)
		f.Def.Extent = a.newUse(ev.ExtentRange, ev.Container)
	} else {
		decl := entity.Declaration{Spell: a.newUse(ev.SpellRange, ev.Container)}
		for _, pr := range ev.ParamSpellings {
			decl.ParamSpell = append(decl.ParamSpell, a.newUse(pr, ev.Container))
		}
		f.Def.AddDeclaration(decl)
	}

	if ev.DeclaringTypeUSR != "" {
		declTypeId := owner.ToTypeId(usr.Of(ev.DeclaringTypeUSR))
		f.Def.DeclaringType = declTypeId
		if declType, err := owner.Type(declTypeId); err == nil {
			declType.Def.Funcs = appendUniqueFunc(declType.Def.Funcs, id)
		}
	}

	for _, baseUSR := range ev.Bases {
		baseId := owner.ToFuncId(usr.Of(baseUSR))
		f.Def.Bases = appendUniqueFunc(f.Def.Bases, baseId)

		base, err := owner.Func(baseId)
		if err == nil {
			base.Def.Derived = appendUniqueFunc(base.Def.Derived, id)
		}
	}

	if parent, ok := a.resolveContainer(ev.Container); ok && parent.kind == entity.SymbolKindType {
		parentType, err := a.typeIn(parent)
		if err == nil {
			parentType.Def.Funcs = appendUniqueFunc(parentType.Def.Funcs, id)
		}
	}

	a.registerContainer(declKeyOf(ev), a.fileIdFor(owner), ids.Widen(id), entity.SymbolKindFunc)
}

func (a *Adapter) declareVar(owner *indexfile.IndexFile, u usr.USR, ev DeclEvent) {
	id := owner.ToVarId(u)
	v, err := owner.Var(id)
	if err != nil {
		logSkip("declareVar: %v", err)
		return
	}

	a.fillHeader(&v.Def.Header, ev, "", "")
	v.Def.Kind = ev.LSKind
	v.Def.Storage = ev.Storage
	v.Def.File = fileSelfId(owner)

	if ev.IsDefinition {
		v.Def.Spell = a.newUse(ev.SpellRange, ev.Container)
		v.Def.Extent = a.newUse(ev.ExtentRange, ev.Container)
	} else {
		v.Def.AddDeclaration(a.newUse(ev.SpellRange, ev.Container))
	}

	if ev.TypeUSR != "" {
		typeId := owner.ToTypeId(usr.Of(ev.TypeUSR))
		v.Def.Type = typeId
		if t, err := owner.Type(typeId); err == nil {
			t.Def.Instances = appendUniqueVar(t.Def.Instances, id)
		}
	}

	if parent, ok := a.resolveContainer(ev.Container); ok && parent.kind == entity.SymbolKindType {
		parentType, err := a.typeIn(parent)
		if err == nil {
			parentType.Def.Vars = appendUniqueVar(parentType.Def.Vars, id)
		}
	} else if parent, ok := a.resolveContainer(ev.Container); ok && parent.kind == entity.SymbolKindFunc {
		parentFunc, err := a.funcIn(parent)
		if err == nil {
			parentFunc.Def.Vars = appendUniqueVar(parentFunc.Def.Vars, id)
		}
	}

	a.registerContainer(declKeyOf(ev), a.fileIdFor(owner), ids.Widen(id), entity.SymbolKindVar)
}

func appendUniqueType(s []ids.Id[ids.Type], id ids.Id[ids.Type]) []ids.Id[ids.Type] {
	for _, e := range s {
		if e == id {
			return s
		}
	}
	return append(s, id)
}

func appendUniqueFunc(s []ids.Id[ids.Func], id ids.Id[ids.Func]) []ids.Id[ids.Func] {
	for _, e := range s {
		if e == id {
			return s
		}
	}
	return append(s, id)
}

func appendUniqueVar(s []ids.Id[ids.Var], id ids.Id[ids.Var]) []ids.Id[ids.Var] {
	for _, e := range s {
		if e == id {
			return s
		}
	}
	return append(s, id)
}
