// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/position"
)

func useAt(beginLine, beginCol, endLine, endCol int, role entity.Role) entity.Use {
	return entity.Use{Reference: entity.Reference{
		Range: position.NewRange(position.New(beginLine, beginCol), position.New(endLine, endCol)),
		Kind:  entity.SymbolKindFunc,
		Role:  role,
	}}
}

func TestHeaderQualifiedAndShortName(t *testing.T) {
	h := entity.Header{
		DetailedName:    "foo::Bar::method(int)",
		QualNameOffset:  5,
		ShortNameOffset: 10,
		ShortNameSize:   6,
	}

	assert.Equal(t, "Bar::method", h.QualifiedName())
	assert.Equal(t, "method", h.ShortName())
}

func TestHeaderOutOfRangeOffsetsReturnEmpty(t *testing.T) {
	h := entity.Header{
		DetailedName:    "short",
		QualNameOffset:  0,
		ShortNameOffset: 10,
		ShortNameSize:   20,
	}

	assert.Equal(t, "", h.QualifiedName())
	assert.Equal(t, "", h.ShortName())
}

func TestReferenceLessOrdersByRangeThenRoleThenId(t *testing.T) {
	a := useAt(1, 1, 1, 5, entity.RoleReference).Reference
	b := useAt(1, 1, 1, 5, entity.RoleDefinition).Reference
	c := useAt(2, 1, 2, 5, entity.RoleReference).Reference

	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
	// same range, RoleDefinition (2) < RoleReference (4)
	assert.True(t, b.Less(a))
}

func TestReferenceKeyDedupesIdenticalOccurrences(t *testing.T) {
	a := useAt(3, 1, 3, 4, entity.RoleReference).Reference
	b := useAt(3, 1, 3, 4, entity.RoleReference).Reference
	c := useAt(3, 1, 3, 5, entity.RoleReference).Reference

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestRoleHas(t *testing.T) {
	r := entity.RoleReference | entity.RoleRead
	assert.True(t, r.Has(entity.RoleReference))
	assert.True(t, r.Has(entity.RoleReference|entity.RoleRead))
	assert.False(t, r.Has(entity.RoleWrite))
}

func TestTypeDefAddUseDedupesAndSorts(t *testing.T) {
	var def entity.TypeDef

	u1 := useAt(5, 1, 5, 4, entity.RoleReference)
	u2 := useAt(2, 1, 2, 4, entity.RoleReference)
	dup := useAt(5, 1, 5, 4, entity.RoleReference)

	def.AddUse(u1)
	def.AddUse(u2)
	def.AddUse(dup)

	if assert.Len(t, def.Uses, 2) {
		assert.True(t, def.Uses[0].Range.Begin.Less(def.Uses[1].Range.Begin))
	}
}

func TestTypeDefAddDeclarationDedupes(t *testing.T) {
	var def entity.TypeDef

	decl := useAt(1, 1, 1, 10, entity.RoleDeclaration)
	def.AddDeclaration(decl)
	def.AddDeclaration(decl)

	assert.Len(t, def.Declarations, 1)
}

func TestFuncDefAddDeclarationKeyedBySpellRange(t *testing.T) {
	var def entity.FuncDef

	spellA := useAt(1, 1, 1, 4, entity.RoleDeclaration)
	spellB := useAt(2, 1, 2, 4, entity.RoleDeclaration)

	def.AddDeclaration(entity.Declaration{Spell: spellA})
	def.AddDeclaration(entity.Declaration{Spell: spellA})
	def.AddDeclaration(entity.Declaration{Spell: spellB})

	assert.Len(t, def.Declarations, 2)
}

func TestFuncDefAddCalleeDedupesByRangeAndId(t *testing.T) {
	var def entity.FuncDef

	ref := entity.SymbolRef{Reference: useAt(1, 1, 1, 4, entity.RoleCall).Reference}
	ref.Id = ids.Widen(ids.New[ids.Func](7))

	def.AddCallee(ref)
	def.AddCallee(ref)

	assert.Len(t, def.Callees, 1)
}

func TestIndexTypeHasAlias(t *testing.T) {
	ty := entity.IndexType{Def: entity.TypeDef{AliasOf: ids.Nil[ids.Type]()}}
	assert.False(t, ty.HasAlias())

	ty.Def.AliasOf = ids.New[ids.Type](3)
	assert.True(t, ty.HasAlias())
}

func TestIndexFuncIsMethod(t *testing.T) {
	f := entity.IndexFunc{Def: entity.FuncDef{DeclaringType: ids.Nil[ids.Type]()}}
	assert.False(t, f.IsMethod())

	f.Def.DeclaringType = ids.New[ids.Type](1)
	assert.True(t, f.IsMethod())
}

func TestIndexVarIsLocal(t *testing.T) {
	v := entity.IndexVar{Def: entity.VarDef{Kind: entity.LSVariable}}
	assert.True(t, v.IsLocal())

	v.Def.Kind = entity.LSField
	assert.False(t, v.IsLocal())
}
