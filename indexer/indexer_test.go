// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/fileconsumer"
	"github.com/ccindex/ccindex/indexer"
	"github.com/ccindex/ccindex/position"
)

func rangeAt(line1, col1, line2, col2 int32) position.Range {
	return position.NewRange(position.New(line1, col1), position.New(line2, col2))
}

func TestDeclarationOfClassDefinition(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", []string{"-std=c++17"})

	a.Declaration(indexer.DeclEvent{
		Loc:          indexer.Location{Path: "/a.cc", Offset: position.New(1, 1)},
		USR:          "c:@S@Foo",
		Spelling:     "Foo",
		Kind:         entity.SymbolKindType,
		LSKind:       entity.LSClass,
		IsDefinition: true,
		SpellRange:   rangeAt(1, 7, 1, 10),
		ExtentRange:  rangeAt(1, 1, 3, 2),
	})

	files := a.ClaimedFiles()
	require.Len(t, files, 1)
	require.Len(t, files[0].Types, 1)

	ty := files[0].Types[0]
	assert.Equal(t, "Foo", ty.Def.ShortName())
	assert.True(t, ty.Def.Spell.Range.Valid())
	assert.Empty(t, ty.Def.Declarations)
}

func TestDeclarationForwardDeclRecordsDeclarationNotDefinition(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", nil)

	a.Declaration(indexer.DeclEvent{
		Loc:          indexer.Location{Path: "/a.cc"},
		USR:          "c:@S@Foo",
		Spelling:     "Foo",
		Kind:         entity.SymbolKindType,
		LSKind:       entity.LSClass,
		IsDefinition: false,
		SpellRange:   rangeAt(1, 7, 1, 10),
	})

	files := a.ClaimedFiles()
	require.Len(t, files, 1)
	ty := files[0].Types[0]

	assert.False(t, ty.Def.Spell.Range.Valid())
	assert.Len(t, ty.Def.Declarations, 1)
}

func TestDeclarationSkipsEmptyUSR(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", nil)

	a.Declaration(indexer.DeclEvent{
		Loc:  indexer.Location{Path: "/a.cc"},
		USR:  "",
		Kind: entity.SymbolKindType,
	})

	files := a.ClaimedFiles()
	require.Len(t, files, 1)
	assert.Empty(t, files[0].Types)
}

func TestDeclarationNestedClassQualifiesUnderNamespace(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", nil)

	chain := []indexer.ContainerRef{
		{Key: "ns:foo", Kind: entity.SymbolKindInvalid, NSKind: indexer.NSNamespace, Name: "foo"},
	}

	a.Declaration(indexer.DeclEvent{
		Loc:          indexer.Location{Path: "/a.cc"},
		USR:          "c:@N@foo@S@Bar",
		Spelling:     "Bar",
		Kind:         entity.SymbolKindType,
		LSKind:       entity.LSClass,
		IsDefinition: true,
		SpellRange:   rangeAt(2, 1, 2, 4),
		ExtentRange:  rangeAt(2, 1, 4, 2),
		Chain:        chain,
	})

	files := a.ClaimedFiles()
	ty := files[0].Types[0]
	assert.Equal(t, "foo::Bar", ty.Def.DetailedName)
	// The qualified-name span starts after the pure-namespace prefix.
	assert.Equal(t, "Bar", ty.Def.QualifiedName())
	assert.Equal(t, "Bar", ty.Def.ShortName())
}

func TestDeclareFuncAsMethodRegistersUnderDeclaringType(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", nil)

	a.Declaration(indexer.DeclEvent{
		Loc:          indexer.Location{Path: "/a.cc"},
		USR:          "c:@S@Foo",
		Spelling:     "Foo",
		Kind:         entity.SymbolKindType,
		LSKind:       entity.LSClass,
		IsDefinition: true,
		SpellRange:   rangeAt(1, 7, 1, 10),
		ExtentRange:  rangeAt(1, 1, 5, 2),
	})

	a.Declaration(indexer.DeclEvent{
		Loc:              indexer.Location{Path: "/a.cc"},
		USR:              "c:@S@Foo@F@bar#",
		Spelling:         "bar",
		Kind:             entity.SymbolKindFunc,
		LSKind:           entity.LSMethod,
		IsDefinition:     true,
		SpellRange:       rangeAt(2, 5, 2, 8),
		ExtentRange:      rangeAt(2, 1, 2, 20),
		DeclaringTypeUSR: "c:@S@Foo",
	})

	files := a.ClaimedFiles()
	require.Len(t, files, 1)
	f := files[0]
	require.Len(t, f.Funcs, 1)
	require.Len(t, f.Types, 1)

	assert.True(t, f.Funcs[0].IsMethod())
	require.Len(t, f.Types[0].Def.Funcs, 1)
	assert.Equal(t, f.Funcs[0].Id, f.Types[0].Def.Funcs[0])
}

func TestEntityReferenceAddsUseToTargetAndCalleeToParent(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", nil)

	a.Declaration(indexer.DeclEvent{
		Loc:          indexer.Location{Path: "/a.cc"},
		USR:          "c:@F@caller#",
		Spelling:     "caller",
		Kind:         entity.SymbolKindFunc,
		LSKind:       entity.LSFunction,
		IsDefinition: true,
		SpellRange:   rangeAt(1, 6, 1, 12),
		ExtentRange:  rangeAt(1, 1, 3, 2),
	})

	callerContainer := &indexer.ContainerRef{Key: "c:@F@caller#", Kind: entity.SymbolKindFunc}

	a.EntityReference(indexer.RefEvent{
		Loc:        indexer.Location{Path: "/a.cc"},
		TargetUSR:  "c:@F@callee#",
		TargetKind: entity.SymbolKindFunc,
		Range:      rangeAt(2, 3, 2, 9),
		Role:       entity.RoleCall,
		Container:  callerContainer,
		IsCall:     true,
	})

	files := a.ClaimedFiles()
	f := files[0]
	require.Len(t, f.Funcs, 2)

	var caller *entity.IndexFunc
	for i := range f.Funcs {
		if f.Funcs[i].Def.ShortName() == "caller" {
			caller = &f.Funcs[i]
		}
	}
	require.NotNil(t, caller)
	assert.Len(t, caller.Def.Callees, 1)
}

func TestPPIncludedFileAppendsInclude(t *testing.T) {
	shared := fileconsumer.New()
	a := indexer.New(shared, "/a.cc", nil)
	a.StartedTranslationUnit("/a.cc")

	a.PPIncludedFile(indexer.IncludeEvent{
		IncludingPath: "/a.cc",
		Line:          3,
		ResolvedPath:  "/b.h",
	})

	files := a.ClaimedFiles()
	require.Len(t, files, 1)
	assert.Len(t, files[0].Includes, 1)
	assert.Equal(t, "/b.h", files[0].Includes[0].ResolvedPath)
}
