// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"github.com/go-clang/v3.9/clang"

	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/internal/log"
	"github.com/ccindex/ccindex/internal/pathutil"
	"github.com/ccindex/ccindex/position"
	"github.com/ccindex/ccindex/tu"
)

// Drive walks t's cursor tree, translating each recognized cursor kind
// into adapter events. It is the concrete realization of the indexing
// callback adapter for the libclang frontend; a different frontend
// binding would supply its own Drive.
func Drive(a *Adapter, t *tu.TU) {
	a.StartedTranslationUnit(t.Filepath)

	root := t.Cursor()
	root.Visit(func(cursor, parent clang.Cursor) clang.ChildVisitResult {
		if cursor.IsNull() {
			return clang.ChildVisit_Continue
		}

		loc, ok := locationOf(cursor)
		if !ok {
			// System headers and builtin pseudo-locations carry no usable
			// file name; only events with a resolvable source location are
			// attributed to a file.
			return clang.ChildVisit_Continue
		}

		switch cursor.Kind() {
		case clang.Cursor_Namespace, clang.Cursor_ClassDecl, clang.Cursor_StructDecl, clang.Cursor_ClassTemplate, clang.Cursor_ClassTemplatePartialSpecialization:
			a.Declaration(typeDeclEvent(cursor, loc, entity.LSClass))
			return clang.ChildVisit_Recurse

		case clang.Cursor_EnumDecl:
			a.Declaration(typeDeclEvent(cursor, loc, entity.LSEnum))
			return clang.ChildVisit_Recurse

		case clang.Cursor_TypedefDecl, clang.Cursor_TypeAliasDecl:
			a.Declaration(aliasDeclEvent(cursor, loc))
			return clang.ChildVisit_Recurse

		case clang.Cursor_FunctionDecl, clang.Cursor_CXXMethod, clang.Cursor_Constructor, clang.Cursor_Destructor, clang.Cursor_FunctionTemplate, clang.Cursor_ConversionFunction:
			a.Declaration(funcDeclEvent(cursor, loc))
			return clang.ChildVisit_Recurse

		case clang.Cursor_FieldDecl, clang.Cursor_VarDecl, clang.Cursor_ParmDecl, clang.Cursor_EnumConstantDecl:
			if cursor.Kind() == clang.Cursor_ParmDecl && cursor.Spelling() == "" {
				// Unnamed parameters carry no USR worth indexing.
				return clang.ChildVisit_Recurse
			}
			a.Declaration(varDeclEvent(cursor, loc))
			return clang.ChildVisit_Recurse

		case clang.Cursor_CallExpr:
			a.EntityReference(refEvent(cursor, loc, true))

		case clang.Cursor_DeclRefExpr, clang.Cursor_TypeRef, clang.Cursor_MemberRefExpr, clang.Cursor_MacroExpansion:
			a.EntityReference(refEvent(cursor, loc, false))

		case clang.Cursor_InclusionDirective:
			handleInclude(a, cursor, loc)

		case clang.Cursor_MacroDefinition:
			a.Declaration(macroDeclEvent(cursor, loc))

		default:
			log.Debugf("indexer: unhandled cursor kind %v at %s", cursor.Kind(), loc.Path)
		}

		return clang.ChildVisit_Recurse
	})

	for _, d := range t.Diagnostics() {
		a.Diagnostic(diagnosticEvent(t.Filepath, d))
	}
}

func locationOf(cursor clang.Cursor) (Location, bool) {
	file, line, col, _ := cursor.Location().FileLocation()
	name := file.Name()
	if name == "" || name == "." {
		return Location{}, false
	}
	canonical, err := pathutil.Canonical(name)
	if err != nil {
		canonical = name
	}
	return Location{Path: canonical, Offset: position.New(int32(line), int32(col))}, true
}

func rangeOf(r clang.SourceRange) position.Range {
	bLine, bCol, _ := r.Start().FileLocation3()
	eLine, eCol, _ := r.End().FileLocation3()
	return position.NewRange(
		position.New(int32(bLine), int32(bCol)),
		position.New(int32(eLine), int32(eCol)),
	)
}

func containerChainOf(cursor clang.Cursor) (*ContainerRef, []ContainerRef) {
	var chain []ContainerRef
	var immediate *ContainerRef

	c := cursor.SemanticParent()
	var stack []ContainerRef
	for !c.IsNull() && c.Kind() != clang.Cursor_TranslationUnit {
		ref, ok := containerRefOf(c)
		if !ok {
			break
		}
		stack = append(stack, ref)
		c = c.SemanticParent()
	}
	for i := len(stack) - 1; i >= 0; i-- {
		chain = append(chain, stack[i])
	}
	if len(stack) > 0 {
		immediate = &stack[0]
	}
	return immediate, chain
}

func containerRefOf(c clang.Cursor) (ContainerRef, bool) {
	switch c.Kind() {
	case clang.Cursor_Namespace:
		kind := NSNamespace
		if c.IsInlineNamespace() {
			kind = NSInlineNamespace
		}
		return ContainerRef{Key: c.USR(), Kind: entity.SymbolKindType, NSKind: kind, Name: c.Spelling()}, true
	case clang.Cursor_ClassDecl, clang.Cursor_StructDecl, clang.Cursor_ClassTemplate, clang.Cursor_ClassTemplatePartialSpecialization:
		return ContainerRef{Key: c.USR(), Kind: entity.SymbolKindType, NSKind: NSClass, Name: c.Spelling()}, true
	case clang.Cursor_FunctionDecl, clang.Cursor_CXXMethod, clang.Cursor_Constructor, clang.Cursor_Destructor:
		return ContainerRef{Key: c.USR(), Kind: entity.SymbolKindFunc, NSKind: NSFunction, Name: c.Spelling()}, true
	default:
		return ContainerRef{}, false
	}
}

func typeDeclEvent(cursor clang.Cursor, loc Location, lsKind entity.LSSymbolKind) DeclEvent {
	container, chain := containerChainOf(cursor)
	ev := DeclEvent{
		Loc:         loc,
		USR:         cursor.USR(),
		Spelling:    cursor.Spelling(),
		Kind:        entity.SymbolKindType,
		LSKind:      lsKind,
		Role:        roleFor(cursor),
		SpellRange:  rangeOf(cursor.Extent()),
		ExtentRange: rangeOf(cursor.Extent()),
		Container:   container,
		Chain:       chain,
	}

	def := cursor.Definition()
	ev.IsDefinition = !def.IsNull() && def.Equal(cursor)
	if !def.IsNull() {
		ev.ExtentRange = rangeOf(def.Extent())
	}

	for i := uint32(0); ; i++ {
		base := cursor.CXXBaseSpecifierAtIndex(uint32(i))
		if base.IsNull() {
			break
		}
		baseDecl := base.TypeDeclaration()
		if !baseDecl.IsNull() {
			ev.Bases = append(ev.Bases, baseDecl.USR())
		}
	}

	return ev
}

func aliasDeclEvent(cursor clang.Cursor, loc Location) DeclEvent {
	container, chain := containerChainOf(cursor)
	ev := DeclEvent{
		Loc:         loc,
		USR:         cursor.USR(),
		Spelling:    cursor.Spelling(),
		Kind:        entity.SymbolKindType,
		LSKind:      entity.LSTypeAlias,
		Role:        entity.RoleDeclaration | entity.RoleDefinition,
		IsDefinition: true,
		SpellRange:  rangeOf(cursor.Extent()),
		ExtentRange: rangeOf(cursor.Extent()),
		Container:   container,
		Chain:       chain,
	}

	underlying := cursor.TypedefDeclUnderlyingType()
	decl := underlying.Declaration()
	if !decl.IsNull() {
		ev.AliasOfUSR = decl.USR()
	}
	return ev
}

func funcDeclEvent(cursor clang.Cursor, loc Location) DeclEvent {
	container, chain := containerChainOf(cursor)
	ev := DeclEvent{
		Loc:         loc,
		USR:         cursor.USR(),
		Spelling:    cursor.Spelling(),
		Kind:        entity.SymbolKindFunc,
		LSKind:      lsKindForFunc(cursor),
		Storage:     storageOf(cursor),
		Role:        roleFor(cursor),
		SpellRange:  rangeOf(cursor.Extent()),
		ExtentRange: rangeOf(cursor.Extent()),
		Container:   container,
		Chain:       chain,
	}

	def := cursor.Definition()
	ev.IsDefinition = !def.IsNull() && def.Equal(cursor)
	if !def.IsNull() {
		ev.ExtentRange = rangeOf(def.Extent())
	}

	if semParent := cursor.SemanticParent(); !semParent.IsNull() {
		switch semParent.Kind() {
		case clang.Cursor_ClassDecl, clang.Cursor_StructDecl, clang.Cursor_ClassTemplate:
			ev.DeclaringTypeUSR = semParent.USR()
		}
	}

	for i := uint32(0); i < uint32(cursor.NumArguments()); i++ {
		arg := cursor.Argument(int32(i))
		if arg.IsNull() || arg.Spelling() == "" {
			continue
		}
		ev.ParamSpellings = append(ev.ParamSpellings, rangeOf(arg.Extent()))
	}

	for _, overridden := range cursor.OverriddenCursors() {
		if !overridden.IsNull() {
			ev.Bases = append(ev.Bases, overridden.USR())
		}
	}

	return ev
}

func varDeclEvent(cursor clang.Cursor, loc Location) DeclEvent {
	container, chain := containerChainOf(cursor)
	ev := DeclEvent{
		Loc:         loc,
		USR:         cursor.USR(),
		Spelling:    cursor.Spelling(),
		Kind:        entity.SymbolKindVar,
		LSKind:      lsKindForVar(cursor),
		Storage:     storageOf(cursor),
		Role:        roleFor(cursor),
		SpellRange:  rangeOf(cursor.Extent()),
		ExtentRange: rangeOf(cursor.Extent()),
		Container:   container,
		Chain:       chain,
	}

	def := cursor.Definition()
	ev.IsDefinition = def.IsNull() || def.Equal(cursor)
	if !def.IsNull() {
		ev.ExtentRange = rangeOf(def.Extent())
	}

	ty := cursor.Type()
	if decl := ty.Declaration(); !decl.IsNull() {
		ev.TypeUSR = decl.USR()
	}

	return ev
}

func macroDeclEvent(cursor clang.Cursor, loc Location) DeclEvent {
	return DeclEvent{
		Loc:          loc,
		USR:          cursor.USR(),
		Spelling:     cursor.Spelling(),
		Kind:         entity.SymbolKindVar,
		LSKind:       entity.LSMacro,
		Role:         entity.RoleDeclaration | entity.RoleDefinition,
		IsDefinition: true,
		SpellRange:   rangeOf(cursor.Extent()),
		ExtentRange:  rangeOf(cursor.Extent()),
	}
}

func refEvent(cursor clang.Cursor, loc Location, isCall bool) RefEvent {
	container, _ := containerChainOf(cursor)
	ref := cursor.Referenced()
	if ref.IsNull() {
		return RefEvent{}
	}

	role := entity.RoleReference
	if isCall {
		role |= entity.RoleCall
	}
	if cursor.Kind() == clang.Cursor_MacroExpansion {
		role |= entity.RoleImplicit
	}

	return RefEvent{
		Loc:        loc,
		TargetUSR:  ref.USR(),
		TargetKind: kindOf(ref),
		Range:      rangeOf(cursor.Extent()),
		Role:       role,
		Container:  container,
		IsCall:     isCall,
	}
}

func handleInclude(a *Adapter, cursor clang.Cursor, loc Location) {
	incFile := cursor.IncludedFile()
	name := incFile.Name()
	if name == "" {
		return
	}
	resolved, err := pathutil.Canonical(name)
	if err != nil {
		resolved = name
	}
	a.PPIncludedFile(IncludeEvent{
		IncludingPath: loc.Path,
		Line:          int(loc.Offset.Line),
		ResolvedPath:  resolved,
	})
}

func diagnosticEvent(path string, d clang.Diagnostic) DiagnosticEvent {
	return DiagnosticEvent{
		Path:     path,
		Range:    rangeOf(d.Range(0)),
		Severity: d.Severity().Spelling(),
		Message:  d.Spelling(),
	}
}

func kindOf(cursor clang.Cursor) entity.SymbolKind {
	switch cursor.Kind() {
	case clang.Cursor_Namespace, clang.Cursor_ClassDecl, clang.Cursor_StructDecl, clang.Cursor_EnumDecl, clang.Cursor_ClassTemplate, clang.Cursor_TypedefDecl, clang.Cursor_TypeAliasDecl:
		return entity.SymbolKindType
	case clang.Cursor_FunctionDecl, clang.Cursor_CXXMethod, clang.Cursor_Constructor, clang.Cursor_Destructor, clang.Cursor_FunctionTemplate:
		return entity.SymbolKindFunc
	case clang.Cursor_FieldDecl, clang.Cursor_VarDecl, clang.Cursor_ParmDecl, clang.Cursor_EnumConstantDecl, clang.Cursor_MacroDefinition:
		return entity.SymbolKindVar
	default:
		return entity.SymbolKindInvalid
	}
}

func lsKindForFunc(cursor clang.Cursor) entity.LSSymbolKind {
	switch cursor.Kind() {
	case clang.Cursor_Constructor:
		return entity.LSConstructor
	case clang.Cursor_CXXMethod:
		return entity.LSMethod
	default:
		return entity.LSFunction
	}
}

func lsKindForVar(cursor clang.Cursor) entity.LSSymbolKind {
	switch cursor.Kind() {
	case clang.Cursor_FieldDecl:
		return entity.LSField
	case clang.Cursor_ParmDecl:
		return entity.LSParameter
	case clang.Cursor_EnumConstantDecl:
		return entity.LSEnumMember
	default:
		return entity.LSVariable
	}
}

func storageOf(cursor clang.Cursor) entity.StorageClass {
	switch cursor.StorageClass() {
	case clang.SC_Extern:
		return entity.StorageClassExtern
	case clang.SC_Static:
		return entity.StorageClassStatic
	case clang.SC_PrivateExtern:
		return entity.StorageClassPrivateExtern
	case clang.SC_Auto:
		return entity.StorageClassAuto
	case clang.SC_Register:
		return entity.StorageClassRegister
	case clang.SC_None:
		return entity.StorageClassNone
	default:
		return entity.StorageClassInvalid
	}
}

func roleFor(cursor clang.Cursor) entity.Role {
	role := entity.RoleDeclaration
	if cursor.IsImplicit() {
		role |= entity.RoleImplicit
	}
	return role
}
