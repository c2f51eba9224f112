// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexer implements the indexing callback adapter: it projects
// the frontend's event stream onto the entity model of package entity,
// allocating and filling in IndexFiles as it goes.
package indexer

import (
	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/position"
)

// Location names where an event occurred: an absolute canonical path plus
// the frontend's line/column.
type Location struct {
	Path   string
	Offset position.Position
}

// ContainerRef names a declaration event's lexical container — a
// namespace, class, or enclosing function — by a stable key the frontend
// can reproduce for the same cursor across events (its USR string, or a
// position-derived key for anonymous containers).
type ContainerRef struct {
	Key  string
	Kind entity.SymbolKind
	// NSKind further distinguishes containers for qualified-name
	// synthesis (namespace vs inline namespace vs class vs function).
	NSKind NSContainerKind
	Name   string // unqualified name; "" for an anonymous namespace
}

// NSContainerKind mirrors namespace.ContainerKind in event data; the
// adapter converts it (see toNSKind) when it builds the namespace.Container
// chain for qualified-name synthesis.
type NSContainerKind uint8

const (
	NSNone NSContainerKind = iota
	NSNamespace
	NSInlineNamespace
	NSClass
	NSFunction
)

// DeclEvent is a declaration event: a new or repeated sighting of an
// entity's declaration or definition.
type DeclEvent struct {
	Loc       Location
	USR       string
	Spelling  string
	Kind      entity.SymbolKind
	LSKind    entity.LSSymbolKind
	Storage   entity.StorageClass
	IsDefinition bool
	Role      entity.Role

	// SpellRange is the name token's range; ExtentRange is the whole
	// declaration's range.
	SpellRange  position.Range
	ExtentRange position.Range

	// Container is this declaration's lexical parent, nil at file scope.
	Container *ContainerRef
	// Chain is the full outermost-to-innermost enclosing chain, used for
	// qualified-name synthesis.
	Chain []ContainerRef

	Hover    string
	Comments string

	// Bases/Overrides name the USRs of direct parent types or overridden
	// methods reported alongside this declaration.
	Bases []string

	// AliasOfUSR is non-empty iff this declares a typedef/using alias.
	AliasOfUSR string

	// TypeUSR is the USR of a variable's declared type, if known.
	TypeUSR string

	// DeclaringTypeUSR is non-empty iff this function is a method.
	DeclaringTypeUSR string

	// ParamSpellings are parameter-name spelling ranges, for Declaration
	// records on functions.
	ParamSpellings []position.Range
}

// RefEvent is an entity-reference event: a use of an already-declared
// entity at some location, possibly a call.
type RefEvent struct {
	Loc Location

	// TargetUSR is the USR of the referenced entity.
	TargetUSR  string
	TargetKind entity.SymbolKind

	Range position.Range
	Role  entity.Role

	// Container is the lexical parent the Use should be tagged with.
	Container *ContainerRef

	// IsCall marks a call reference, which additionally appends a
	// SymbolRef to the parent function's callees.
	IsCall bool
}

// SkippedEvent is a preprocessor elision.
type SkippedEvent struct {
	Path  string
	Range position.Range
}

// IncludeEvent is an #include directive.
type IncludeEvent struct {
	IncludingPath string
	Line          int
	ResolvedPath  string
}

// DiagnosticEvent mirrors one frontend diagnostic.
type DiagnosticEvent struct {
	Path     string
	Range    position.Range
	Severity string
	Message  string
}
