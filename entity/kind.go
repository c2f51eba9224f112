// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entity holds the data model: SymbolKind, LSSymbolKind,
// StorageClass, Role, References, and the three entity record kinds
// (Type, Func, Var), each keyed by an IdCache-local Id.
package entity

// SymbolKind is the coarse entity taxonomy the core's own id algebra is
// parameterized over.
type SymbolKind uint8

const (
	SymbolKindInvalid SymbolKind = iota
	SymbolKindFile
	SymbolKindType
	SymbolKindFunc
	SymbolKindVar
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolKindFile:
		return "File"
	case SymbolKindType:
		return "Type"
	case SymbolKindFunc:
		return "Func"
	case SymbolKindVar:
		return "Var"
	default:
		return "Invalid"
	}
}

// LSSymbolKind is the richer editor-facing taxonomy reported alongside an
// entity for presentation purposes (outline views, hover, go-to-symbol).
type LSSymbolKind uint8

const (
	LSUnknown LSSymbolKind = iota
	LSFile
	LSModule
	LSNamespace
	LSPackage
	LSClass
	LSMethod
	LSProperty
	LSField
	LSConstructor
	LSEnum
	LSInterface
	LSFunction
	LSVariable
	LSConstant
	LSString
	LSStruct
	LSParameter
	LSTypeAlias
	LSMacro
	LSEnumMember
)

// StorageClass mirrors the C/C++ storage-class specifiers.
type StorageClass uint8

const (
	StorageClassInvalid StorageClass = iota
	StorageClassNone
	StorageClassExtern
	StorageClassStatic
	StorageClassPrivateExtern
	StorageClassAuto
	StorageClassRegister
)

// Role is a bitset describing what kind of usage an occurrence is.
type Role uint16

const (
	RoleNone        Role = 0
	RoleDeclaration Role = 1 << 0
	RoleDefinition  Role = 1 << 1
	RoleReference   Role = 1 << 2
	RoleRead        Role = 1 << 3
	RoleWrite       Role = 1 << 4
	RoleCall        Role = 1 << 5
	RoleDynamic     Role = 1 << 6
	RoleAddress     Role = 1 << 7
	RoleImplicit    Role = 1 << 8
)

// Has reports whether r includes every bit set in mask.
func (r Role) Has(mask Role) bool {
	return r&mask == mask
}
