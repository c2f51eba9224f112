// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/ccindex/ccindex/ids"
)

// Header is the triplet of name strings and shared metadata common to
// IndexType, IndexFunc, and IndexVar. It is composed into each record
// rather than used as a base class (design note: "Template-like record
// reuse ... is achieved by composition, not inheritance").
type Header struct {
	// DetailedName is the fully-qualified declaration string, e.g.
	// `namespace ns::Class::method(int, char*) const`.
	DetailedName string
	// QualNameOffset, ShortNameOffset, ShortNameSize carve DetailedName
	// into its qualified- and short-name substrings.
	QualNameOffset  uint16
	ShortNameOffset uint16
	ShortNameSize   uint16

	Hover    string
	Comments string

	// Spell is the name token's own Use; Extent is the whole
	// declaration's Use. Both are zero until a definition (or, for
	// declaration-only entities, the first declaration) is seen.
	Spell  Use
	Extent Use

	File ids.Id[ids.File]
}

// QualifiedName returns the qualified-name substring of DetailedName
//: DetailedName[QualNameOffset : ShortNameOffset+ShortNameSize].
func (h *Header) QualifiedName() string {
	end := int(h.ShortNameOffset) + int(h.ShortNameSize)
	if end > len(h.DetailedName) || int(h.QualNameOffset) > end {
		return ""
	}
	return h.DetailedName[h.QualNameOffset:end]
}

// ShortName returns the short-name substring of DetailedName:
// DetailedName[ShortNameOffset : ShortNameOffset+ShortNameSize].
func (h *Header) ShortName() string {
	end := int(h.ShortNameOffset) + int(h.ShortNameSize)
	if end > len(h.DetailedName) || int(h.ShortNameOffset) > end {
		return ""
	}
	return h.DetailedName[h.ShortNameOffset:end]
}
