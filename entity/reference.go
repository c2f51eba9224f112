// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/position"
)

// Reference is the shared shape of SymbolRef and Use: a range, a
// kind-erased id, the entity kind that id denotes, and a role bitset.
type Reference struct {
	Range position.Range
	Id    ids.Void
	Kind  SymbolKind
	Role  Role
}

// SymbolRef is a Reference whose Id/Kind denote the *referenced* entity.
// Used for callee edges and any occurrence where the symbol at the range
// is what matters.
type SymbolRef struct {
	Reference
}

// Use is a Reference whose Id/Kind denote the *lexical parent* (the
// enclosing function or type). Used whenever the adapter needs to record
// "where this occurrence lives". Inside an IndexFile the owning file is
// implicit; the query layer (out of scope here) adds it back when it
// merges Uses across files.
type Use struct {
	Reference
}

// Less orders References by range, with role then id as stable
// tie-breaks, giving a deterministic total order independent of
// insertion order.
func (r Reference) Less(o Reference) bool {
	if !r.Range.Begin.Equal(o.Range.Begin) {
		return r.Range.Begin.Less(o.Range.Begin)
	}
	if !r.Range.End.Equal(o.Range.End) {
		return r.Range.End.Less(o.Range.End)
	}
	if r.Role != o.Role {
		return r.Role < o.Role
	}
	return r.Id.Less(o.Id)
}

// Key returns a value suitable for deduplicating References at the same
// range with the same role and id: duplicate declaration events are
// deduplicated on insert rather than accumulating repeats.
func (r Reference) Key() [4]uint64 {
	return [4]uint64{
		r.Range.Begin.Packed(),
		r.Range.End.Packed(),
		uint64(r.Role)<<8 | uint64(r.Kind),
		r.Id.Hash(),
	}
}
