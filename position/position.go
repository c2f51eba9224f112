// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package position defines the source coordinate types shared across the
// entity model: Position and Range.
package position

import "fmt"

// Position is a 1-based line/column pair. Line and Column both start at 1;
// the zero value is not a valid position within a file.
type Position struct {
	Line   int32
	Column int32
}

// New returns a Position at the given 1-based line and column.
func New(line, column int32) Position {
	return Position{Line: line, Column: column}
}

// Less reports whether p sorts strictly before o, lexicographically on
// (Line, Column).
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

// Equal reports whether p and o denote the same line and column.
func (p Position) Equal(o Position) bool {
	return p.Line == o.Line && p.Column == o.Column
}

// LessEqual reports whether p sorts at or before o.
func (p Position) LessEqual(o Position) bool {
	return p.Less(o) || p.Equal(o)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Packed returns line and column packed into a single uint64, line in the
// high 32 bits, for compact storage.
func (p Position) Packed() uint64 {
	return uint64(uint32(p.Line))<<32 | uint64(uint32(p.Column))
}

// Unpack reverses Packed.
func Unpack(v uint64) Position {
	return Position{
		Line:   int32(uint32(v >> 32)),
		Column: int32(uint32(v)),
	}
}

// Range is a half-open [Begin, End) span of positions within a single
// file; the file itself is not recorded here since Range is always
// interpreted relative to an owning entity or Use.
type Range struct {
	Begin Position
	End   Position
}

// NewRange returns a Range spanning [begin, end).
func NewRange(begin, end Position) Range {
	return Range{Begin: begin, End: end}
}

// Contains reports whether o lies entirely within r: r.Begin <= o.Begin
// and o.End <= r.End. Used to check that a spell range sits within its
// extent range.
func (r Range) Contains(o Range) bool {
	return r.Begin.LessEqual(o.Begin) && o.End.LessEqual(r.End)
}

// ContainsPosition reports whether p lies in [r.Begin, r.End).
func (r Range) ContainsPosition(p Position) bool {
	return r.Begin.LessEqual(p) && p.Less(r.End)
}

// Valid reports whether the range begins at a real 1-based position and is
// well-ordered (Begin at or before End). An empty range [p, p) is valid;
// the zero Range, which marks an unset spell or extent, is not.
func (r Range) Valid() bool {
	return r.Begin.Line >= 1 && r.Begin.Column >= 1 && r.Begin.LessEqual(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Begin, r.End)
}
