// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usr implements the Universal Symbol Reference: a fixed-width
// hash of the frontend's unified symbol name, the only cross-TU
// identifier in the system.
package usr

import "github.com/ccindex/ccindex/internal/hashutil"

// USR is an opaque 64-bit hash. Collisions are treated as identity; the
// probability is accepted as negligible.
type USR uint64

// Invalid is the zero USR. The frontend never hands out an empty unified
// symbol name for a real entity, so 0 is safe to reserve.
const Invalid USR = 0

// Of hashes a frontend-provided unified symbol name into a USR.
func Of(unifiedSymbolName string) USR {
	return USR(hashutil.Sum64String(unifiedSymbolName))
}

// Valid reports whether u is not the zero/invalid sentinel.
func (u USR) Valid() bool {
	return u != Invalid
}

func (u USR) String() string {
	return hashutil.FormatHex(uint64(u))
}
