// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashutil collects hashing helpers used across ccindex, notably
// the 64-bit USR hash.
package hashutil

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// NewHashString returns the 64-bit hash of s as 8 big-endian bytes,
// suitable as a cache key for a filename.
func NewHashString(s string) [8]byte {
	sum := xxhash.Sum64String(s)
	var out [8]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(sum >> (8 * (7 - i)))
	}
	return out
}

// Sum64String hashes s into a 64-bit value. Used directly by usr.Of,
// where collisions are accepted as identity.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// FormatHex renders a 64-bit hash as a lowercase hex string without
// leading zeros (255 renders as "ff"), convenient for log lines and cache
// filenames.
func FormatHex(v uint64) string {
	return strconv.FormatUint(v, 16)
}
