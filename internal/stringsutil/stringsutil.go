// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stringsutil collects small string-slice helpers used across ccindex.
package stringsutil

import "strings"

// IndexContainsSlice returns the index of the first element of ss that
// contains sub, or -1 if none does.
func IndexContainsSlice(ss []string, sub string) int {
	for i, s := range ss {
		if strings.Contains(s, sub) {
			return i
		}
	}
	return -1
}

// HasAnyPrefix reports whether s has any of the given prefixes.
func HasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
