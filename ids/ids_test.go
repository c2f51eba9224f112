// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ids_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccindex/ccindex/ids"
)

func TestNewAndValid(t *testing.T) {
	id := ids.New[ids.Type](3)
	assert.True(t, id.Valid())
	assert.Equal(t, uint32(3), id.Value)

	nilId := ids.Nil[ids.Type]()
	assert.False(t, nilId.Valid())
}

func TestLessAndEqual(t *testing.T) {
	a := ids.New[ids.Func](1)
	b := ids.New[ids.Func](2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestHashDerivesFromRawValue(t *testing.T) {
	a := ids.New[ids.Var](42)
	b := ids.New[ids.Var](42)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, uint64(42), a.Hash())
}

func TestWidenNarrowRoundTrip(t *testing.T) {
	typed := ids.New[ids.Type](7)
	void := ids.Widen(typed)
	back := ids.Narrow[ids.Type](void)
	assert.Equal(t, typed, back)
}
