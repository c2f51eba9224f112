// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexfile

import (
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/usr"
)

// IdCacheSnapshot is the serializable shape of an IdCache: only the
// forward (USR -> Id) direction is persisted, since the reverse direction
// is rebuilt on load and the two must always agree.
type IdCacheSnapshot struct {
	TypeUsrToId map[uint64]uint32
	FuncUsrToId map[uint64]uint32
	VarUsrToId  map[uint64]uint32
}

// Snapshot exports c into its serializable form.
func (c *IdCache) Snapshot() IdCacheSnapshot {
	s := IdCacheSnapshot{
		TypeUsrToId: make(map[uint64]uint32, len(c.usrToType)),
		FuncUsrToId: make(map[uint64]uint32, len(c.usrToFunc)),
		VarUsrToId:  make(map[uint64]uint32, len(c.usrToVar)),
	}
	for u, id := range c.usrToType {
		s.TypeUsrToId[uint64(u)] = id.Value
	}
	for u, id := range c.usrToFunc {
		s.FuncUsrToId[uint64(u)] = id.Value
	}
	for u, id := range c.usrToVar {
		s.VarUsrToId[uint64(u)] = id.Value
	}
	return s
}

// IdCacheFromSnapshot rebuilds an IdCache from its serializable form,
// reconstructing both bijection directions.
func IdCacheFromSnapshot(s IdCacheSnapshot) *IdCache {
	c := NewIdCache()
	for u, v := range s.TypeUsrToId {
		c.InternType(usr.USR(u), ids.New[ids.Type](v))
	}
	for u, v := range s.FuncUsrToId {
		c.InternFunc(usr.USR(u), ids.New[ids.Func](v))
	}
	for u, v := range s.VarUsrToId {
		c.InternVar(usr.USR(u), ids.New[ids.Var](v))
	}
	return c
}
