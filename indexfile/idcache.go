// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexfile implements the per-file entity arena (IndexFile) and
// its USR<->Id bijection (IdCache).
package indexfile

import (
	"github.com/ccindex/ccindex/ids"
	"github.com/ccindex/ccindex/usr"
)

// IdCache is the bijection USR <-> Id local to one IndexFile. It is
// never shared across IndexFiles: an Id is only meaningful within the
// IndexFile that produced it.
type IdCache struct {
	usrToType map[usr.USR]ids.Id[ids.Type]
	typeToUsr map[ids.Id[ids.Type]]usr.USR

	usrToFunc map[usr.USR]ids.Id[ids.Func]
	funcToUsr map[ids.Id[ids.Func]]usr.USR

	usrToVar map[usr.USR]ids.Id[ids.Var]
	varToUsr map[ids.Id[ids.Var]]usr.USR
}

// NewIdCache returns an empty IdCache.
func NewIdCache() *IdCache {
	return &IdCache{
		usrToType: map[usr.USR]ids.Id[ids.Type]{},
		typeToUsr: map[ids.Id[ids.Type]]usr.USR{},
		usrToFunc: map[usr.USR]ids.Id[ids.Func]{},
		funcToUsr: map[ids.Id[ids.Func]]usr.USR{},
		usrToVar:  map[usr.USR]ids.Id[ids.Var]{},
		varToUsr:  map[ids.Id[ids.Var]]usr.USR{},
	}
}

// LookupType returns the id already interned for u, if any.
func (c *IdCache) LookupType(u usr.USR) (ids.Id[ids.Type], bool) {
	id, ok := c.usrToType[u]
	return id, ok
}

// InternType records the bijection for a freshly allocated type id.
func (c *IdCache) InternType(u usr.USR, id ids.Id[ids.Type]) {
	c.usrToType[u] = id
	c.typeToUsr[id] = u
}

// USROfType returns the USR a type id was interned under.
func (c *IdCache) USROfType(id ids.Id[ids.Type]) (usr.USR, bool) {
	u, ok := c.typeToUsr[id]
	return u, ok
}

func (c *IdCache) LookupFunc(u usr.USR) (ids.Id[ids.Func], bool) {
	id, ok := c.usrToFunc[u]
	return id, ok
}

func (c *IdCache) InternFunc(u usr.USR, id ids.Id[ids.Func]) {
	c.usrToFunc[u] = id
	c.funcToUsr[id] = u
}

func (c *IdCache) USROfFunc(id ids.Id[ids.Func]) (usr.USR, bool) {
	u, ok := c.funcToUsr[id]
	return u, ok
}

func (c *IdCache) LookupVar(u usr.USR) (ids.Id[ids.Var], bool) {
	id, ok := c.usrToVar[u]
	return id, ok
}

func (c *IdCache) InternVar(u usr.USR, id ids.Id[ids.Var]) {
	c.usrToVar[u] = id
	c.varToUsr[id] = u
}

func (c *IdCache) USROfVar(id ids.Id[ids.Var]) (usr.USR, bool) {
	u, ok := c.varToUsr[id]
	return u, ok
}
