// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package external names the collaborators the core treats as out of
// scope — the language server's request/response transport and the
// project-level index database that merges IndexFiles across
// translation units — as minimal interface seams. Nothing in this
// module constructs a real implementation of either; they exist so a
// caller wiring the façade into a larger service has a stable interface
// to implement against.
package external

import "github.com/ccindex/ccindex/indexfile"

// RPCServer is the request/response transport surface a language server
// would expose over the parsed results. Its wire protocol, framing, and
// session lifecycle are explicitly out of scope for this module.
type RPCServer interface {
	// Serve starts accepting requests; it blocks until the server is
	// stopped or the listener fails.
	Serve() error
	// Stop shuts the server down, releasing any held connections.
	Stop() error
}

// IndexDB is the project-level store that merges IndexFiles produced by
// many independent parses into a queryable cross-translation-unit
// symbol table. Its storage engine, merge strategy, and query surface
// are explicitly out of scope for this module.
type IndexDB interface {
	// Put persists one parse's IndexFiles, keyed by their own Path.
	Put(files []*indexfile.IndexFile) error
	// Get retrieves the most recently persisted IndexFile for path, if
	// any record exists for it.
	Get(path string) (*indexfile.IndexFile, bool, error)
	// Close releases the database's underlying resources.
	Close() error
}
