// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexfile

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/ccindex/ccindex/entity"
	"github.com/ccindex/ccindex/position"
)

// Version numbers gate the two serialization formats: a major
// version bump means a breaking change to either format; a minor version
// bump only breaks the compact binary format, since the textual format
// tolerates unknown/missing fields.
const (
	MajorVersion = 1
	MinorVersion = 0
)

// wireIndexFile is the serialized shape of an IndexFile: everything but
// Diagnostics and FileContents, which are derived/runtime-only and never
// persisted.
type wireIndexFile struct {
	Major int
	Minor int

	Path                  string
	Args                  []string
	LastModificationTime  time.Time
	Language              string
	ImportFile            string
	SkippedByPreprocessor []position.Range
	Includes              []IndexInclude
	Dependencies          []string

	IdCache IdCacheSnapshot

	Types []entity.IndexType
	Funcs []entity.IndexFunc
	Vars  []entity.IndexVar
}

func (f *IndexFile) toWire() wireIndexFile {
	return wireIndexFile{
		Major:                 MajorVersion,
		Minor:                 MinorVersion,
		Path:                  f.Path,
		Args:                  f.Args,
		LastModificationTime:  f.LastModificationTime,
		Language:              f.Language,
		ImportFile:            f.ImportFile,
		SkippedByPreprocessor: f.SkippedByPreprocessor,
		Includes:              f.Includes,
		Dependencies:          f.Dependencies,
		IdCache:               f.IdCache.Snapshot(),
		Types:                 f.Types,
		Funcs:                 f.Funcs,
		Vars:                  f.Vars,
	}
}

func (w *wireIndexFile) fromWire() *IndexFile {
	return &IndexFile{
		Path:                  w.Path,
		Args:                  w.Args,
		LastModificationTime:  w.LastModificationTime,
		Language:              w.Language,
		ImportFile:            w.ImportFile,
		SkippedByPreprocessor: w.SkippedByPreprocessor,
		Includes:              w.Includes,
		Dependencies:          w.Dependencies,
		IdCache:               IdCacheFromSnapshot(w.IdCache),
		Types:                 w.Types,
		Funcs:                 w.Funcs,
		Vars:                  w.Vars,
	}
}

// MarshalText renders f as the textual format: forward- and
// backward-compatible JSON that ignores unknown fields and defaults
// missing ones on decode.
func (f *IndexFile) MarshalText() ([]byte, error) {
	buf, err := json.MarshalIndent(f.toWire(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "indexfile: marshal text")
	}
	return buf, nil
}

// UnmarshalText parses the textual format produced by MarshalText.
func UnmarshalText(data []byte) (*IndexFile, error) {
	var w wireIndexFile
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "indexfile: unmarshal text")
	}
	if w.Major != MajorVersion {
		return nil, errors.Errorf("indexfile: major version mismatch: got %d, want %d", w.Major, MajorVersion)
	}
	return w.fromWire(), nil
}

// MarshalBinary renders f as the compact binary format, gated by both
// major and minor version.
func (f *IndexFile) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f.toWire()); err != nil {
		return nil, errors.Wrap(err, "indexfile: marshal binary")
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary parses the compact binary format produced by
// MarshalBinary. Both major and minor mismatches are rejected.
func UnmarshalBinary(data []byte) (*IndexFile, error) {
	var w wireIndexFile
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return nil, errors.Wrap(err, "indexfile: unmarshal binary")
	}
	if w.Major != MajorVersion {
		return nil, errors.Errorf("indexfile: major version mismatch: got %d, want %d", w.Major, MajorVersion)
	}
	if w.Minor != MinorVersion {
		return nil, errors.Errorf("indexfile: minor version mismatch: got %d, want %d", w.Minor, MinorVersion)
	}
	return w.fromWire(), nil
}
