// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compilationdatabase models the build-command database the
// core treats as an external collaborator: given a source path it
// answers with the argument vector a compiler would have used to build
// it. Only argument-vector lookup is modeled here, not full build-system
// discovery.
package compilationdatabase

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/ccindex/ccindex/internal/pathutil"
	"github.com/ccindex/ccindex/internal/stringsutil"
)

// Command is one compile_commands.json entry.
type Command struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
}

// CompilationDatabase maps a canonical source path to the argument
// vector used to build it, plus a glob-matched fallback for files a
// JSON database never mentions.
type CompilationDatabase struct {
	root     string
	byPath   map[string]Command
	fallback []globArgs
}

type globArgs struct {
	pattern string
	args    []string
}

// New returns an empty CompilationDatabase rooted at root, the
// directory glob fallback patterns are matched relative to. LoadJSON does
// not use root: each entry's file is joined with its own Directory.
func New(root string) *CompilationDatabase {
	return &CompilationDatabase{
		root:   root,
		byPath: map[string]Command{},
	}
}

// LoadJSON parses a compile_commands.json file at path, indexing every
// entry by its canonical file path.
func (cd *CompilationDatabase) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "compilationdatabase: read compile_commands.json")
	}

	var commands []Command
	if err := json.Unmarshal(data, &commands); err != nil {
		return errors.Wrap(err, "compilationdatabase: parse compile_commands.json")
	}

	for _, c := range commands {
		abs := c.File
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(c.Directory, c.File)
		}
		canonical, err := pathutil.Canonical(abs)
		if err != nil {
			canonical = abs
		}
		if len(c.Arguments) == 0 && c.Command != "" {
			c.Arguments = argsFromCommandString(c.Command)
		}
		cd.byPath[canonical] = c
	}
	return nil
}

// argsFromCommandString splits a legacy shell-style "command" field into
// an argument vector, dropping the driver name and any "-o" output flag
// (with its argument, or in the joined "-ofile" form) that an
// indexing-only invocation neither needs nor wants. Other flags, "-c"
// included, are kept.
func argsFromCommandString(command string) []string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}

	out := make([]string, 0, len(fields))
	skipNext := false
	for i, f := range fields {
		if i == 0 {
			// driver name (e.g. "clang++"), not a compiler flag
			continue
		}
		if skipNext {
			skipNext = false
			continue
		}
		if f == "-o" {
			skipNext = true
			continue
		}
		if stringsutil.HasAnyPrefix(f, "-o") && f != "-o" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// AddGlobFallback registers args as the argument vector for any path
// matching pattern (a doublestar glob relative to root) that LoadJSON
// never indexed — the lightweight alternative to a full JSON database,
// for projects that only supply a flat compile_flags.txt-style list.
func (cd *CompilationDatabase) AddGlobFallback(pattern string, args []string) {
	cd.fallback = append(cd.fallback, globArgs{pattern: pattern, args: args})
}

// Lookup returns the argument vector for path: an exact match from a
// loaded JSON database takes priority, then the first matching glob
// fallback in registration order.
func (cd *CompilationDatabase) Lookup(path string) ([]string, bool) {
	canonical, err := pathutil.Canonical(path)
	if err != nil {
		canonical = path
	}

	if c, ok := cd.byPath[canonical]; ok {
		if len(c.Arguments) > 0 {
			return c.Arguments, true
		}
	}

	rel, err := filepath.Rel(cd.root, canonical)
	if err != nil {
		rel = canonical
	}
	rel = filepath.ToSlash(rel)

	for _, g := range cd.fallback {
		matched, err := doublestar.Match(g.pattern, rel)
		if err == nil && matched {
			return g.args, true
		}
	}

	return nil, false
}

// Files returns every path named by the loaded JSON database, in
// unspecified order.
func (cd *CompilationDatabase) Files() []string {
	out := make([]string, 0, len(cd.byPath))
	for p := range cd.byPath {
		out = append(out, p)
	}
	return out
}

// Discover walks root looking for files matching any of patterns (e.g.
// "**/*.cpp", "**/*.h"), returning their canonical paths. It consults no
// loaded database, so files a JSON database already names are returned
// too. This is the glob-expansion half of compile-command discovery; it
// does not infer arguments.
func Discover(root string, patterns []string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if matched, _ := doublestar.Match(pattern, rel); matched {
				canonical, err := pathutil.Canonical(path)
				if err != nil {
					canonical = path
				}
				out = append(out, canonical)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "compilationdatabase: discover")
	}
	return out, nil
}
