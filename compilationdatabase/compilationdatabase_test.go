// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compilationdatabase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccindex/ccindex/compilationdatabase"
)

func writeSampleDatabase(t *testing.T, root string) string {
	t.Helper()
	aFile := filepath.Join(root, "a.cc")
	require.NoError(t, os.WriteFile(aFile, []byte("int main(){}"), 0o644))

	content := "[\n\t{\n\t\t\"directory\": \"" + root + "\",\n\t\t\"file\": \"a.cc\",\n\t\t\"arguments\": [\"clang++\", \"-std=c++17\", \"-Iinclude\", \"a.cc\"]\n\t}\n]"
	dbPath := filepath.Join(root, "compile_commands.json")
	require.NoError(t, os.WriteFile(dbPath, []byte(content), 0o644))
	return dbPath
}

func TestLoadJSONAndLookupExactMatch(t *testing.T) {
	root := t.TempDir()
	dbPath := writeSampleDatabase(t, root)

	cd := compilationdatabase.New(root)
	require.NoError(t, cd.LoadJSON(dbPath))

	args, ok := cd.Lookup(filepath.Join(root, "a.cc"))
	require.True(t, ok)
	assert.Equal(t, []string{"clang++", "-std=c++17", "-Iinclude", "a.cc"}, args)
}

func TestLookupMissesForUnknownPath(t *testing.T) {
	root := t.TempDir()
	dbPath := writeSampleDatabase(t, root)

	cd := compilationdatabase.New(root)
	require.NoError(t, cd.LoadJSON(dbPath))

	_, ok := cd.Lookup(filepath.Join(root, "missing.cc"))
	assert.False(t, ok)
}

func TestLookupFallsBackToGlob(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "b.cc"), []byte("int b(){}"), 0o644))

	cd := compilationdatabase.New(root)
	cd.AddGlobFallback("src/**/*.cc", []string{"clang++", "-std=c++17"})

	args, ok := cd.Lookup(filepath.Join(root, "src", "b.cc"))
	require.True(t, ok)
	assert.Equal(t, []string{"clang++", "-std=c++17"}, args)
}

func TestLoadJSONFallsBackToCommandStringSplitting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.cc"), []byte("int main(){}"), 0o644))

	content := "[\n\t{\n\t\t\"directory\": \"" + root + "\",\n\t\t\"file\": \"a.cc\",\n\t\t\"command\": \"clang++ -std=c++17 -Iinclude -c a.cc -o a.o\"\n\t}\n]"
	dbPath := filepath.Join(root, "compile_commands.json")
	require.NoError(t, os.WriteFile(dbPath, []byte(content), 0o644))

	cd := compilationdatabase.New(root)
	require.NoError(t, cd.LoadJSON(dbPath))

	args, ok := cd.Lookup(filepath.Join(root, "a.cc"))
	require.True(t, ok)
	assert.Equal(t, []string{"-std=c++17", "-Iinclude", "-c", "a.cc"}, args)
}

func TestFilesReturnsLoadedPaths(t *testing.T) {
	root := t.TempDir()
	dbPath := writeSampleDatabase(t, root)

	cd := compilationdatabase.New(root)
	require.NoError(t, cd.LoadJSON(dbPath))

	assert.Len(t, cd.Files(), 1)
}

func TestDiscoverFindsMatchingFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c.cpp"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte(""), 0o644))

	got, err := compilationdatabase.Discover(root, []string{"**/*.cpp"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "c.cpp")
}
