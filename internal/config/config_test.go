// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccindex/ccindex/internal/config"
)

func TestDefaultSetsCacheDir(t *testing.T) {
	cfg := config.Default()
	assert.NotEmpty(t, cfg.CacheDir)
	assert.Equal(t, 0, cfg.Jobs)
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ccindex.toml")
	require.NoError(t, os.WriteFile(path, []byte("jobs = 4\ndebug = true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Debug)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestCrashRecoveryEnabledDefaultsTrue(t *testing.T) {
	t.Setenv(config.CrashRecoveryEnvVar, "")
	assert.True(t, config.CrashRecoveryEnabled())
}

func TestCrashRecoveryEnabledDisabledByZero(t *testing.T) {
	t.Setenv(config.CrashRecoveryEnvVar, "0")
	assert.False(t, config.CrashRecoveryEnabled())
}
