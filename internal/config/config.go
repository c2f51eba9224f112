// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the ambient ccindex configuration: worker count,
// cache directory, and the crash-recovery switch.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/ccindex/ccindex/internal/pathutil"
)

// CrashRecoveryEnvVar is the environment variable that disables the crash
// shim when set to the literal "0".
const CrashRecoveryEnvVar = "CCLS_CRASH_RECOVERY"

// Config is the ambient, file-loadable configuration for a ccindex worker
// pool. It is distinct from the compiler arguments held in tu.TU.Args,
// which are per translation unit.
type Config struct {
	// Jobs is the number of parallel workers; 0 means runtime.NumCPU().
	Jobs int `toml:"jobs"`
	// CacheDir overrides internal/pathutil.CacheDir when non-empty.
	CacheDir string `toml:"cache_dir"`
	// Debug enables verbose logging.
	Debug bool `toml:"debug"`
}

// Default returns the zero-value configuration with CacheDir resolved from
// internal/pathutil.
func Default() *Config {
	return &Config{CacheDir: pathutil.CacheDir()}
}

// Load reads a TOML configuration file at path, falling back to Default
// fields for anything the file omits.
func Load(path string) (*Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}

	if err := toml.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parsing %s", path)
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = pathutil.CacheDir()
	}
	return cfg, nil
}

// CrashRecoveryEnabled reports whether the crash-recovery shim should be
// armed, per the CCLS_CRASH_RECOVERY contract: unset or any value other
// than "0" means enabled.
func CrashRecoveryEnabled() bool {
	return os.Getenv(CrashRecoveryEnvVar) != "0"
}
