// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log provides the package-level leveled logger used throughout
// ccindex, backed by zap's SugaredLogger.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	sugar  *zap.SugaredLogger
	debug  bool
)

func init() {
	setLogger(false)
}

// SetDebug reconfigures the package logger for debug verbosity.
func SetDebug(enabled bool) {
	setLogger(enabled)
}

func setLogger(enabled bool) {
	var cfg zap.Config
	if enabled {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		// last resort: a no-op logger so callers never see a nil *SugaredLogger
		l = zap.NewNop()
	}

	mu.Lock()
	debug = enabled
	sugar = l.Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debug logs at debug level; it is a no-op unless SetDebug(true) was called.
func Debug(args ...interface{}) {
	mu.RLock()
	d := debug
	mu.RUnlock()
	if d {
		get().Debug(args...)
	}
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	mu.RLock()
	d := debug
	mu.RUnlock()
	if d {
		get().Debugf(format, args...)
	}
}

// Warnf logs a formatted warning. Used by the indexing callback adapter for
// invariant violations that must not abort the parse.
func Warnf(format string, args ...interface{}) {
	get().Warnf(format, args...)
}

// Fatal logs the error and terminates the process.
//
// Reserved for startup failures (façade construction); never called from
// inside a parse, since a fatal parse fault must instead flow through the
// crash-recovery shim.
func Fatal(args ...interface{}) {
	get().Fatal(args...)
	os.Exit(1)
}
