// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crashrecovery implements a run-safely boundary: it converts a
// fatal fault raised while driving the compiler frontend into a
// recoverable negative result, with a kill switch for debugging.
//
// Go has no native SEH/segfault interception for the faults libclang's C
// ABI can raise across cgo; the recoverable surface this package exposes
// is the Go-native analogue — panics raised by the bound frontend's Go
// wrapper. A real libclang binding additionally installs a process-wide
// SIGSEGV/SIGABRT handler in its C shim; that handler is external to
// this package.
package crashrecovery

import (
	"fmt"

	"github.com/ccindex/ccindex/internal/config"
	"github.com/ccindex/ccindex/internal/log"
)

// RunSafely invokes fn under the crash shim. When armed (the default), a
// panic raised by fn is caught and converted into a non-nil error; fn's
// own structured error return is passed through unchanged — only
// asynchronous faults are swallowed.
//
// When CCLS_CRASH_RECOVERY=0, the shim is disabled and a panic in fn
// propagates to the caller, so crashes surface as real crashes during
// debugging.
func RunSafely(fn func() error) (err error) {
	if !config.CrashRecoveryEnabled() {
		return fn()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Warnf("crashrecovery: recovered fatal fault: %v", r)
			err = fmt.Errorf("crashrecovery: fatal fault: %v", r)
		}
	}()

	return fn()
}
