// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crashrecovery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccindex/ccindex/crashrecovery"
	"github.com/ccindex/ccindex/internal/config"
)

func TestRunSafelyPassesThroughResult(t *testing.T) {
	t.Setenv(config.CrashRecoveryEnvVar, "1")

	err := crashrecovery.RunSafely(func() error { return nil })
	assert.NoError(t, err)

	sentinel := errors.New("boom")
	err = crashrecovery.RunSafely(func() error { return sentinel })
	assert.Equal(t, sentinel, err)
}

func TestRunSafelyRecoversPanicWhenArmed(t *testing.T) {
	t.Setenv(config.CrashRecoveryEnvVar, "1")

	err := crashrecovery.RunSafely(func() error {
		panic("segfault simulated")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "segfault simulated")
}

func TestRunSafelyPropagatesPanicWhenDisarmed(t *testing.T) {
	t.Setenv(config.CrashRecoveryEnvVar, "0")

	defer func() {
		r := recover()
		assert.NotNil(t, r)
	}()

	_ = crashrecovery.RunSafely(func() error {
		panic("should propagate")
	})

	t.Fatal("expected panic to propagate past RunSafely")
}
