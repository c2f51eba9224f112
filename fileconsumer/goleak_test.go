// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileconsumer_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain guards against goroutine leaks: the arbiter's Mark is driven
// concurrently by worker-pool tests and must never leave a waiter
// stranded.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
