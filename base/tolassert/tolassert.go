// Copyright (c) 2025, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, it checks whether numbers
// are about equal).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks whether the given numbers are about equal,
// using a default tolerance of 1.0e-4.
func Equal(t testing.TB, expected, actual float32, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1.0e-4, msgAndArgs...)
}

// EqualTol checks whether the given numbers are within the
// given tolerance of each other.
func EqualTol(t testing.TB, expected, actual, tol float32, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}
