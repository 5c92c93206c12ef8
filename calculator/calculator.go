/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package calculator provides int32 arithmetic.
//
// All operations wrap on overflow using two's complement, which is Go's
// native int32 behaviour. That includes Divide(math.MinInt32, -1), which
// yields math.MinInt32.
package calculator

import (
	"github.com/suparena/samplekit/errors"
)

// Add returns a + b.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int32) int32 {
	return a * b
}

// Divide returns a / b truncated toward zero.
// A zero divisor yields 0 and an error matching errors.ErrDivisionByZero.
func Divide(a, b int32) (int32, error) {
	if b == 0 {
		return 0, errors.NewDivisionByZeroError(a)
	}
	return a / b, nil
}
