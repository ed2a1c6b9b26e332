// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every precondition violation on a Tensor is reported through one of these
// sentinels; callers branch with errors.Is. Methods attach their own context
// ("Tensor.Connect(3,7): ...") via %w so the sentinel survives wrapping.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested dimension is non-positive
	// (vocabulary size in New, state count in Allocate).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrNotAllocated signals use of a Tensor before Allocate was called.
	ErrNotAllocated = errors.New("tensor: not allocated")

	// ErrStateOutOfRange indicates a state index outside [0, States()).
	ErrStateOutOfRange = errors.New("tensor: state out of range")

	// ErrTokenOutOfRange indicates a token id outside [0, VocabSize()).
	ErrTokenOutOfRange = errors.New("tensor: token out of range")

	// ErrDeadState signals a (state, token) pair with no successor at all.
	ErrDeadState = errors.New("tensor: state has no successor")

	// ErrNilTensor indicates a nil *Tensor receiver or argument.
	ErrNilTensor = errors.New("tensor: nil receiver")
)

// tensorErrorf wraps err with the method name and its state arguments.
func tensorErrorf(method string, from, to int, err error) error {
	return fmt.Errorf("Tensor.%s(%d,%d): %w", method, from, to, err)
}
