// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Single source of truth for receiver/allocation/index guards.
//   - Each composite check follows the fixed sequence NotNil → Allocated → Range,
//     so the reported sentinel is deterministic when several checks fail.

package tensor

// checkStates validates the receiver, allocation and both state indices.
// Complexity: O(1).
func (t *Tensor) checkStates(method string, from, to int) error {
	if t == nil {
		return tensorErrorf(method, from, to, ErrNilTensor)
	}
	if t.data == nil {
		return tensorErrorf(method, from, to, ErrNotAllocated)
	}
	if from < 0 || from >= t.states || to < 0 || to >= t.states {
		return tensorErrorf(method, from, to, ErrStateOutOfRange)
	}

	return nil
}

// ValidateLive checks that every (state, token) pair has at least one
// successor, i.e. the decoder can never get stuck. A tensor built only through
// InitSelfLoop + Connect on initialized states always satisfies this.
// Returns ErrNotAllocated, or ErrDeadState wrapped with the (state, token) pair.
// Complexity: O(N²·V).
func ValidateLive(t *Tensor) error {
	if t == nil {
		return tensorErrorf("ValidateLive", 0, 0, ErrNilTensor)
	}
	if t.data == nil {
		return tensorErrorf("ValidateLive", 0, 0, ErrNotAllocated)
	}
	for from := 0; from < t.states; from++ {
		for tok := 0; tok < t.vocab; tok++ {
			alive := false
			for to := 0; to < t.states && !alive; to++ {
				alive = t.data[t.offset(from, to)+tok] == 1
			}
			if !alive {
				return tensorErrorf("ValidateLive", from, tok, ErrDeadState)
			}
		}
	}

	return nil
}
