// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"

	"github.com/katalvlaran/lexfsm/tensor"
)

// wiring carries the per-build mutable state: the tensor being written and
// the auxiliary-state cursor. It never outlives one Build call.
type wiring struct {
	t         *tensor.Tensor
	next      int // next free auxiliary state
	limit     int // allocated state count
	onConnect func(from, to int, tokens []int)
}

// aux hands out the next unused auxiliary state.
func (w *wiring) aux() (int, error) {
	if w.next >= w.limit {
		return 0, fmt.Errorf("state %d of %d: %w", w.next, w.limit, ErrAuxOverflow)
	}
	s := w.next
	w.next++

	return s, nil
}

// chain wires from → to through len(groups)-1 fresh auxiliary states,
// consuming groups[k] on the k-th edge.
func (w *wiring) chain(from, to int, groups [][]int) error {
	cur := from
	for _, g := range groups[:len(groups)-1] {
		mid, err := w.aux()
		if err != nil {
			return err
		}
		if err = w.connect(cur, mid, g); err != nil {
			return err
		}
		cur = mid
	}

	return w.connect(cur, to, groups[len(groups)-1])
}

func (w *wiring) connect(from, to int, tokens []int) error {
	if err := w.t.Connect(from, to, tokens); err != nil {
		return err
	}
	w.onConnect(from, to, tokens)

	return nil
}
