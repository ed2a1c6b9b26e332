// Package reach explores a constraint automaton's transition tensor:
// breadth-first search over states (shortest token witnesses) and
// set-based simulation of a token sequence.
//
// Edges are the non-self transitions of the tensor; self-loops never change
// the state and are ignored by BFS.
package reach

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lexfsm/tensor"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	t       *tensor.Tensor
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS explores t from start. Returns ErrNilTensor, ErrStartOutOfRange,
// ErrOptionViolation, the context error, or any OnVisit error.
// Complexity: O(N²·V).
func BFS(t *tensor.Tensor, start int, opts ...Option) (*Result, error) {
	if !t.Allocated() {
		return nil, ErrNilTensor
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := t.States()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	w := &walker{
		t:       t,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
			Via:    make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, -1, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(state, depth, parent, via int) {
	w.visited[state] = true
	w.res.Depth[state] = depth
	if parent >= 0 {
		w.res.Parent[state] = parent
		w.res.Via[state] = via
	}
	w.queue = append(w.queue, queueItem{state: state, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at state %d: %w", item.state, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen state reachable from item in one token,
// scanning tokens in ascending order so Via holds the lowest witness.
func (w *walker) expand(item queueItem) error {
	from := item.state
	for to := 0; to < w.t.States(); to++ {
		if to == from || w.visited[to] {
			continue
		}
		toks, err := w.t.Tokens(from, to)
		if err != nil {
			return err
		}
		for _, tok := range toks {
			if w.opts.FilterToken(from, tok) {
				w.enqueue(to, item.depth+1, from, tok)
				break
			}
		}
	}

	return nil
}

// Walk feeds tokens to the automaton starting at start and returns the set
// of states it may occupy afterwards, ascending. Shared word forms can make
// the tensor non-deterministic, hence a set. Returns ErrDeadEnd if the set
// becomes empty, or wrapped tensor errors for out-of-range tokens.
// Complexity: O(len(tokens)·N²).
func Walk(t *tensor.Tensor, start int, tokens []int) ([]int, error) {
	if !t.Allocated() {
		return nil, ErrNilTensor
	}
	if start < 0 || start >= t.States() {
		return nil, ErrStartOutOfRange
	}
	cur := map[int]struct{}{start: {}}
	for i, tok := range tokens {
		next := make(map[int]struct{}, len(cur))
		for s := range cur {
			succ, err := t.Successors(s, tok)
			if err != nil {
				return nil, fmt.Errorf("reach: Walk token %d: %w", i, err)
			}
			for _, u := range succ {
				next[u] = struct{}{}
			}
		}
		if len(next) == 0 {
			return nil, fmt.Errorf("%w after token %d", ErrDeadEnd, i)
		}
		cur = next
	}
	out := make([]int, 0, len(cur))
	for s := range cur {
		out = append(out, s)
	}
	sort.Ints(out)

	return out, nil
}

// Accepts reports whether tokens can drive the automaton from start to accept.
func Accepts(t *tensor.Tensor, start, accept int, tokens []int) (bool, error) {
	states, err := Walk(t, start, tokens)
	if err != nil {
		return false, err
	}
	i := sort.SearchInts(states, accept)

	return i < len(states) && states[i] == accept, nil
}
