// Package reach provides tunable options and error definitions
// for breadth-first exploration of a transition tensor.
package reach

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for exploration.
var (
	// ErrNilTensor is returned if a nil or unallocated tensor is passed.
	ErrNilTensor = errors.New("reach: tensor is nil or unallocated")

	// ErrStartOutOfRange is returned when the start state is not in the tensor.
	ErrStartOutOfRange = errors.New("reach: start state out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrNoPath is returned by PathTo/TokensTo for unreached states.
	ErrNoPath = errors.New("reach: no path")

	// ErrDeadEnd is returned by Walk when no state survives a token.
	ErrDeadEnd = errors.New("reach: no successor state")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks to customize exploration.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. A returned error aborts BFS.
	OnVisit func(state, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many tokens.
	MaxDepth int

	// FilterToken skips the transition from → * on token when it returns false.
	FilterToken func(from, token int) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     func(int, int) error { return nil },
		FilterToken: func(int, int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited state.
func WithOnVisit(fn func(state, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops exploration at depth d.
//
//	d > 0:  limit to d tokens
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterToken skips transitions for which fn returns false.
func WithFilterToken(fn func(from, token int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterToken = fn
		}
	}
}

// Result holds the outcome of an exploration:
//   - Order: states in visit sequence.
//   - Depth: tokens needed to reach each state from the start.
//   - Parent: predecessor of each state in the BFS tree.
//   - Via: lowest token id moving Parent[s] to s.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
	Via    map[int]int
}

// PathTo reconstructs the state path from the start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to state %d", ErrNoPath, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// TokensTo returns one shortest token sequence driving the start to dest.
func (r *Result) TokensTo(dest int) ([]int, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	toks := make([]int, 0, len(path)-1)
	for _, s := range path[1:] {
		toks = append(toks, r.Via[s])
	}

	return toks, nil
}
