// SPDX-License-Identifier: MIT

// Package tensor provides the boolean transition tensor consumed by a
// constrained beam-search decoder.
// Tensor is a concrete, row-major [1][N][N][V] structure stored in one flat
// byte slice (0/1), where N is the state count and V the vocabulary size.
package tensor

// batch is the leading dimension of the exported shape. Decoders expect a
// batch axis; one automaton is built per image, so it is always 1.
const batch = 1

// Tensor records, for every (from, to, token) triple, whether consuming token
// in state from may move the decoder to state to.
//
// A Tensor is owned by a single build call; it carries no locks.
type Tensor struct {
	vocab  int    // V, fixed at construction
	states int    // N, 0 until Allocate
	data   []byte // flat storage, len == N*N*V
}

// New creates an unallocated Tensor for a vocabulary of vocabSize tokens.
// Returns ErrBadShape when vocabSize <= 0.
// Complexity: O(1).
func New(vocabSize int) (*Tensor, error) {
	if vocabSize <= 0 {
		return nil, tensorErrorf("New", vocabSize, 0, ErrBadShape)
	}

	return &Tensor{vocab: vocabSize}, nil
}

// Allocate sizes the tensor to [1][stateCount][stateCount][V] with every
// entry false. Any prior content is discarded.
// Complexity: O(N²·V) time and memory.
func (t *Tensor) Allocate(stateCount int) error {
	if t == nil {
		return tensorErrorf("Allocate", stateCount, 0, ErrNilTensor)
	}
	if stateCount <= 0 {
		return tensorErrorf("Allocate", stateCount, 0, ErrBadShape)
	}
	t.states = stateCount
	t.data = make([]byte, stateCount*stateCount*t.vocab)

	return nil
}

// InitSelfLoop marks [state][state][*] = true: with no constraint forcing a
// transition, consuming any token keeps the decoder in state.
// Complexity: O(V).
func (t *Tensor) InitSelfLoop(state int) error {
	if err := t.checkStates("InitSelfLoop", state, state); err != nil {
		return err
	}
	base := t.offset(state, state)
	row := t.data[base : base+t.vocab]
	for i := range row {
		row[i] = 1
	}

	return nil
}

// Connect forces progression: for each token in tokens it sets
// [from][to][token] = true and clears the self-loop [from][from][token].
// An empty token set is a no-op. Every token is validated before any write,
// so a failed call leaves the tensor untouched.
// Complexity: O(len(tokens)).
func (t *Tensor) Connect(from, to int, tokens []int) error {
	if err := t.checkStates("Connect", from, to); err != nil {
		return err
	}
	for _, tok := range tokens {
		if tok < 0 || tok >= t.vocab {
			return tensorErrorf("Connect", from, to, ErrTokenOutOfRange)
		}
	}
	self, next := t.offset(from, from), t.offset(from, to)
	for _, tok := range tokens {
		t.data[next+tok] = 1
		t.data[self+tok] = 0
	}

	return nil
}

// At reports whether [from][to][token] is set.
// Complexity: O(1).
func (t *Tensor) At(from, to, token int) (bool, error) {
	if err := t.checkStates("At", from, to); err != nil {
		return false, err
	}
	if token < 0 || token >= t.vocab {
		return false, tensorErrorf("At", from, to, ErrTokenOutOfRange)
	}

	return t.data[t.offset(from, to)+token] == 1, nil
}

// Successors returns every state reachable from from by consuming token,
// in ascending order. A self-loop reports from itself.
// Complexity: O(N).
func (t *Tensor) Successors(from, token int) ([]int, error) {
	if err := t.checkStates("Successors", from, from); err != nil {
		return nil, err
	}
	if token < 0 || token >= t.vocab {
		return nil, tensorErrorf("Successors", from, from, ErrTokenOutOfRange)
	}
	var out []int
	for to := 0; to < t.states; to++ {
		if t.data[t.offset(from, to)+token] == 1 {
			out = append(out, to)
		}
	}

	return out, nil
}

// Tokens returns the token ids set in [from][to][*], ascending.
// Complexity: O(V).
func (t *Tensor) Tokens(from, to int) ([]int, error) {
	if err := t.checkStates("Tokens", from, to); err != nil {
		return nil, err
	}
	base := t.offset(from, to)
	var out []int
	for tok, v := range t.data[base : base+t.vocab] {
		if v == 1 {
			out = append(out, tok)
		}
	}

	return out, nil
}

// States returns N, or 0 if the tensor is nil or not allocated.
func (t *Tensor) States() int {
	if t == nil {
		return 0
	}
	return t.states
}

// VocabSize returns V, or 0 for a nil tensor.
func (t *Tensor) VocabSize() int {
	if t == nil {
		return 0
	}
	return t.vocab
}

// Allocated reports whether Allocate has been called.
func (t *Tensor) Allocated() bool { return t != nil && t.data != nil }

// Shape returns the exported dimensions [1, N, N, V]; all zero for nil.
func (t *Tensor) Shape() [4]int {
	if t == nil {
		return [4]int{}
	}
	return [4]int{batch, t.states, t.states, t.vocab}
}

// Data exposes the raw row-major [1][N][N][V] storage (0 or 1 per entry).
// The slice aliases the tensor; callers that mutate it should Clone first.
// Returns nil for a nil or unallocated tensor.
func (t *Tensor) Data() []byte {
	if t == nil {
		return nil
	}
	return t.data
}

// Clone returns a deep copy of the tensor, or nil for nil.
// Complexity: O(N²·V).
func (t *Tensor) Clone() *Tensor {
	if t == nil {
		return nil
	}
	cp := &Tensor{vocab: t.vocab, states: t.states}
	if t.data != nil {
		cp.data = make([]byte, len(t.data))
		copy(cp.data, t.data)
	}

	return cp
}

// offset returns the flat index of [from][to][0].
func (t *Tensor) offset(from, to int) int {
	return (from*t.states + to) * t.vocab
}
