// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lexfsm/tensor"
)

// TokenLookup resolves a word to its token id. TokenID is total: words
// outside the vocabulary map to UnknownID. Size is the vocabulary size V.
type TokenLookup interface {
	TokenID(word string) int
	UnknownID() int
	Size() int
}

// FormTable lists the accepted surface forms of a canonical word.
// An empty result means the word is its own sole form.
type FormTable interface {
	FormsOf(word string) []string
}

// Builder produces a constraint automaton for one ordered candidate list.
type Builder interface {
	Build(phrases []string) (*Result, error)
}

// Result is the output of one Build call.
type Result struct {
	// Tensor is owned by the caller; no builder keeps a reference to it.
	Tensor *tensor.Tensor

	// States is the number of states in use; decoders must not index beyond it.
	States int

	// Candidates is the number of phrases applied (0 for no constraints).
	Candidates int

	// Accept is the state in which every applied phrase has been emitted.
	// Decoders must key on Accept, not StateTerminal: with fewer than
	// MaxCandidates phrases, StateTerminal is unreachable.
	Accept int
}

// PhraseBuilder wires the subset lattice for up to MaxCandidates phrases.
// It is parameterized once with read-only tables and may be reused.
type PhraseBuilder struct {
	lookup TokenLookup
	forms  FormTable
	cfg    config
}

// NewPhraseBuilder returns a builder over lookup and forms. forms may be nil,
// in which case every word is its own sole form.
// Returns ErrNilLookup when lookup is nil.
func NewPhraseBuilder(lookup TokenLookup, forms FormTable, opts ...Option) (*PhraseBuilder, error) {
	if lookup == nil {
		return nil, ErrNilLookup
	}

	return &PhraseBuilder{lookup: lookup, forms: forms, cfg: newConfig(opts...)}, nil
}

// Build constructs the automaton for phrases, ordered by detector rank.
// Each phrase is a space-separated, already normalized word sequence.
//
// Implementation:
//   - Stage 1 (Validate): reject more than MaxCandidates phrases; an empty
//     list yields the null automaton.
//   - Stage 2 (Plan): split phrases, resolve word groups, count auxiliary
//     states so the tensor is allocated once at its final size.
//   - Stage 3 (Allocate): size the tensor and self-loop every state.
//   - Stage 4 (Wire): per candidate, chain 0→Tier1(i), Tier2(i)→7 and one
//     chain per level-mapping entry.
//
// Complexity: O(N²·V) time and memory, N = 8 + Σ 4·(Wᵢ−1).
func (b *PhraseBuilder) Build(phrases []string) (*Result, error) {
	if len(phrases) > MaxCandidates {
		return nil, fmt.Errorf("PhraseBuilder.Build: %d phrases, max %d: %w",
			len(phrases), MaxCandidates, ErrTooManyCandidates)
	}
	if len(phrases) == 0 {
		return buildNull(b.lookup.Size())
	}

	// Stage 2: plan.
	groups := make([][][]int, len(phrases))
	states := FixedStates
	for i, phrase := range phrases {
		words := strings.Fields(phrase)
		if len(words) == 0 {
			b.cfg.log.Warn("phrase has no words; candidate left unwired",
				zap.Int("candidate", i))
			continue
		}
		groups[i] = make([][]int, len(words))
		for j, w := range words {
			groups[i][j] = b.wordGroup(w)
			if len(groups[i][j]) == 0 {
				b.cfg.log.Warn("word resolves to no known token",
					zap.Int("candidate", i), zap.String("word", w))
				b.cfg.onEmptyGroup(i, w)
			}
		}
		states += chainsPerCandidate(i) * (len(words) - 1)
	}

	// Stage 3: allocate.
	t, err := tensor.New(b.lookup.Size())
	if err != nil {
		return nil, fmt.Errorf("PhraseBuilder.Build: %w", err)
	}
	if err = t.Allocate(states); err != nil {
		return nil, fmt.Errorf("PhraseBuilder.Build: %w", err)
	}
	for s := 0; s < states; s++ {
		if err = t.InitSelfLoop(s); err != nil {
			return nil, fmt.Errorf("PhraseBuilder.Build: %w", err)
		}
	}

	// Stage 4: wire.
	w := &wiring{t: t, next: FixedStates, limit: states, onConnect: b.cfg.onConnect}
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		if err = w.chain(StateNone, Tier1(i), g); err != nil {
			return nil, fmt.Errorf("PhraseBuilder.Build: candidate %d: %w", i, err)
		}
		if err = w.chain(Tier2(i), StateTerminal, g); err != nil {
			return nil, fmt.Errorf("PhraseBuilder.Build: candidate %d: %w", i, err)
		}
		for _, e := range levelMapping[i] {
			if err = w.chain(e.from, e.to, g); err != nil {
				return nil, fmt.Errorf("PhraseBuilder.Build: candidate %d: %w", i, err)
			}
		}
	}

	b.cfg.log.Debug("constraint automaton built",
		zap.Int("candidates", len(phrases)),
		zap.Int("states", states),
		zap.Int("aux_states", states-FixedStates))

	return &Result{
		Tensor:     t,
		States:     states,
		Candidates: len(phrases),
		Accept:     AcceptState(len(phrases)),
	}, nil
}

// wordGroup returns the distinct known token ids of every surface form of
// word, in form order. Unknown forms are dropped.
func (b *PhraseBuilder) wordGroup(word string) []int {
	var forms []string
	if b.forms != nil {
		forms = b.forms.FormsOf(word)
	}
	if len(forms) == 0 {
		forms = []string{word}
	}
	unknown := b.lookup.UnknownID()
	group := make([]int, 0, len(forms))
	seen := make(map[int]struct{}, len(forms))
	for _, f := range forms {
		id := b.lookup.TokenID(f)
		if id == unknown {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		group = append(group, id)
	}

	return group
}

// NullBuilder produces the one-state automaton with no constraints.
type NullBuilder struct {
	vocab int
}

// NewNullBuilder returns a NullBuilder for a vocabulary of vocabSize tokens.
// Returns tensor.ErrBadShape when vocabSize <= 0.
func NewNullBuilder(vocabSize int) (*NullBuilder, error) {
	if vocabSize <= 0 {
		return nil, fmt.Errorf("NewNullBuilder: %w", tensor.ErrBadShape)
	}

	return &NullBuilder{vocab: vocabSize}, nil
}

// Build ignores phrases and returns the always-satisfied automaton.
func (b *NullBuilder) Build(_ []string) (*Result, error) {
	return buildNull(b.vocab)
}

// buildNull allocates one self-looping state.
func buildNull(vocabSize int) (*Result, error) {
	t, err := tensor.New(vocabSize)
	if err != nil {
		return nil, fmt.Errorf("NullBuilder.Build: %w", err)
	}
	if err = t.Allocate(1); err != nil {
		return nil, fmt.Errorf("NullBuilder.Build: %w", err)
	}
	if err = t.InitSelfLoop(StateNone); err != nil {
		return nil, fmt.Errorf("NullBuilder.Build: %w", err)
	}

	return &Result{Tensor: t, States: 1, Candidates: 0, Accept: StateNone}, nil
}
