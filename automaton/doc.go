// Package automaton builds the finite-state acceptors that encode lexical
// constraints for constrained beam search: given up to three required
// phrases, the resulting transition tensor only lets a decoder reach the
// accepting state after it has emitted every phrase, in any order across
// phrases, with each phrase's own words in sequence.
//
// What:
//
//   - PhraseBuilder: wires a fixed 8-state subset lattice
//     (0 = nothing satisfied; 1..3 = exactly one candidate satisfied;
//     4..6 = exactly one candidate still missing; 7 = all satisfied) and
//     allocates auxiliary states from 8 upward to sequence the inner words
//     of multi-word phrases. Auxiliary states are never shared.
//   - NullBuilder: the degenerate one-state automaton that accepts anything.
//
// Lattice (3 candidates a, b, c):
//
//	         ┌── 1{a} ──┬──> 6{a,b} ──┐
//	0{} ─────┼── 2{b} ──┼──> 5{a,c} ──┼──> 7{a,b,c}
//	         └── 3{c} ──┴──> 4{b,c} ──┘
//
// Each arrow is a chain consuming one token per word of the phrase that is
// being added; a consumed token that belongs to no outgoing chain self-loops.
//
// Key Types:
//
//   - Builder:     common interface of PhraseBuilder and NullBuilder
//   - Result:      tensor plus state count, candidate count and accept state
//   - TokenLookup: word → token id with a reserved unknown id
//   - FormTable:   canonical word → accepted surface forms
//   - Option:      WithLogger, WithOnEmptyGroup, WithOnConnect
//
// Complexity:
//
//   - Build: Time O(N²·V) for allocation, O(K·W·F) for wiring, Memory O(N²·V)
//     (N = 8 + Σ 4·(Wᵢ−1) states, V vocabulary size, F forms per word)
//
// Errors:
//
//   - ErrNilLookup           no token lookup supplied
//   - ErrTooManyCandidates   more than MaxCandidates phrases
//   - ErrAuxOverflow         auxiliary allocation exceeded the planned count
//   - tensor.Err*            propagated tensor precondition failures
//
// Builders hold only read-only tables, so one instance may serve concurrent
// Build calls; every call allocates its own tensor.
package automaton
