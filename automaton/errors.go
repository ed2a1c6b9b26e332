// SPDX-License-Identifier: MIT
// Package: lexfsm/automaton
//
// errors.go - sentinel errors for the automaton package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Build wraps with method context: "PhraseBuilder.Build: ...: %w".
//   • Tensor sentinels (tensor.ErrStateOutOfRange, ...) pass through wrapped;
//     they indicate a wiring bug, not bad input.

package automaton

import "errors"

// ErrNilLookup indicates that NewPhraseBuilder received a nil TokenLookup.
var ErrNilLookup = errors.New("automaton: token lookup is nil")

// ErrTooManyCandidates indicates more phrases than the fixed lattice can hold.
// The builder never truncates the list.
var ErrTooManyCandidates = errors.New("automaton: too many candidates")

// ErrAuxOverflow indicates that wiring asked for more auxiliary states than
// were planned and allocated.
var ErrAuxOverflow = errors.New("automaton: auxiliary states exhausted")
