// Package lexfsm builds lexical constraint automata for constrained beam
// search: given up to three required phrases (typically detected object
// classes), it produces a transition tensor that only lets a decoder reach
// its accepting state after emitting every phrase, in any order.
//
// What's inside:
//
//	tensor/      - TransitionTensor: boolean [1][N][N][V] reachability store
//	automaton/   - PhraseBuilder (subset lattice + auxiliary word chains), NullBuilder
//	reach/       - BFS over tensor states, token-sequence simulation
//	vocab/       - vocabulary, word-form table, text normalization
//	candidates/  - detections → filtered, suppressed, ranked phrases
//	constraint/  - per-image providers and parallel batch builds
//
// Quick lattice sketch (candidates a, b, c):
//
//	0{} ──> 1{a} 2{b} 3{c} ──> 6{a,b} 5{a,c} 4{b,c} ──> 7{a,b,c}
//
// The package does not generate, score or search sequences; it only
// describes the automaton a separate decoder must respect.
//
//	go get github.com/katalvlaran/lexfsm
package lexfsm
