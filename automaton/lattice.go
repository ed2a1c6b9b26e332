// SPDX-License-Identifier: MIT

package automaton

// Fixed lattice layout.
const (
	// MaxCandidates is the number of phrases the fixed lattice encodes.
	MaxCandidates = 3

	// StateNone is the initial state: no candidate satisfied.
	StateNone = 0

	// StateTerminal is the state where all MaxCandidates are satisfied.
	StateTerminal = 7

	// FixedStates is the size of the lattice frame; auxiliary states start here.
	FixedStates = 8
)

// Tier1 returns the state meaning "only candidate i satisfied".
func Tier1(i int) int { return i + 1 }

// Tier2 returns the state meaning "every candidate but i satisfied".
func Tier2(missing int) int { return missing + MaxCandidates + 1 }

// latticeEdge is a tier-1 → tier-2 step taken by adding one candidate.
type latticeEdge struct {
	from, to int
}

// levelMapping[i] lists, for candidate i, the tier-1 states of the other
// candidates and the tier-2 state reached by adding i to them. Entries are
// ordered by source state; auxiliary allocation follows this order.
var levelMapping = [MaxCandidates][]latticeEdge{
	{{from: 2, to: 6}, {from: 3, to: 5}},
	{{from: 1, to: 6}, {from: 3, to: 4}},
	{{from: 1, to: 5}, {from: 2, to: 4}},
}

// chainsPerCandidate is the number of word chains wired for each candidate:
// fresh start, last missing slot, and one per level-mapping entry.
func chainsPerCandidate(i int) int {
	return 2 + len(levelMapping[i])
}

// AcceptState returns the state in which all k applied candidates are
// satisfied: 0 for none, the tier-1 state of candidate 0 for one, the tier-2
// state missing candidate 2 for two, and StateTerminal for three.
// StateTerminal is reachable from StateNone only when k == MaxCandidates.
// k outside [0, MaxCandidates] returns -1.
func AcceptState(k int) int {
	switch k {
	case 0:
		return StateNone
	case 1:
		return Tier1(0)
	case 2:
		return Tier2(2)
	case MaxCandidates:
		return StateTerminal
	default:
		return -1
	}
}

// Satisfied returns the candidate indices a fixed lattice state stands for.
// ok is false for auxiliary or out-of-range states.
func Satisfied(state int) (candidates []int, ok bool) {
	switch {
	case state == StateNone:
		return []int{}, true
	case state >= Tier1(0) && state <= Tier1(MaxCandidates-1):
		return []int{state - 1}, true
	case state >= Tier2(0) && state <= Tier2(MaxCandidates-1):
		missing := state - Tier2(0)
		out := make([]int, 0, MaxCandidates-1)
		for i := 0; i < MaxCandidates; i++ {
			if i != missing {
				out = append(out, i)
			}
		}
		return out, true
	case state == StateTerminal:
		return []int{0, 1, 2}, true
	default:
		return nil, false
	}
}
