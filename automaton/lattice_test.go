package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexfsm/automaton"
)

// TestTiers pins the fixed state numbering.
func TestTiers(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, []int{automaton.Tier1(0), automaton.Tier1(1), automaton.Tier1(2)})
	require.Equal(t, []int{4, 5, 6}, []int{automaton.Tier2(0), automaton.Tier2(1), automaton.Tier2(2)})
}

// TestAcceptState covers every applied-candidate count.
func TestAcceptState(t *testing.T) {
	cases := []struct{ k, want int }{
		{0, 0}, {1, 1}, {2, 6}, {3, 7}, {4, -1}, {-1, -1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, automaton.AcceptState(tc.k), "k=%d", tc.k)
	}
}

// TestSatisfied checks the subset each fixed state stands for.
func TestSatisfied(t *testing.T) {
	cases := []struct {
		state int
		want  []int
		ok    bool
	}{
		{0, []int{}, true},
		{1, []int{0}, true},
		{3, []int{2}, true},
		{4, []int{1, 2}, true},
		{5, []int{0, 2}, true},
		{6, []int{0, 1}, true},
		{7, []int{0, 1, 2}, true},
		{8, nil, false},
		{-1, nil, false},
	}
	for _, tc := range cases {
		got, ok := automaton.Satisfied(tc.state)
		require.Equal(t, tc.ok, ok, "state %d", tc.state)
		require.Equal(t, tc.want, got, "state %d", tc.state)
	}
}
