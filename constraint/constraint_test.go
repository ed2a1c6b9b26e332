package constraint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexfsm/automaton"
	"github.com/katalvlaran/lexfsm/candidates"
	"github.com/katalvlaran/lexfsm/constraint"
	"github.com/katalvlaran/lexfsm/reach"
	"github.com/katalvlaran/lexfsm/vocab"
)

const datasetJSON = `{
  "categories": [
    {"id": 1, "name": "Dog"},
    {"id": 2, "name": "Flying disc"},
    {"id": 3, "name": "Wood-burning stove"},
    {"id": 4, "name": "Tree"}
  ],
  "annotations": [
    {"image_id": 1, "bbox": [0, 0, 10, 10], "category_id": 1, "score": 0.9},
    {"image_id": 1, "bbox": [20, 20, 30, 30], "category_id": 2, "score": 0.8},
    {"image_id": 2, "bbox": [0, 0, 10, 10], "category_id": 3, "score": 0.7},
    {"image_id": 3, "bbox": [0, 0, 10, 10], "category_id": 4, "score": 0.9}
  ]
}`

type env struct {
	v        *vocab.Vocabulary
	provider *constraint.Provider
}

func newEnv(t *testing.T) *env {
	t.Helper()
	v, err := vocab.LoadVocabulary(strings.NewReader("a\ndog\ndogs\nflying\ndisc\nwood\nburning\nstove\n"))
	require.NoError(t, err)
	forms, err := vocab.LoadWordForms(strings.NewReader("dog\tdog,dogs\n"))
	require.NoError(t, err)
	ds, err := candidates.LoadDataset(strings.NewReader(datasetJSON))
	require.NoError(t, err)

	b, err := automaton.NewPhraseBuilder(v, forms)
	require.NoError(t, err)
	p, err := constraint.NewProvider(ds, candidates.NewSelector(), b)
	require.NoError(t, err)

	return &env{v: v, provider: p}
}

// TestProviderStateMatrix runs detections through selection and building.
func TestProviderStateMatrix(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.provider.StateMatrix(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Candidates)
	// "flying disc" adds one aux state per chain
	assert.Equal(t, automaton.FixedStates+4, res.States)

	seq := []int{e.v.TokenID("flying"), e.v.TokenID("disc"), e.v.TokenID("dogs")}
	ok, err := reach.Accepts(res.Tensor, automaton.StateNone, res.Accept, seq)
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = e.provider.StateMatrix(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Candidates)
	assert.Equal(t, automaton.FixedStates+8, res.States)

	// only a blacklisted class: no constraints at all
	res, err = e.provider.StateMatrix(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.States)
	assert.Equal(t, 0, res.Candidates)
}

// TestProviderErrors covers unknown images, nil wiring and cancellation.
func TestProviderErrors(t *testing.T) {
	e := newEnv(t)

	_, err := e.provider.StateMatrix(context.Background(), 42)
	require.ErrorIs(t, err, constraint.ErrUnknownImage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.provider.StateMatrix(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)

	_, err = constraint.NewProvider(nil, candidates.NewSelector(), nil)
	require.ErrorIs(t, err, constraint.ErrNilDependency)
}

// TestFree always serves the one-state automaton.
func TestFree(t *testing.T) {
	_, err := constraint.NewFree(0)
	require.Error(t, err)

	f, err := constraint.NewFree(12)
	require.NoError(t, err)
	res, err := f.StateMatrix(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, 1, res.States)
	assert.Equal(t, 0, res.Candidates)
	assert.Equal(t, [4]int{1, 1, 1, 12}, res.Tensor.Shape())
}

// TestBuildAll builds a batch in parallel, collapsing duplicate ids.
func TestBuildAll(t *testing.T) {
	e := newEnv(t)

	out, err := constraint.BuildAll(context.Background(), e.provider, []int{1, 2, 3, 1},
		constraint.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 2, out[1].Candidates)
	assert.Equal(t, 1, out[2].Candidates)
	assert.Equal(t, 0, out[3].Candidates)
	assert.NotSame(t, out[1].Tensor, out[2].Tensor)
}

// TestBuildAllErrors surfaces the first failure.
func TestBuildAllErrors(t *testing.T) {
	e := newEnv(t)

	_, err := constraint.BuildAll(context.Background(), e.provider, []int{1, 77})
	require.ErrorIs(t, err, constraint.ErrUnknownImage)

	_, err = constraint.BuildAll(context.Background(), nil, []int{1})
	require.ErrorIs(t, err, constraint.ErrNilDependency)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = constraint.BuildAll(ctx, e.provider, []int{1, 2})
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() { constraint.WithWorkers(0) })
	require.Panics(t, func() { constraint.WithLogger(nil) })
}

// TestBuildAllEmpty returns an empty map for no images.
func TestBuildAllEmpty(t *testing.T) {
	f, err := constraint.NewFree(3)
	require.NoError(t, err)

	out, err := constraint.BuildAll(context.Background(), f, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
