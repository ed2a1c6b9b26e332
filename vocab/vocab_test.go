package vocab_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lexfsm/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewVocabularyReserved checks padding/unknown placement and lookup.
func TestNewVocabularyReserved(t *testing.T) {
	v, err := vocab.NewVocabulary([]string{"a", "dog", "frisbee"})
	require.NoError(t, err)

	assert.Equal(t, 5, v.Size())
	assert.Equal(t, 0, v.TokenID(vocab.PaddingToken))
	assert.Equal(t, 1, v.UnknownID())
	assert.Equal(t, 3, v.TokenID("dog"))
	assert.Equal(t, v.UnknownID(), v.TokenID("cat"))
	assert.Equal(t, "frisbee", v.Token(4))
	assert.Equal(t, "", v.Token(99))
}

// TestNewVocabularyListedUnknown keeps the listed position of the unknown token.
func TestNewVocabularyListedUnknown(t *testing.T) {
	v, err := vocab.NewVocabulary([]string{"a", vocab.UnknownToken, "b"})
	require.NoError(t, err)

	assert.Equal(t, 4, v.Size())
	assert.Equal(t, 2, v.UnknownID())
	assert.Equal(t, 1, v.TokenID("a"))
}

// TestNewVocabularyErrors covers empty and duplicate inputs.
func TestNewVocabularyErrors(t *testing.T) {
	_, err := vocab.NewVocabulary(nil)
	require.ErrorIs(t, err, vocab.ErrEmptyVocabulary)

	_, err = vocab.NewVocabulary([]string{"a", "b", "a"})
	require.ErrorIs(t, err, vocab.ErrDuplicateToken)
}

// TestLoadVocabulary reads a token-per-line stream.
func TestLoadVocabulary(t *testing.T) {
	src := "@@UNKNOWN@@\nthe\n\n  dog \nstove\n"
	v, err := vocab.LoadVocabulary(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 5, v.Size())
	assert.Equal(t, 1, v.UnknownID())
	assert.Equal(t, 3, v.TokenID("dog"))
}

// TestLoadVocabularyFile round-trips through the filesystem.
func TestLoadVocabularyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.txt")
	require.NoError(t, os.WriteFile(path, []byte("dog\ncat\n"), 0o600))

	v, err := vocab.LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, v.TokenID("cat"))

	_, err = vocab.LoadVocabularyFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

// TestLoadWordForms parses the canonical<TAB>forms layout.
func TestLoadWordForms(t *testing.T) {
	src := "dog\tdog,dogs\n\nstove\tstove, stoves,\n"
	wf, err := vocab.LoadWordForms(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 2, wf.Len())
	assert.Equal(t, []string{"dog", "dogs"}, wf.FormsOf("dog"))
	assert.Equal(t, []string{"stove", "stoves"}, wf.FormsOf("stove"))
	assert.Equal(t, []string{"cat"}, wf.FormsOf("cat"))
}

// TestLoadWordFormsMalformed reports the offending line number.
func TestLoadWordFormsMalformed(t *testing.T) {
	_, err := vocab.LoadWordForms(strings.NewReader("dog\tdogs\ncat dogs\n"))
	require.ErrorIs(t, err, vocab.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, err = vocab.LoadWordForms(strings.NewReader("\tdogs\n"))
	require.ErrorIs(t, err, vocab.ErrMalformedLine)
}

// TestFormsOfFallback covers nil tables and empty form lists.
func TestFormsOfFallback(t *testing.T) {
	var nilForms *vocab.WordForms
	assert.Equal(t, []string{"x"}, nilForms.FormsOf("x"))

	wf := vocab.NewWordForms(map[string][]string{"y": {}})
	assert.Equal(t, []string{"y"}, wf.FormsOf("y"))
}

// TestNormalize covers case folding, NFKC and whitespace collapsing.
func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Wood   Burning Stove ": "wood burning stove",
		"ＤＯＧ":                   "dog",
		"Human eye":              "human eye",
		"":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, vocab.Normalize(in), "input %q", in)
	}
	assert.Equal(t, []string{"wood", "burning", "stove"}, vocab.Words("wood burning stove"))
	assert.Empty(t, vocab.Words("   "))
}
