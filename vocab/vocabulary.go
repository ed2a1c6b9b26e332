// SPDX-License-Identifier: MIT

// Package vocab holds the read-only lookup tables an automaton builder needs:
// the token vocabulary (word → id, with a reserved unknown id), the word-form
// table (canonical word → accepted surface forms) and text normalization.
//
// Tables are loaded once during process initialization and never mutated
// afterwards, so a single instance may be shared by any number of builders
// running in parallel.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reserved tokens. Padding always occupies index 0.
const (
	PaddingToken = "@@PADDING@@"
	UnknownToken = "@@UNKNOWN@@"
)

// Vocabulary maps words to dense integer token ids.
type Vocabulary struct {
	tokens  []string
	index   map[string]int
	unknown int
}

// NewVocabulary builds a Vocabulary from tokens in id order, starting at 1.
// Index 0 is the padding token. If UnknownToken is not listed it is inserted
// right after padding, shifting the remaining ids by one.
// Returns ErrEmptyVocabulary or ErrDuplicateToken.
func NewVocabulary(tokens []string) (*Vocabulary, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyVocabulary
	}
	v := &Vocabulary{
		tokens: make([]string, 0, len(tokens)+2),
		index:  make(map[string]int, len(tokens)+2),
	}
	v.add(PaddingToken)
	if !contains(tokens, UnknownToken) {
		v.add(UnknownToken)
	}
	for _, tok := range tokens {
		if _, dup := v.index[tok]; dup {
			return nil, fmt.Errorf("NewVocabulary: %q: %w", tok, ErrDuplicateToken)
		}
		v.add(tok)
	}
	v.unknown = v.index[UnknownToken]

	return v, nil
}

// LoadVocabulary reads one token per line; blank lines are skipped and
// surrounding whitespace is trimmed.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tok := strings.TrimSpace(sc.Text())
		if tok == "" || tok == PaddingToken {
			continue
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadVocabulary: %w", err)
	}

	return NewVocabulary(tokens)
}

// LoadVocabularyFile opens path and delegates to LoadVocabulary.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadVocabularyFile: %w", err)
	}
	defer f.Close()

	return LoadVocabulary(f)
}

// TokenID returns the id of word, or UnknownID for out-of-vocabulary words.
func (v *Vocabulary) TokenID(word string) int {
	if id, ok := v.index[word]; ok {
		return id
	}

	return v.unknown
}

// Token returns the word for id, or "" when id is out of range.
func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.tokens) {
		return ""
	}

	return v.tokens[id]
}

// UnknownID returns the reserved id for out-of-vocabulary words.
func (v *Vocabulary) UnknownID() int { return v.unknown }

// Size returns V, the number of ids including the reserved ones.
func (v *Vocabulary) Size() int { return len(v.tokens) }

func (v *Vocabulary) add(tok string) {
	v.index[tok] = len(v.tokens)
	v.tokens = append(v.tokens, tok)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}

	return false
}
