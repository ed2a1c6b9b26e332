// SPDX-License-Identifier: MIT

package vocab

import "errors"

var (
	// ErrDuplicateToken is returned when a vocabulary lists a token twice.
	ErrDuplicateToken = errors.New("vocab: duplicate token")

	// ErrMalformedLine is returned when a word-form line lacks the
	// canonical<TAB>forms layout.
	ErrMalformedLine = errors.New("vocab: malformed line")

	// ErrEmptyVocabulary is returned when a vocabulary would hold no real tokens.
	ErrEmptyVocabulary = errors.New("vocab: empty vocabulary")
)
