// SPDX-License-Identifier: MIT

package vocab

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC, lower-cases and collapses runs of whitespace to a
// single space. It is the canonical form phrases take before lookup.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	// cases.Caser is stateful; a fresh one per call keeps Normalize goroutine-safe.
	s = cases.Lower(language.Und).String(s)

	return strings.Join(strings.Fields(s), " ")
}

// Words splits a normalized phrase into its words.
func Words(phrase string) []string {
	return strings.Fields(phrase)
}
