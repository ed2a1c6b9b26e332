// SPDX-License-Identifier: MIT

package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WordForms maps a canonical word to its accepted surface forms
// (e.g. "dog" → dog, dogs).
type WordForms struct {
	forms map[string][]string
}

// NewWordForms wraps an in-memory table. The map is copied.
func NewWordForms(table map[string][]string) *WordForms {
	wf := &WordForms{forms: make(map[string][]string, len(table))}
	for k, v := range table {
		wf.forms[k] = append([]string(nil), v...)
	}

	return wf
}

// LoadWordForms parses lines of the form
//
//	canonical<TAB>form1,form2,...
//
// Blank lines are skipped. A line without a tab, or with an empty canonical
// word, yields ErrMalformedLine annotated with its 1-based line number.
// Empty forms inside the list are dropped.
func LoadWordForms(r io.Reader) (*WordForms, error) {
	wf := &WordForms{forms: make(map[string][]string)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		key, list, ok := strings.Cut(text, "\t")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("LoadWordForms: line %d: %w", line, ErrMalformedLine)
		}
		var forms []string
		for _, f := range strings.Split(list, ",") {
			if f = strings.TrimSpace(f); f != "" {
				forms = append(forms, f)
			}
		}
		wf.forms[key] = forms
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadWordForms: %w", err)
	}

	return wf, nil
}

// LoadWordFormsFile opens path and delegates to LoadWordForms.
func LoadWordFormsFile(path string) (*WordForms, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadWordFormsFile: %w", err)
	}
	defer f.Close()

	return LoadWordForms(f)
}

// FormsOf returns the surface forms of word in table order. Words absent from
// the table (or listed with no forms) are their own sole form.
// The returned slice must not be modified.
func (wf *WordForms) FormsOf(word string) []string {
	if wf != nil {
		if forms, ok := wf.forms[word]; ok && len(forms) > 0 {
			return forms
		}
	}

	return []string{word}
}

// Len returns the number of canonical words in the table.
func (wf *WordForms) Len() int { return len(wf.forms) }
