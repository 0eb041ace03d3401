// =============================================================================
// goAML Report Validator - Word Dictionary
// =============================================================================
//
// Natural-language word lookup used by the account-number heuristic: an
// identifier carrying almost no digits but containing real words is likely a
// placeholder or a name pasted into the account field, not an account number.
//
// The dictionary is a one-time resource loaded at startup (one word per
// line); the rest of the engine only sees the set-membership interface.
//
// =============================================================================

package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MinWordLength is the shortest substring considered by ScanIdentifier.
// Shorter fragments match too many incidental letter runs to be useful.
const MinWordLength = 5

// Dictionary answers set-membership queries for natural-language words.
type Dictionary interface {
	Contains(word string) bool
}

// Set is an in-memory Dictionary backed by a lowercase string set.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words. Lookups are case-insensitive.
func New(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// Load reads a dictionary file with one word per line. Blank lines and lines
// starting with '#' are skipped.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	s := &Set{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		s.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return s, nil
}

// Contains reports whether word is in the set, ignoring case.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words loaded.
func (s *Set) Len() int {
	return len(s.words)
}

// ScanIdentifier reports whether any contiguous substring of the identifier,
// MinWordLength characters or longer, is a dictionary word. The scan is
// case-insensitive. A nil dictionary never matches.
func ScanIdentifier(d Dictionary, identifier string) bool {
	if d == nil {
		return false
	}
	text := strings.ToLower(identifier)
	for start := 0; start < len(text); start++ {
		for end := start + MinWordLength; end <= len(text); end++ {
			if d.Contains(text[start:end]) {
				return true
			}
		}
	}
	return false
}
