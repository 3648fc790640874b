// Package rules holds the deterministic heuristic classifiers for the
// judgment pipeline. Every classifier is a pure function over an
// injectable rule table, so behavior can be extended in tests without
// touching control flow. There is intentionally no ML here: the gates
// must stay auditable and reproducible.
package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule pairs a match pattern with the category it signals.
type Rule struct {
	Pattern  string
	Category string
}

// Ruleset is an ordered list of rules. Matching walks the list in
// order and returns the first hit.
type Ruleset []Rule

// MatchSubstring returns the first rule whose pattern occurs anywhere
// in the text, case-insensitively.
func (rs Ruleset) MatchSubstring(text string) (Rule, bool) {
	lower := strings.ToLower(text)
	for _, r := range rs {
		if strings.Contains(lower, strings.ToLower(r.Pattern)) {
			return r, true
		}
	}
	return Rule{}, false
}

// MatchWord returns the first rule whose pattern occurs in the text as
// a whole word (word-boundary semantics), case-insensitively.
func (rs Ruleset) MatchWord(text string) (Rule, bool) {
	lower := strings.ToLower(text)
	for _, r := range rs {
		if containsWord(lower, strings.ToLower(r.Pattern)) {
			return r, true
		}
	}
	return Rule{}, false
}

// containsWord reports whether pattern occurs in text delimited by
// non-letter, non-digit runes on both sides. Both arguments must
// already be lowercased.
func containsWord(text, pattern string) bool {
	if pattern == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], pattern)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(pattern)

		leftOK := i == 0
		if !leftOK {
			r, _ := utf8.DecodeLastRuneInString(text[:i])
			leftOK = !isWordRune(r)
		}
		rightOK := end == len(text)
		if !rightOK {
			r, _ := utf8.DecodeRuneInString(text[end:])
			rightOK = !isWordRune(r)
		}
		if leftOK && rightOK {
			return true
		}
		start = i + 1
		if start >= len(text) {
			return false
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenize splits text into lowercase word tokens, stripping
// punctuation.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r) && r != '\''
	})
}

func containsDigit(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
