package models

import (
	"regexp"
	"strconv"
	"strings"
)

// The interpreter is deliberately a flat, ordered list of keyword
// rules, not real natural-language parsing. Each rule inspects the
// lower-cased query independently and contributes at most one filter;
// when two rules write the same field, the later rule wins. Keeping
// the rule set small and literal is the point: its behavior is easy to
// predict and easy to test.
var (
	containsCharRe = regexp.MustCompile(`(?:contains|containing|has|with)\s+(?:the\s+)?(?:letter|character)\s+([a-z0-9])\b`)
	longerThanRe   = regexp.MustCompile(`(?:longer|greater)\s+than\s+(\d+)`)
	shorterThanRe  = regexp.MustCompile(`(?:shorter|less)\s+than\s+(\d+)`)
	exactLengthRe  = regexp.MustCompile(`(?:exactly\s+)?(\d+)\s+characters?\b`)
)

// Interpret translates a free-text query into a FilterSet. It returns
// ErrMissingQuery for blank input, ErrUnparsableQuery when no rule
// matched, and ErrConflictingFilters when the extracted length bounds
// contradict each other. Pure text-to-structure translation; the store
// is never consulted.
func Interpret(freeText string) (*FilterSet, error) {
	query := strings.ToLower(strings.TrimSpace(freeText))
	if query == "" {
		return nil, ErrMissingQuery
	}

	filters := &FilterSet{}

	if strings.Contains(query, "palindrome") || strings.Contains(query, "palindromic") {
		filters.IsPalindrome = boolPtr(true)
	}

	if strings.Contains(query, "single word") || strings.Contains(query, "one word") {
		filters.WordCount = intPtr(1)
	}

	if m := containsCharRe.FindStringSubmatch(query); m != nil {
		filters.ContainsCharacter = m[1]
	}

	// Known quirk: "first vowel" always means the literal character
	// 'a', regardless of the record's actual vowels. Kept for
	// compatibility with existing callers.
	if strings.Contains(query, "first vowel") {
		filters.ContainsCharacter = "a"
	}

	if m := longerThanRe.FindStringSubmatch(query); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			filters.MinLength = intPtr(n + 1)
		}
	}

	if m := shorterThanRe.FindStringSubmatch(query); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			filters.MaxLength = intPtr(n - 1)
		}
	}

	if m := exactLengthRe.FindStringSubmatch(query); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			filters.MinLength = intPtr(n)
			filters.MaxLength = intPtr(n)
		}
	}

	if err := filters.Validate(); err != nil {
		return nil, err
	}

	if filters.IsEmpty() {
		return nil, ErrUnparsableQuery
	}

	return filters, nil
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
