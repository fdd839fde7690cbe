package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// Analyze computes the full property set for a raw string and returns
// the resulting Record. It is pure and deterministic: the same input
// always yields the same record, apart from CreatedAt. Validation that
// the trimmed value is non-empty is the caller's responsibility;
// Analyze never touches the store.
func Analyze(raw string) *Record {
	value := strings.TrimSpace(raw)

	freq := characterFrequency(value)

	return &Record{
		Value:       value,
		Fingerprint: Fingerprint(value),
		Properties: Properties{
			Length:               utf8.RuneCountInString(value),
			IsPalindrome:         isPalindrome(value),
			CharacterFrequency:   freq,
			UniqueCharacterCount: len(freq),
			WordCount:            len(strings.Fields(value)),
		},
		CreatedAt: time.Now(),
	}
}

// Fingerprint returns the lowercase hex SHA-256 digest of the UTF-8
// encoding of value.
func Fingerprint(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:])
}

// isPalindrome lower-cases the value, strips every rune that is not an
// ASCII letter or digit, and compares the result to its own reversal.
// A value that strips to nothing (e.g. "!!!") is never a palindrome.
func isPalindrome(value string) bool {
	var stripped []rune
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			stripped = append(stripped, r)
		}
	}

	if len(stripped) == 0 {
		return false
	}

	for i, j := 0, len(stripped)-1; i < j; i, j = i+1, j-1 {
		if stripped[i] != stripped[j] {
			return false
		}
	}
	return true
}

// characterFrequency counts occurrences per rune, case-sensitively.
// Keys are one-rune strings so the map serializes as a JSON object.
func characterFrequency(value string) map[string]int {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}
	return freq
}
