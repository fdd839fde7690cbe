// Package models defines the core data types and analysis logic for
// stringlab, an HTTP service that computes derived properties of text
// strings and serves them from an in-memory store.
package models

import "time"

// Record represents one analyzed string together with its derived
// properties. Records are immutable after creation: there is no update
// operation, only create, fetch, list and delete.
type Record struct {
	// Value is the original string after trimming leading and trailing
	// whitespace. Never empty. It is also the store key.
	Value string `json:"value"`

	// Fingerprint is the lowercase hex SHA-256 digest of the UTF-8
	// bytes of Value. Identical inputs always produce the same
	// fingerprint, so it doubles as a stable identifier.
	Fingerprint string `json:"fingerprint"`

	// Properties holds everything derived from Value at analysis time.
	Properties Properties `json:"properties"`

	// CreatedAt is when the value was first analyzed.
	CreatedAt time.Time `json:"createdAt"`
}

// Properties is the fixed set of values computed from a string.
// All fields are derived from Value; none is stored independently.
type Properties struct {
	// Length is the number of Unicode code points in the value.
	// Code points, not bytes: "héllo" has length 5.
	Length int `json:"length"`

	// IsPalindrome reports whether the value, lower-cased and stripped
	// of everything but ASCII letters and digits, reads the same
	// forwards and backwards. A value that strips to nothing is not a
	// palindrome.
	IsPalindrome bool `json:"isPalindrome"`

	// CharacterFrequency maps each character (as a one-rune string) to
	// its occurrence count. Case-sensitive, no stripping.
	CharacterFrequency map[string]int `json:"characterFrequency"`

	// UniqueCharacterCount is the number of distinct keys in
	// CharacterFrequency.
	UniqueCharacterCount int `json:"uniqueCharacterCount"`

	// WordCount is the number of whitespace-delimited tokens in Value.
	WordCount int `json:"wordCount"`
}
