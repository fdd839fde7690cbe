package models

import "strings"

// FilterSet is a typed collection of optional predicates over records.
// Nil pointer fields (and the empty ContainsCharacter) mean "not set".
// Set predicates combine with logical AND.
type FilterSet struct {
	IsPalindrome *bool `json:"isPalindrome,omitempty"`

	// MinLength and MaxLength bound Properties.Length inclusively.
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	WordCount *int `json:"wordCount,omitempty"`

	// ContainsCharacter keeps records whose lower-cased value contains
	// this character, lower-cased. Single character.
	ContainsCharacter string `json:"containsCharacter,omitempty"`
}

// IsEmpty reports whether no predicate is set.
func (f *FilterSet) IsEmpty() bool {
	return f.IsPalindrome == nil &&
		f.MinLength == nil &&
		f.MaxLength == nil &&
		f.WordCount == nil &&
		f.ContainsCharacter == ""
}

// Validate rejects filter sets that can never match. The only such
// case is a length window with min above max.
func (f *FilterSet) Validate() error {
	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		return ErrConflictingFilters
	}
	return nil
}

// Apply returns the records matching every set predicate, as an
// order-preserving subsequence of the input.
func (f *FilterSet) Apply(records []*Record) []*Record {
	var matched []*Record
	for _, record := range records {
		if f.Matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Matches reports whether a single record satisfies every set predicate.
func (f *FilterSet) Matches(record *Record) bool {
	p := record.Properties

	if f.IsPalindrome != nil && p.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && p.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && p.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && p.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != "" {
		needle := strings.ToLower(f.ContainsCharacter)
		if !strings.Contains(strings.ToLower(record.Value), needle) {
			return false
		}
	}
	return true
}
