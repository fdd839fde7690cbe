package main

import (
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/orian/stringlab/models"
)

// CreateRequest represents the incoming request for analyzing a string.
// Value is a pointer so an absent field can be told apart from an
// empty one.
type CreateRequest struct {
	Value *string `json:"value"`
}

// QueryRequest represents the incoming natural-language filter request.
type QueryRequest struct {
	Query string `json:"query"`
}

// parseCreateRequest reads and validates the create body. It returns
// the trimmed value, or one of ErrWrongType (value is not a string),
// ErrMissingField (no value field) and ErrEmptyValue (blank after
// trimming).
func parseCreateRequest(body io.Reader) (string, error) {
	var req CreateRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return "", errors.Wrapf(models.ErrWrongType, "field %q must be a string, got %s", "value", typeErr.Value)
		}
		return "", errors.Wrap(err, "invalid JSON body")
	}

	if req.Value == nil {
		return "", errors.Wrapf(models.ErrMissingField, "field %q is required", "value")
	}

	value := strings.TrimSpace(*req.Value)
	if value == "" {
		return "", errors.Wrapf(models.ErrEmptyValue, "field %q must not be blank", "value")
	}

	return value, nil
}

// parseListFilters converts the list endpoint's query parameters into
// a typed FilterSet. Every parameter is optional; a present parameter
// that fails to parse yields ErrInvalidFilterValue, and a length
// window with min above max yields ErrConflictingFilters. Untyped
// parameter bags never reach the filter engine.
func parseListFilters(params url.Values) (*models.FilterSet, error) {
	filters := &models.FilterSet{}

	if raw := params.Get("is_palindrome"); raw != "" {
		switch raw {
		case "true":
			b := true
			filters.IsPalindrome = &b
		case "false":
			b := false
			filters.IsPalindrome = &b
		default:
			return nil, errors.Wrapf(models.ErrInvalidFilterValue, "is_palindrome must be true or false, got %q", raw)
		}
	}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"min_length", &filters.MinLength},
		{"max_length", &filters.MaxLength},
		{"word_count", &filters.WordCount},
	} {
		raw := params.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(models.ErrInvalidFilterValue, "%s must be an integer, got %q", p.name, raw)
		}
		*p.dst = &n
	}

	if raw := params.Get("contains_character"); raw != "" {
		if utf8.RuneCountInString(raw) != 1 {
			return nil, errors.Wrapf(models.ErrInvalidFilterValue, "contains_character must be a single character, got %q", raw)
		}
		filters.ContainsCharacter = raw
	}

	if err := filters.Validate(); err != nil {
		return nil, err
	}

	return filters, nil
}

// buildListResponse shapes the filtered listing together with a count
// and an echo of the applied filters.
func buildListResponse(records []*models.Record, filters *models.FilterSet) map[string]interface{} {
	if records == nil {
		records = []*models.Record{}
	}
	return map[string]interface{}{
		"data":           records,
		"count":          len(records),
		"filtersApplied": filters,
	}
}

// buildQueryResponse shapes the natural-language filter result,
// echoing both the interpreted filter set and the original query text.
func buildQueryResponse(records []*models.Record, filters *models.FilterSet, originalQuery string) map[string]interface{} {
	if records == nil {
		records = []*models.Record{}
	}
	return map[string]interface{}{
		"data":               records,
		"count":              len(records),
		"interpretedFilters": filters,
		"originalQuery":      originalQuery,
	}
}

// StoreStats summarizes the current store contents.
type StoreStats struct {
	TotalRecords    int     `json:"totalRecords"`
	PalindromeCount int     `json:"palindromeCount"`
	TotalLength     int     `json:"totalLength"`
	AverageLength   float64 `json:"averageLength"`
	TotalWords      int     `json:"totalWords"`
}

// computeStats aggregates property counters over all records.
func computeStats(records []*models.Record) StoreStats {
	stats := StoreStats{TotalRecords: len(records)}

	for _, record := range records {
		if record.Properties.IsPalindrome {
			stats.PalindromeCount++
		}
		stats.TotalLength += record.Properties.Length
		stats.TotalWords += record.Properties.WordCount
	}

	if stats.TotalRecords > 0 {
		stats.AverageLength = float64(stats.TotalLength) / float64(stats.TotalRecords)
	}

	return stats
}
