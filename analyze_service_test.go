package main

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orian/stringlab/models"
)

func TestParseCreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{
			name: "plain value",
			body: `{"value": "hello"}`,
			want: "hello",
		},
		{
			name: "value is trimmed",
			body: `{"value": "  hello world  "}`,
			want: "hello world",
		},
		{
			name:    "missing field",
			body:    `{}`,
			wantErr: models.ErrMissingField,
		},
		{
			name:    "null value",
			body:    `{"value": null}`,
			wantErr: models.ErrMissingField,
		},
		{
			name:    "wrong type number",
			body:    `{"value": 42}`,
			wantErr: models.ErrWrongType,
		},
		{
			name:    "wrong type array",
			body:    `{"value": ["a"]}`,
			wantErr: models.ErrWrongType,
		},
		{
			name:    "empty string",
			body:    `{"value": ""}`,
			wantErr: models.ErrEmptyValue,
		},
		{
			name:    "whitespace only",
			body:    `{"value": "   "}`,
			wantErr: models.ErrEmptyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCreateRequest(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListFilters(t *testing.T) {
	tests := []struct {
		name    string
		params  url.Values
		want    models.FilterSet
		wantErr error
	}{
		{
			name:   "no params",
			params: url.Values{},
			want:   models.FilterSet{},
		},
		{
			name:   "palindrome true",
			params: url.Values{"is_palindrome": {"true"}},
			want:   models.FilterSet{IsPalindrome: boolp(true)},
		},
		{
			name:   "palindrome false",
			params: url.Values{"is_palindrome": {"false"}},
			want:   models.FilterSet{IsPalindrome: boolp(false)},
		},
		{
			name:    "palindrome invalid",
			params:  url.Values{"is_palindrome": {"yes"}},
			wantErr: models.ErrInvalidFilterValue,
		},
		{
			name:   "integer bounds",
			params: url.Values{"min_length": {"3"}, "max_length": {"10"}},
			want:   models.FilterSet{MinLength: intp(3), MaxLength: intp(10)},
		},
		{
			name:    "min length not an integer",
			params:  url.Values{"min_length": {"three"}},
			wantErr: models.ErrInvalidFilterValue,
		},
		{
			name:    "word count not an integer",
			params:  url.Values{"word_count": {"1.5"}},
			wantErr: models.ErrInvalidFilterValue,
		},
		{
			name:   "contains character",
			params: url.Values{"contains_character": {"x"}},
			want:   models.FilterSet{ContainsCharacter: "x"},
		},
		{
			name:    "contains character too long",
			params:  url.Values{"contains_character": {"xy"}},
			wantErr: models.ErrInvalidFilterValue,
		},
		{
			name:    "inverted bounds conflict",
			params:  url.Values{"min_length": {"10"}, "max_length": {"2"}},
			wantErr: models.ErrConflictingFilters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseListFilters(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func boolp(b bool) *bool { return &b }
func intp(i int) *int    { return &i }

func TestBuildListResponse(t *testing.T) {
	records := []*models.Record{models.Analyze("hello")}
	filters := &models.FilterSet{WordCount: intp(1)}

	got := buildListResponse(records, filters)
	assert.Equal(t, records, got["data"])
	assert.Equal(t, 1, got["count"])
	assert.Equal(t, filters, got["filtersApplied"])

	// Nil record slices render as an empty list, not null.
	empty := buildListResponse(nil, filters)
	assert.Equal(t, []*models.Record{}, empty["data"])
	assert.Equal(t, 0, empty["count"])
}

func TestBuildQueryResponse(t *testing.T) {
	records := []*models.Record{models.Analyze("racecar")}
	filters := &models.FilterSet{IsPalindrome: boolp(true)}

	got := buildQueryResponse(records, filters, "all palindromes")
	assert.Equal(t, records, got["data"])
	assert.Equal(t, 1, got["count"])
	assert.Equal(t, filters, got["interpretedFilters"])
	assert.Equal(t, "all palindromes", got["originalQuery"])
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   StoreStats
	}{
		{
			name: "empty store",
			want: StoreStats{},
		},
		{
			name:   "mixed records",
			values: []string{"racecar", "hello world"},
			want: StoreStats{
				TotalRecords:    2,
				PalindromeCount: 1,
				TotalLength:     18,
				AverageLength:   9,
				TotalWords:      3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []*models.Record
			for _, v := range tt.values {
				records = append(records, models.Analyze(v))
			}
			assert.Equal(t, tt.want, computeStats(records))
		})
	}
}
