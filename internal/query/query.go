// Package query turns a raw search string into normalized terms and matched
// keyword categories.
package query

import (
	"errors"
	"strings"

	"finsearch/internal/catalog"
)

const (
	MinLength = 2
	MaxLength = 100
)

var ErrLength = errors.New("query length out of range")

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"about": true, "from": true, "that": true, "this": true,
}

// Extracted is the immutable result of parsing one query.
type Extracted struct {
	// Keywords are dictionary entries, companies and sectors found by
	// case-insensitive substring match, in catalog order.
	Keywords []string
	// Terms are the normalized search tokens, deduplicated and expanded
	// with companies/sectors tied to matched dictionary keywords.
	Terms []string
}

// Validate rejects non-empty queries outside the accepted length range. An
// empty query is valid and means "match everything".
func Validate(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if len(trimmed) < MinLength || len(trimmed) > MaxLength {
		return ErrLength
	}
	return nil
}

// Extract parses raw into keywords and normalized terms. An empty or
// whitespace query yields empty slices; callers must treat that as
// match-everything, not match-nothing.
func Extract(raw string) Extracted {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Extracted{}
	}

	lower := strings.ToLower(raw)

	var keywords []string
	for _, key := range keywordOrder {
		if strings.Contains(lower, key) {
			keywords = append(keywords, key)
		}
	}
	for _, company := range catalog.Companies {
		if strings.Contains(lower, strings.ToLower(company)) {
			keywords = append(keywords, company)
		}
	}
	for _, sector := range catalog.Sectors {
		if strings.Contains(lower, strings.ToLower(sector)) {
			keywords = append(keywords, sector)
		}
	}

	seen := make(map[string]bool)
	var terms []string
	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	for _, token := range strings.Fields(lower) {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		add(token)
	}

	// Expand with companies and sectors tied to matched dictionary entries.
	for _, term := range append([]string(nil), terms...) {
		mapping, ok := catalog.Keywords[term]
		if !ok {
			continue
		}
		for _, c := range mapping.Companies {
			add(strings.ToLower(c))
		}
		for _, s := range mapping.Sectors {
			add(strings.ToLower(s))
		}
	}

	return Extracted{Keywords: keywords, Terms: terms}
}

// keywordOrder fixes iteration order over the keyword dictionary so that
// extraction output is stable.
var keywordOrder = []string{"earnings", "ai", "market", "energy"}
