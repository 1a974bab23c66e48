package query

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestExtract_EmptyQuery(t *testing.T) {
	ex := Extract("")
	assert.Equal(t, 0, len(ex.Keywords))
	assert.Equal(t, 0, len(ex.Terms))

	ex = Extract("   ")
	assert.Equal(t, 0, len(ex.Keywords))
	assert.Equal(t, 0, len(ex.Terms))
}

func TestExtract_StopWordsAndShortTokens(t *testing.T) {
	ex := Extract("the news for AI and tech")

	for _, term := range ex.Terms {
		assert.NotEqual(t, "the", term)
		assert.NotEqual(t, "and", term)
		assert.NotEqual(t, "for", term)
		// "AI" is two characters and dropped from terms even though the
		// keyword dictionary still matches it by substring.
		assert.NotEqual(t, "ai", term)
	}
}

func TestExtract_CompanyKeyword(t *testing.T) {
	ex := Extract("Apple earnings report")

	found := false
	for _, k := range ex.Keywords {
		if k == "Apple" {
			found = true
		}
	}
	assert.Equal(t, true, found)

	found = false
	for _, k := range ex.Keywords {
		if k == "earnings" {
			found = true
		}
	}
	assert.Equal(t, true, found)
}

func TestExtract_TermsLowercasedAndDeduplicated(t *testing.T) {
	ex := Extract("Tesla TESLA tesla")
	assert.Equal(t, []string{"tesla"}, ex.Terms)
}

func TestExtract_KeywordExpansion(t *testing.T) {
	ex := Extract("earnings season")

	// Companies tied to the earnings dictionary entry join the term set.
	hasApple := false
	for _, term := range ex.Terms {
		if term == "apple" {
			hasApple = true
		}
	}
	assert.Equal(t, true, hasApple)

	// Original tokens come first.
	assert.Equal(t, "earnings", ex.Terms[0])
	assert.Equal(t, "season", ex.Terms[1])
}

func TestExtract_SectorMatch(t *testing.T) {
	ex := Extract("technology stocks")
	assert.Equal(t, true, len(ex.Keywords) >= 1)
	assert.Equal(t, "Technology", ex.Keywords[len(ex.Keywords)-1])
}

func TestValidate(t *testing.T) {
	assert.Equal(t, nil, Validate(""))
	assert.Equal(t, nil, Validate("   "))
	assert.Equal(t, nil, Validate("ok"))
	assert.Equal(t, nil, Validate(strings.Repeat("a", 100)))

	assert.NotEqual(t, nil, Validate("a"))
	assert.NotEqual(t, nil, Validate(strings.Repeat("a", 101)))
}
