package mock

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"finsearch/internal/model"
)

func testArticle(headline, company, category, content string) model.Article {
	return model.Article{
		Headline:   headline,
		Content:    content,
		Companies:  []model.Company{{Name: company, Ticker: "TST", Sentiment: "neutral", Mentions: 3}},
		Categories: []string{category},
	}
}

func TestRelevance_EmptyTermsIsNeutral(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := testArticle("Apple Surges", "Apple", "Technology", "Apple had a good quarter.")

	assert.Equal(t, 0.5, relevance(a, nil, rng))
	assert.Equal(t, 0.5, relevance(a, []string{}, rng))
}

func TestRelevance_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	gen := &generator{rng: rng, sampler: &timeSampler{rng: rng, now: time.Now}}

	for i := 0; i < 200; i++ {
		a := gen.article(genSpec{})
		score := relevance(a, []string{"apple", "earnings", "zzz"}, rng)
		if score < 0.1 || score > 1.0 {
			t.Fatalf("score %f out of [0.1, 1.0]", score)
		}
	}
}

func TestRelevance_MatchOutscoresMiss(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	matched := testArticle("Apple Reports Strong Earnings", "Apple", "Technology",
		"Apple exceeded expectations this quarter.")
	unrelated := testArticle("Utility Rates Stabilize", "Intel", "Utilities",
		"Regulators approved new utility rates.")

	terms := []string{"apple"}

	// Headline + exact company + content matches give a base of 0.65;
	// the unrelated article floors at 0.1 and jitter adds at most 10%.
	matchedScore := relevance(matched, terms, rng)
	unrelatedScore := relevance(unrelated, terms, rng)
	assert.Equal(t, true, matchedScore > unrelatedScore+0.1)
}

func TestRelevance_SingleCompanyContributionPerTerm(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	a := model.Article{
		Headline: "Quarterly Roundup",
		Content:  "A look at the quarter.",
		Companies: []model.Company{
			{Name: "Apple", Mentions: 5},
			{Name: "Applied Materials", Mentions: 2},
		},
	}

	// Exact match on "apple" contributes 0.25 once, not once per company.
	score := relevance(a, []string{"apple"}, rng)
	assert.Equal(t, true, score <= 0.25*1.1+0.001)
}

func TestRelevance_SeededJitterIsReproducible(t *testing.T) {
	a := testArticle("Apple Surges", "Apple", "Technology", "Apple had a good quarter.")
	terms := []string{"apple", "technology"}

	first := relevance(a, terms, rand.New(rand.NewSource(42)))
	second := relevance(a, terms, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}
