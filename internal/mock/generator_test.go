package mock

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"finsearch/internal/model"
)

func testGenerator(seed int64, now time.Time) *generator {
	rng := rand.New(rand.NewSource(seed))
	return &generator{
		rng:     rng,
		sampler: &timeSampler{rng: rng, now: func() time.Time { return now }},
	}
}

func TestArticle_SentimentScoreMatchesLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(1, now)

	for i := 0; i < 200; i++ {
		a := g.article(genSpec{})
		switch a.Sentiment {
		case model.SentimentPositive:
			if a.SentimentScore < 0.3 || a.SentimentScore > 1.0 {
				t.Fatalf("positive score %f out of range", a.SentimentScore)
			}
		case model.SentimentNegative:
			if a.SentimentScore < -1.0 || a.SentimentScore > -0.3 {
				t.Fatalf("negative score %f out of range", a.SentimentScore)
			}
		case model.SentimentNeutral:
			if a.SentimentScore < -0.3 || a.SentimentScore > 0.3 {
				t.Fatalf("neutral score %f out of range", a.SentimentScore)
			}
		default:
			t.Fatalf("unknown sentiment %q", a.Sentiment)
		}
	}
}

func TestArticle_ForcedBiases(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(2, now)

	for i := 0; i < 50; i++ {
		a := g.article(genSpec{company: "Tesla", sentiment: model.SentimentNegative})
		assert.Equal(t, "Tesla", a.Companies[0].Name)
		assert.Equal(t, model.SentimentNegative, a.Sentiment)
	}
}

func TestArticle_TermCompanyWins(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(3, now)

	a := g.article(genSpec{terms: []string{"quarterly", "microsoft"}})
	assert.Equal(t, "Microsoft", a.Companies[0].Name)
}

func TestArticle_ExtraCompaniesMentionedLess(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(4, now)

	for i := 0; i < 200; i++ {
		a := g.article(genSpec{})
		primary := a.Companies[0]
		for _, extra := range a.Companies[1:] {
			if extra.Mentions >= primary.Mentions {
				t.Fatalf("extra company %q has %d mentions, primary has %d",
					extra.Name, extra.Mentions, primary.Mentions)
			}
			assert.NotEqual(t, primary.Name, extra.Name)
		}
	}
}

func TestArticle_Shape(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(5, now)

	for i := 0; i < 100; i++ {
		a := g.article(genSpec{keyword: "earnings"})

		assert.NotEqual(t, "", a.ID)
		assert.NotEqual(t, "", a.Headline)
		assert.NotEqual(t, "", a.Source)
		assert.Equal(t, true, len(a.Companies) >= 1)
		assert.Equal(t, true, len(a.Categories) >= 1)

		if a.PublishedAt.After(now) {
			t.Fatalf("article published in the future: %v", a.PublishedAt)
		}
		if len(a.Snippet) > snippetLength+3 {
			t.Fatalf("snippet too long: %d chars", len(a.Snippet))
		}
	}
}

func TestArticle_TrendingKeywordStaysRecent(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(6, now)

	oldest := now.AddDate(0, 0, -(trendingHorizon + 1))
	for i := 0; i < 200; i++ {
		a := g.article(genSpec{keyword: "ai"})
		if a.PublishedAt.Before(oldest) {
			t.Fatalf("trending article published %v, older than %v", a.PublishedAt, oldest)
		}
	}
}

func TestWithPublishedWithin(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	g := testGenerator(7, now)

	window := 24 * time.Hour
	for i := 0; i < 100; i++ {
		a := g.withPublishedWithin(g.article(genSpec{}), window, now)
		if a.PublishedAt.After(now) || a.PublishedAt.Before(now.Add(-window)) {
			t.Fatalf("timestamp %v outside window", a.PublishedAt)
		}
	}
}
