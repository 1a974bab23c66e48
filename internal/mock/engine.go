// Package mock implements the development search backend: it fabricates a
// candidate article pool per search, scores it against the query and runs the
// same filter pipeline the live index applies server-side.
package mock

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"finsearch/internal/catalog"
	"finsearch/internal/model"
	"finsearch/internal/query"
)

const (
	minPoolSize = 15
	// Pre-filter pools hold 15-25 candidates.
	poolSpread = 11
	// Candidate pools are oversized by this factor so low-relevance
	// articles can be dropped.
	overGenerate = 1.5
	// Articles scoring at or below this are discarded from keyword pools.
	relevanceFloor = 0.2
	// Fraction of a batch stamped with the bucketed time spread.
	spreadFraction = 0.2
	// Filtered results are padded up to this minimum when the pool allows.
	minResults = 3
)

// Engine generates, scores and filters synthetic articles. Each search builds
// its own rng and candidate pool, so concurrent searches share nothing.
type Engine struct {
	newRand func() *rand.Rand
	now     func() time.Time
}

type Option func(*Engine)

// WithRand replaces the per-search rng constructor. Tests pass a seeded
// source to make generation and jitter reproducible.
func WithRand(fn func() *rand.Rand) Option {
	return func(e *Engine) { e.newRand = fn }
}

func WithNow(fn func() time.Time) Option {
	return func(e *Engine) { e.now = fn }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search builds a fresh candidate pool for the query, scores it, applies the
// filters as a conjunction and returns the survivors sorted by relevance
// descending. The pool is discarded afterwards; nothing is cached.
func (e *Engine) Search(ctx context.Context, req model.SearchRequest) ([]model.Article, error) {
	if err := query.Validate(req.Query); err != nil {
		return nil, err
	}

	rng := e.newRand()
	now := e.now()
	sampler := &timeSampler{rng: rng, now: e.now}
	gen := &generator{rng: rng, sampler: sampler}

	extracted := query.Extract(req.Query)

	var pool []model.Article
	if len(extracted.Keywords) > 0 {
		pool = e.keywordPool(gen, rng, extracted)
	} else {
		count := minPoolSize + rng.Intn(poolSpread)
		pool = relevantPool(gen, rng, count, extracted.Terms, "")
	}

	// A slice of every batch gets the bucketed spread so a results page
	// shows articles across the whole horizon.
	spread := sampler.sampleSpread(int(float64(len(pool)) * spreadFraction))
	for i, ts := range spread {
		if !ts.After(now) {
			pool[i].PublishedAt = ts
		}
	}

	filtered := applyFilters(pool, req, now)
	filtered = e.backfill(gen, rng, filtered, pool, extracted.Terms, req, now)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].RelevanceScore > filtered[j].RelevanceScore
	})
	return filtered, nil
}

// GetArticle fabricates an article for the given id. The mock path has no
// store, so any id resolves.
func (e *Engine) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	rng := e.newRand()
	sampler := &timeSampler{rng: rng, now: e.now}
	gen := &generator{rng: rng, sampler: sampler}

	a := gen.article(genSpec{})
	a.ID = id
	a.RelevanceScore = relevance(a, nil, rng)
	return &a, nil
}

// keywordPool builds the candidate pool when the query matched a known
// company, sector or dictionary keyword.
func (e *Engine) keywordPool(gen *generator, rng *rand.Rand, ex query.Extracted) []model.Article {
	count := minPoolSize + rng.Intn(poolSpread)
	primary := ex.Keywords[0]

	if name, ok := catalog.IsCompany(primary); ok {
		pool := make([]model.Article, 0, count)
		for i := 0; i < count; i++ {
			a := gen.article(genSpec{terms: ex.Terms, company: name})
			a.RelevanceScore = relevance(a, ex.Terms, rng)
			pool = append(pool, a)
		}
		return pool
	}

	if sector, ok := catalog.IsSector(primary); ok {
		pool := make([]model.Article, 0, count)
		for i := 0; i < count; i++ {
			a := gen.article(genSpec{terms: ex.Terms})
			if i < int(float64(count)*0.8) {
				a.Categories = []string{sector}
			}
			a.RelevanceScore = relevance(a, ex.Terms, rng)
			pool = append(pool, a)
		}
		return pool
	}

	return relevantPool(gen, rng, count, ex.Terms, primary)
}

// relevantPool over-generates, drops low-relevance candidates and keeps the
// best count articles.
func relevantPool(gen *generator, rng *rand.Rand, count int, terms []string, keyword string) []model.Article {
	target := int(float64(count) * overGenerate)
	pool := make([]model.Article, 0, target)
	for i := 0; i < target; i++ {
		a := gen.article(genSpec{terms: terms, keyword: keyword})
		a.RelevanceScore = relevance(a, terms, rng)
		if a.RelevanceScore > relevanceFloor {
			pool = append(pool, a)
		}
	}

	sort.Slice(pool, func(i, j int) bool {
		return pool[i].RelevanceScore > pool[j].RelevanceScore
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// backfill guarantees a non-degenerate result set: when filtering left fewer
// than minResults articles and the pool was non-empty, 3-5 extra articles are
// synthesized to satisfy every active filter.
func (e *Engine) backfill(gen *generator, rng *rand.Rand, filtered, pool []model.Article,
	terms []string, req model.SearchRequest, now time.Time) []model.Article {

	if len(filtered) >= minResults || len(pool) == 0 {
		return filtered
	}

	seedTerms := strings.Fields(strings.ToLower(pool[0].Headline))
	extra := minResults + rng.Intn(3)

	for i := 0; i < extra; i++ {
		spec := genSpec{terms: seedTerms}
		if req.Sentiment != "" && req.Sentiment != "all" {
			spec.sentiment = strings.ToLower(req.Sentiment)
		}
		a := gen.article(spec)
		if req.Source != "" {
			a.Source = req.Source
		}
		if cutoff, ok := timeCutoff(req.TimeRange, now); ok {
			a = gen.withPublishedWithin(a, now.Sub(cutoff), now)
		}
		a.RelevanceScore = relevance(a, terms, rng)
		filtered = append(filtered, a)
	}
	return filtered
}
