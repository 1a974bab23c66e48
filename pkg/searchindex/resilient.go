package searchindex

import (
	"context"
	"log/slog"
	"time"

	"finsearch/internal/model"
)

// Searcher is the request/response contract both backends implement.
type Searcher interface {
	Search(ctx context.Context, req model.SearchRequest) ([]model.Article, error)
	GetArticle(ctx context.Context, id string) (*model.Article, error)
}

// Resilient wraps a primary Searcher with the retry protocol and an optional
// fallback. Callers cannot tell which path served the result; the switch is
// only visible in the logs.
type Resilient struct {
	primary    Searcher
	fallback   Searcher
	maxRetries int
	delay      time.Duration
}

func NewResilient(primary, fallback Searcher, maxRetries int, delay time.Duration) *Resilient {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return &Resilient{
		primary:    primary,
		fallback:   fallback,
		maxRetries: maxRetries,
		delay:      delay,
	}
}

func (r *Resilient) Search(ctx context.Context, req model.SearchRequest) ([]model.Article, error) {
	primary := func(ctx context.Context) ([]model.Article, error) {
		return r.primary.Search(ctx, req)
	}

	var fallback Attempt[[]model.Article]
	if r.fallback != nil {
		fallback = func(ctx context.Context) ([]model.Article, error) {
			slog.Warn("primary search exhausted, serving fallback", "query", req.Query)
			return r.fallback.Search(ctx, req)
		}
	}

	return Do(ctx, primary, fallback, r.maxRetries, r.delay)
}

func (r *Resilient) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	primary := func(ctx context.Context) (*model.Article, error) {
		return r.primary.GetArticle(ctx, id)
	}

	var fallback Attempt[*model.Article]
	if r.fallback != nil {
		fallback = func(ctx context.Context) (*model.Article, error) {
			slog.Warn("primary article fetch exhausted, serving fallback", "article_id", id)
			return r.fallback.GetArticle(ctx, id)
		}
	}

	return Do(ctx, primary, fallback, r.maxRetries, r.delay)
}
