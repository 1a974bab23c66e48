// Package news fetches financial articles from external providers into the
// archive pipeline.
package news

import (
	"context"
	"time"
)

type Article struct {
	ExternalID  string
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
	Symbols     []string
}

type Client interface {
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}
