package news

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// maxFeedAge drops stale feed entries before they reach the archive.
const maxFeedAge = 7 * 24 * time.Hour

// RSSClient fetches one publisher's RSS feed.
type RSSClient struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSClient(feedURL string) *RSSClient {
	return &RSSClient{feedURL: feedURL, parser: gofeed.NewParser()}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch %s: %w", c.feedURL, err)
	}

	publisher := feed.Title
	if publisher == "" {
		publisher = hostOf(c.feedURL)
	}

	now := time.Now()
	cutoff := now.Add(-maxFeedAge)

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if limit > 0 && len(articles) >= limit {
			break
		}

		published := now
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		if published.Before(cutoff) {
			continue
		}

		articles = append(articles, Article{
			ExternalID:  externalID(item.Link),
			Headline:    item.Title,
			Detail:      strings.TrimSpace(item.Description),
			URL:         item.Link,
			Source:      c.Name(),
			Publisher:   publisher,
			PublishedAt: published,
			Symbols:     []string{},
		})
	}

	return articles, nil
}

func externalID(link string) string {
	sum := sha256.Sum256([]byte(link))
	return fmt.Sprintf("%x", sum)[:16]
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Host
}
