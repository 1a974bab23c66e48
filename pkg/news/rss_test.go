package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Example Finance</title>
<item>
	<title>Fresh Headline</title>
	<link>http://example.com/fresh</link>
	<description>  Something happened.  </description>
	<pubDate>%s</pubDate>
</item>
<item>
	<title>Stale Headline</title>
	<link>http://example.com/stale</link>
	<description>Old news.</description>
	<pubDate>%s</pubDate>
</item>
</channel>
</rss>`

func TestRSSClient_Fetch(t *testing.T) {
	fresh := time.Now().Add(-2 * time.Hour).Format(time.RFC1123Z)
	stale := time.Now().Add(-30 * 24 * time.Hour).Format(time.RFC1123Z)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, feedTemplate, fresh, stale)
	}))
	defer server.Close()

	c := NewRSSClient(server.URL)
	articles, err := c.Fetch(context.Background(), 10)
	assert.Equal(t, nil, err)

	// Entries older than the feed age cap are dropped.
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Fresh Headline", a.Headline)
	assert.Equal(t, "Something happened.", a.Detail)
	assert.Equal(t, "http://example.com/fresh", a.URL)
	assert.Equal(t, "RSS", a.Source)
	assert.Equal(t, "Example Finance", a.Publisher)
	assert.Equal(t, 16, len(a.ExternalID))
}

func TestRSSClient_FetchRespectsLimit(t *testing.T) {
	now := time.Now().Add(-time.Hour).Format(time.RFC1123Z)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, feedTemplate, now, now)
	}))
	defer server.Close()

	c := NewRSSClient(server.URL)
	articles, err := c.Fetch(context.Background(), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
}

func TestExternalID_StableAndDistinct(t *testing.T) {
	assert.Equal(t, externalID("http://example.com/a"), externalID("http://example.com/a"))
	assert.NotEqual(t, externalID("http://example.com/a"), externalID("http://example.com/b"))
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "feeds.example.com", hostOf("https://feeds.example.com/markets.xml"))
}
