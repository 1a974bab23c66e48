// Package searchindex talks to an Elasticsearch-compatible search index over
// its REST API and provides the retry-with-fallback protocol used when a
// primary endpoint is unreachable.
package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"finsearch/internal/model"
)

var ErrNotFound = errors.New("article not found")

const searchSize = 20

var timeRangeTokens = map[string]string{
	"day":   "now-1d",
	"week":  "now-7d",
	"month": "now-30d",
	"year":  "now-365d",
}

type Client struct {
	baseURL    string
	apiKey     string
	index      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, index string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		index:      index,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Search runs the query against the index: multi-field match plus term and
// range filters, capped at 20 hits, newest first.
func (c *Client) Search(ctx context.Context, req model.SearchRequest) ([]model.Article, error) {
	body, err := json.Marshal(buildSearchBody(req))
	if err != nil {
		return nil, fmt.Errorf("search index marshal: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/_search", c.baseURL, c.index)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("search index request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search index fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: readSnippet(resp.Body)}
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("search index decode: %w", err)
	}

	articles := make([]model.Article, 0, len(raw.Hits.Hits))
	for _, hit := range raw.Hits.Hits {
		a := hit.Source
		a.ID = hit.ID
		a.RelevanceScore = hit.Score
		articles = append(articles, a)
	}
	return articles, nil
}

// GetArticle fetches a single document by id. Unknown ids yield ErrNotFound.
func (c *Client) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	endpoint := fmt.Sprintf("%s/%s/_doc/%s", c.baseURL, c.index, url.PathEscape(id))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search index request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search index fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: readSnippet(resp.Body)}
	}

	var raw docResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("search index decode: %w", err)
	}

	a := raw.Source
	a.ID = raw.ID
	return &a, nil
}

// IndexArticle stores one document, used by the indexing pipeline.
func (c *Client) IndexArticle(ctx context.Context, id string, article model.Article) error {
	body, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("search index marshal: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/_doc/%s", c.baseURL, c.index, url.PathEscape(id))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("search index request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("search index fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &StatusError{Code: resp.StatusCode, Body: readSnippet(resp.Body)}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "ApiKey "+c.apiKey)
	}
}

func buildSearchBody(req model.SearchRequest) map[string]any {
	must := []map[string]any{
		{
			"multi_match": map[string]any{
				"query":     req.Query,
				"fields":    []string{"headline^2", "content", "summary^1.5"},
				"fuzziness": "AUTO",
			},
		},
	}

	if req.Source != "" {
		must = append(must, map[string]any{
			"term": map[string]any{"source": req.Source},
		})
	}

	if gte, ok := timeRangeTokens[req.TimeRange]; ok {
		must = append(must, map[string]any{
			"range": map[string]any{
				"published_at": map[string]any{"gte": gte, "lte": "now"},
			},
		})
	}

	if req.Sentiment != "" && req.Sentiment != "all" {
		must = append(must, map[string]any{
			"term": map[string]any{"sentiment": req.Sentiment},
		})
	}

	return map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"size":  searchSize,
		"sort": []map[string]any{
			{"published_at": map[string]any{"order": "desc"}},
		},
	}
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return string(b)
}

type searchResponse struct {
	Hits struct {
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

type searchHit struct {
	ID     string        `json:"_id"`
	Score  float64       `json:"_score"`
	Source model.Article `json:"_source"`
}

type docResponse struct {
	ID     string        `json:"_id"`
	Source model.Article `json:"_source"`
}
