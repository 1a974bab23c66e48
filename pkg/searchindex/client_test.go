package searchindex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"

	"finsearch/internal/model"
)

func TestClient_Search(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/financial_news/_search", r.URL.Path)
		assert.Equal(t, "ApiKey secret", r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]any{
			"hits": map[string]any{
				"hits": []map[string]any{
					{
						"_id":    "doc-1",
						"_score": 0.91,
						"_source": map[string]any{
							"headline": "Apple Reports Earnings",
							"source":   "Reuters",
						},
					},
					{
						"_id":    "doc-2",
						"_score": 0.42,
						"_source": map[string]any{
							"headline": "Markets Close Mixed",
							"source":   "Bloomberg",
						},
					},
				},
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", "financial_news")
	articles, err := c.Search(context.Background(), model.SearchRequest{
		Query:     "apple earnings",
		Source:    "Reuters",
		TimeRange: "week",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "doc-1", articles[0].ID)
	assert.Equal(t, 0.91, articles[0].RelevanceScore)
	assert.Equal(t, "Apple Reports Earnings", articles[0].Headline)
	assert.Equal(t, "doc-2", articles[1].ID)

	// The filters made it into the query body.
	boolQuery := gotBody["query"].(map[string]any)["bool"].(map[string]any)
	must := boolQuery["must"].([]any)
	assert.Equal(t, 3, len(must))
}

func TestClient_SearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "financial_news")
	_, err := c.Search(context.Background(), model.SearchRequest{Query: "apple"})

	var status *StatusError
	assert.Equal(t, true, errors.As(err, &status))
	assert.Equal(t, http.StatusServiceUnavailable, status.Code)
}

func TestClient_GetArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/financial_news/_doc/doc-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"_id": "doc-1",
			"_source": map[string]any{
				"headline": "Apple Reports Earnings",
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "financial_news")
	a, err := c.GetArticle(context.Background(), "doc-1")
	assert.Equal(t, nil, err)
	assert.Equal(t, "doc-1", a.ID)
	assert.Equal(t, "Apple Reports Earnings", a.Headline)
}

func TestClient_GetArticleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "financial_news")
	_, err := c.GetArticle(context.Background(), "missing")
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestClient_IndexArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/financial_news/_doc/ext-9", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "financial_news")
	err := c.IndexArticle(context.Background(), "ext-9", model.Article{Headline: "x"})
	assert.Equal(t, nil, err)
}

func TestBuildSearchBody_AllTokenSkipsSentiment(t *testing.T) {
	body := buildSearchBody(model.SearchRequest{Query: "apple", Sentiment: "all"})
	must := body["query"].(map[string]any)["bool"].(map[string]any)["must"].([]map[string]any)
	assert.Equal(t, 1, len(must))
}
