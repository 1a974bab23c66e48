package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finsearch/internal/catalog"
	"finsearch/internal/model"
	"finsearch/internal/query"
	"finsearch/pkg/searchindex"
)

// Searcher is the search backend contract; the mock engine and the live
// index client both satisfy it.
type Searcher interface {
	Search(ctx context.Context, req model.SearchRequest) ([]model.Article, error)
	GetArticle(ctx context.Context, id string) (*model.Article, error)
}

type RecentStore interface {
	Record(ctx context.Context, clientID string, req model.SearchRequest) error
	List(ctx context.Context, clientID string) ([]model.RecentSearch, error)
}

type SearchHandler struct {
	searcher Searcher
	recent   RecentStore
	mode     string
}

// NewSearchHandler builds the handler. recent may be nil when no redis is
// configured; recent-search recording is then skipped.
func NewSearchHandler(searcher Searcher, recent RecentStore, mode string) *SearchHandler {
	return &SearchHandler{searcher: searcher, recent: recent, mode: mode}
}

func (h *SearchHandler) Search(c *gin.Context) {
	req := model.SearchRequest{
		Query:     c.Query("query"),
		Source:    c.Query("source"),
		TimeRange: c.Query("time_range"),
		Sentiment: c.Query("sentiment"),
	}

	if err := query.Validate(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query length must be between 2 and 100 characters"})
		return
	}

	articles, err := h.searcher.Search(c.Request.Context(), req)
	if err != nil {
		slog.Error("error executing search", "query", req.Query, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search backend error"})
		return
	}

	h.recordSearch(c.Request.Context(), clientID(c), req)

	res := SearchResponse{
		Articles: make([]ArticleResponse, 0, len(articles)),
		Total:    len(articles),
		Query:    req.Query,
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, toArticleResponse(a, false))
	}

	c.JSON(http.StatusOK, res)
}

func (h *SearchHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.searcher.GetArticle(c.Request.Context(), id)
	if errors.Is(err, searchindex.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if err != nil {
		slog.Error("error fetching article", "article_id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search backend error"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article, true))
}

func (h *SearchHandler) GetSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": catalog.Sources})
}

func (h *SearchHandler) GetRecent(c *gin.Context) {
	if h.recent == nil {
		c.JSON(http.StatusOK, gin.H{"searches": []RecentSearchResponse{}})
		return
	}

	entries, err := h.recent.List(c.Request.Context(), clientID(c))
	if err != nil {
		slog.Error("error listing recent searches", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	res := make([]RecentSearchResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, RecentSearchResponse{
			Query:     e.Query,
			Source:    e.Source,
			TimeRange: e.TimeRange,
			Sentiment: e.Sentiment,
			Timestamp: e.Timestamp.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"searches": res})
}

func (h *SearchHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"backend": h.mode,
	})
}

// recordSearch is best effort: a storage hiccup must not fail the search.
func (h *SearchHandler) recordSearch(ctx context.Context, clientID string, req model.SearchRequest) {
	if h.recent == nil || req.Query == "" {
		return
	}
	if err := h.recent.Record(ctx, clientID, req); err != nil {
		slog.Warn("error recording recent search", "error", err)
	}
}

func clientID(c *gin.Context) string {
	if id := c.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return "anonymous"
}
