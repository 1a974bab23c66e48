package mock

import (
	"strings"
	"time"

	"finsearch/internal/model"
)

// timeCutoff maps a time-range token to the oldest acceptable publish time.
// Unknown tokens, "all" and the empty string disable the filter.
func timeCutoff(timeRange string, now time.Time) (time.Time, bool) {
	switch timeRange {
	case "day":
		return now.AddDate(0, 0, -1), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// matchesFilters reports whether the article satisfies every active filter.
// Filters are a strict conjunction.
func matchesFilters(a model.Article, req model.SearchRequest, now time.Time) bool {
	if req.Source != "" && a.Source != req.Source {
		return false
	}
	if cutoff, ok := timeCutoff(req.TimeRange, now); ok && a.PublishedAt.Before(cutoff) {
		return false
	}
	if req.Sentiment != "" && req.Sentiment != "all" &&
		!strings.EqualFold(a.Sentiment, req.Sentiment) {
		return false
	}
	return true
}

// applyFilters returns a new slice holding the articles that satisfy every
// active filter. The input is never mutated.
func applyFilters(articles []model.Article, req model.SearchRequest, now time.Time) []model.Article {
	filtered := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if matchesFilters(a, req, now) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
