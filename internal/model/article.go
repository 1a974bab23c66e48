package model

import "time"

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

const (
	StatusPending = "pending"
	StatusIndexed = "indexed"
	StatusFailed  = "failed"
)

// Boundaries of the sentiment score sub-ranges implied by each label:
// positive (0.3, 1.0], negative [-1.0, -0.3), neutral [-0.3, 0.3].
const (
	PositiveScoreMin = 0.3
	NegativeScoreMax = -0.3
)

// Company is a company mentioned in an article. Mentions is always >= 1.
type Company struct {
	Name      string `json:"name"`
	Ticker    string `json:"ticker"`
	Sentiment string `json:"sentiment"`
	Mentions  int    `json:"mentions"`
}

// Article is a search result. RelevanceScore is computed per query and is
// meaningless outside the search that produced it.
type Article struct {
	ID             string    `json:"id"`
	Headline       string    `json:"headline"`
	URL            string    `json:"url"`
	Content        string    `json:"content"`
	Snippet        string    `json:"snippet"`
	Summary        string    `json:"summary,omitempty"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"published_at"`
	Sentiment      string    `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	Companies      []Company `json:"companies"`
	Categories     []string  `json:"categories"`
	RelevanceScore float64   `json:"relevance_score"`
}

// SearchRequest carries one search invocation. Empty filter fields (or the
// literal "all") mean the filter is not applied. Immutable once built.
type SearchRequest struct {
	Query     string
	Source    string
	TimeRange string
	Sentiment string
}

// ArchivedArticle is a fetched article stored in postgres before indexing.
type ArchivedArticle struct {
	ID          int64
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
	FetchedAt   time.Time
	ExternalID  string
	Status      string
}

// RecentSearch is one entry in the recent-searches list.
type RecentSearch struct {
	Query     string    `json:"query"`
	Source    string    `json:"source,omitempty"`
	TimeRange string    `json:"time_range,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
