package handler

import (
	"time"

	"finsearch/internal/model"
)

type CompanyResponse struct {
	Name      string `json:"name"`
	Ticker    string `json:"ticker"`
	Sentiment string `json:"sentiment"`
	Mentions  int    `json:"mentions"`
}

type ArticleResponse struct {
	ID             string            `json:"id"`
	Headline       string            `json:"headline"`
	URL            string            `json:"url"`
	Snippet        string            `json:"snippet"`
	Content        string            `json:"content,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Source         string            `json:"source"`
	PublishedAt    string            `json:"published_at"`
	Sentiment      string            `json:"sentiment"`
	SentimentScore float64           `json:"sentiment_score"`
	Companies      []CompanyResponse `json:"companies"`
	Categories     []string          `json:"categories"`
	RelevanceScore float64           `json:"relevance_score"`
}

type SearchResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Query    string            `json:"query"`
}

type RecentSearchResponse struct {
	Query     string `json:"query"`
	Source    string `json:"source,omitempty"`
	TimeRange string `json:"time_range,omitempty"`
	Sentiment string `json:"sentiment,omitempty"`
	Timestamp string `json:"timestamp"`
}

func toArticleResponse(a model.Article, includeContent bool) ArticleResponse {
	companies := make([]CompanyResponse, 0, len(a.Companies))
	for _, c := range a.Companies {
		companies = append(companies, CompanyResponse(c))
	}

	res := ArticleResponse{
		ID:             a.ID,
		Headline:       a.Headline,
		URL:            a.URL,
		Snippet:        a.Snippet,
		Summary:        a.Summary,
		Source:         a.Source,
		PublishedAt:    a.PublishedAt.Format(time.RFC3339),
		Sentiment:      a.Sentiment,
		SentimentScore: a.SentimentScore,
		Companies:      companies,
		Categories:     a.Categories,
		RelevanceScore: a.RelevanceScore,
	}
	if includeContent {
		res.Content = a.Content
	}
	return res
}
