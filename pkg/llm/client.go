// Package llm generates article summaries and sentiment scores used to
// enrich documents before indexing.
package llm

type SummarizeInput struct {
	Headline string
	Content  string
}

type SummarizeResult struct {
	// Summary is at most ~100 words.
	Summary string
	// SentimentScore is in [-1.0, 1.0].
	SentimentScore float64
	PromptVersion  string
	ModelUsed      string
}

type Summarizer interface {
	Summarize(input SummarizeInput) (*SummarizeResult, error)
}
