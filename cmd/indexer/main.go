package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"finsearch/db"
	"finsearch/internal/config"
	"finsearch/internal/model"
	"finsearch/internal/repository"
	"finsearch/pkg/llm"
	"finsearch/pkg/searchindex"
)

const (
	maxRetries  = 3
	popTimeout  = 30 * time.Second
	snippetSize = 120
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	if err := db.ConnectRedis(cfg.RedisURL); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	repo := repository.NewArticleRepository(db.DB)
	index := searchindex.NewClient(cfg.SearchURL, cfg.SearchAPIKey, cfg.SearchIndex)
	summarizer := buildSummarizer(cfg)

	ctx := context.Background()

	for {
		id, err := db.PopFromQueue(db.IndexQueueKey, popTimeout)
		if err != nil {
			slog.Error("error popping from index queue", "error", err)
			break
		}

		articleID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid article id in queue", "id", id, "error", err)
			continue
		}

		errorCount, err := repo.GetErrorCount(articleID)
		if err != nil {
			slog.Error("error getting error count", "error", err, "article_id", articleID)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("article exceeded max retries, marking as failed", "article_id", articleID, "error_count", errorCount)
			repo.UpdateStatus(articleID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		article, err := repo.GetByID(articleID)
		if err != nil {
			slog.Error("error getting article from DB", "error", err, "article_id", articleID)
			continue
		}

		if article == nil {
			slog.Warn("article not found in DB", "article_id", articleID)
			continue
		}

		symbols, err := repo.GetSymbols(articleID)
		if err != nil {
			slog.Error("error getting symbols", "error", err, "article_id", articleID)
			continue
		}

		result, err := summarizer.Summarize(llm.SummarizeInput{
			Headline: article.Headline,
			Content:  article.Detail,
		})
		if err != nil {
			slog.Error("error summarizing article", "error", err, "article_id", articleID)
			repo.SaveError(articleID, err.Error(), "summarize")
			db.PushToQueue(db.IndexQueueKey, id)
			continue
		}

		doc := buildDocument(article, symbols, result)

		if err := index.IndexArticle(ctx, article.ExternalID, doc); err != nil {
			slog.Error("error indexing article", "error", err, "article_id", articleID)
			repo.SaveError(articleID, err.Error(), "index")
			db.PushToQueue(db.IndexQueueKey, id)
			continue
		}

		if err := repo.UpdateStatus(articleID, model.StatusIndexed); err != nil {
			slog.Error("error updating article status", "error", err, "article_id", articleID)
			continue
		}

		slog.Info("article indexed", "article_id", articleID, "model", result.ModelUsed)
	}
}

func buildSummarizer(cfg config.Config) llm.Summarizer {
	if cfg.OpenAIAPIKey != "" {
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}
	if cfg.AnthropicAPIKey != "" {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	log.Fatal("no LLM API key configured")
	return nil
}

// buildDocument maps an archived article plus its LLM enrichment into the
// search index document shape.
func buildDocument(a *model.ArchivedArticle, symbols []string, result *llm.SummarizeResult) model.Article {
	sentiment := model.SentimentNeutral
	if result.SentimentScore > model.PositiveScoreMin {
		sentiment = model.SentimentPositive
	} else if result.SentimentScore < model.NegativeScoreMax {
		sentiment = model.SentimentNegative
	}

	snippet := a.Detail
	if len(snippet) > snippetSize {
		snippet = snippet[:snippetSize] + "..."
	}

	companies := make([]model.Company, 0, len(symbols))
	for _, symbol := range symbols {
		companies = append(companies, model.Company{
			Name:      symbol,
			Ticker:    strings.ToUpper(symbol),
			Sentiment: sentiment,
			Mentions:  1,
		})
	}

	return model.Article{
		ID:             a.ExternalID,
		Headline:       a.Headline,
		URL:            a.URL,
		Content:        a.Detail,
		Snippet:        snippet,
		Summary:        result.Summary,
		Source:         a.Publisher,
		PublishedAt:    a.PublishedAt,
		Sentiment:      sentiment,
		SentimentScore: result.SentimentScore,
		Companies:      companies,
		Categories:     []string{},
	}
}
