package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"finsearch/db"
	"finsearch/internal/config"
	"finsearch/internal/model"
	"finsearch/internal/repository"
	"finsearch/pkg/news"
)

const fetchLimit = 50

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.ConnectRedis(cfg.RedisURL); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var clients []news.Client
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnhubClient(cfg.FinnhubAPIKey))
	}
	for _, feed := range cfg.RSSFeeds {
		clients = append(clients, news.NewRSSClient(feed))
	}

	if len(clients) == 0 {
		slog.Error("no news sources configured")
		return
	}

	repo := repository.NewArticleRepository(db.DB)
	ctx := context.Background()

	for _, client := range clients {
		source := client.Name()

		fetched, err := client.Fetch(ctx, fetchLimit)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var saved, duplicated, errors int

		for _, a := range fetched {
			article := model.ArchivedArticle{
				Headline:    a.Headline,
				Detail:      a.Detail,
				URL:         a.URL,
				Source:      a.Source,
				Publisher:   a.Publisher,
				PublishedAt: a.PublishedAt,
				ExternalID:  a.ExternalID,
			}

			success, err := repo.SaveWithSymbols(&article, a.Symbols)
			if err != nil {
				slog.Error("error saving article", "source", source, "error", err)
				errors++
				continue
			}

			if !success {
				slog.Info("duplicate article skipped", "source", source, "url", a.URL)
				duplicated++
				continue
			}

			saved++

			err = db.PushToQueue(db.IndexQueueKey, strconv.FormatInt(article.ID, 10))
			if err != nil {
				slog.Error("error pushing to index queue", "source", source, "error", err, "article_id", article.ID)
				errors++
			}
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "errors", errors)
	}
}
