package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"finsearch/db"
	"finsearch/internal/config"
	"finsearch/internal/handler"
	"finsearch/internal/mock"
	"finsearch/internal/recent"
	"finsearch/pkg/searchindex"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	searcher := buildSearcher(cfg)

	var recentStore handler.RecentStore
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(cfg.RedisURL); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		recentStore = recent.NewStore(db.Redis)
	} else {
		slog.Warn("REDIS_URL not set, recent searches disabled")
	}

	searchHandler := handler.NewSearchHandler(searcher, recentStore, cfg.Mode)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Client-ID"},
	}))

	r.GET("/search", searchHandler.Search)
	r.GET("/articles/:id", searchHandler.GetArticle)
	r.GET("/sources", searchHandler.GetSources)
	r.GET("/recent", searchHandler.GetRecent)
	r.GET("/health", searchHandler.GetHealth)

	slog.Info("starting search API", "mode", cfg.Mode, "port", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// buildSearcher selects the backend: the live index wrapped with retries and
// a fallback, or the mock engine when no index is configured. The mock engine
// doubles as the fallback when no secondary endpoint exists, matching its
// role as the development substitute.
func buildSearcher(cfg config.Config) handler.Searcher {
	if cfg.Mode != config.ModeLive {
		return mock.NewEngine()
	}

	primary := searchindex.NewClient(cfg.SearchURL, cfg.SearchAPIKey, cfg.SearchIndex)

	var fallback searchindex.Searcher
	if cfg.SearchFallbackURL != "" {
		fallback = searchindex.NewClient(cfg.SearchFallbackURL, cfg.SearchAPIKey, cfg.SearchIndex)
	} else {
		fallback = mock.NewEngine()
	}

	return searchindex.NewResilient(primary, fallback, cfg.MaxRetries, cfg.RetryDelay)
}
