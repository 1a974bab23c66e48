// Package config gathers all environment-derived settings into one struct
// read once at startup. Nothing else in the tree touches os.Getenv.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ModeMock = "mock"
	ModeLive = "live"
)

type Config struct {
	Port        string
	FrontendURL string

	DatabaseURL string
	RedisURL    string

	// Search backend selection. Mode defaults to mock when no search URL
	// is configured.
	Mode              string
	SearchURL         string
	SearchFallbackURL string
	SearchAPIKey      string
	SearchIndex       string
	MaxRetries        int
	RetryDelay        time.Duration

	FinnhubAPIKey   string
	RSSFeeds        []string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

func Load() Config {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		Mode:              getenv("SEARCH_MODE", ""),
		SearchURL:         os.Getenv("SEARCH_URL"),
		SearchFallbackURL: os.Getenv("SEARCH_FALLBACK_URL"),
		SearchAPIKey:      os.Getenv("SEARCH_API_KEY"),
		SearchIndex:       getenv("SEARCH_INDEX", "financial_news"),
		MaxRetries:        getint("SEARCH_MAX_RETRIES", 3),
		RetryDelay:        time.Duration(getint("SEARCH_RETRY_DELAY_MS", 1000)) * time.Millisecond,
		FinnhubAPIKey:     os.Getenv("FINNHUB_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
	}

	if feeds := os.Getenv("RSS_FEEDS"); feeds != "" {
		for _, feed := range strings.Split(feeds, ",") {
			if feed = strings.TrimSpace(feed); feed != "" {
				cfg.RSSFeeds = append(cfg.RSSFeeds, feed)
			}
		}
	}

	if cfg.Mode == "" {
		if cfg.SearchURL != "" {
			cfg.Mode = ModeLive
		} else {
			cfg.Mode = ModeMock
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
