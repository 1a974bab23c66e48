// Package recent keeps the per-client recent-searches list in Redis.
package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"finsearch/internal/model"
)

const (
	// MaxEntries caps the list; older entries fall off the end.
	MaxEntries = 10

	keyPrefix = "finsearch:recent:"
)

// Store records searches most-recent-first, deduplicated by query plus filter
// set. Updates are read-merge-write on a single key: concurrent writers are
// last-writer-wins, which is accepted behavior.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

// Record inserts the search at the head of clientID's list, removing any
// existing entry with the same query and filters and trimming to MaxEntries.
func (s *Store) Record(ctx context.Context, clientID string, req model.SearchRequest) error {
	entries, err := s.List(ctx, clientID)
	if err != nil {
		return err
	}

	entry := model.RecentSearch{
		Query:     req.Query,
		Source:    req.Source,
		TimeRange: req.TimeRange,
		Sentiment: req.Sentiment,
		Timestamp: s.now(),
	}

	merged := merge(entries, entry)

	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("recent searches marshal: %w", err)
	}
	return s.client.Set(ctx, keyPrefix+clientID, data, 0).Err()
}

// List returns the recent searches for clientID, most recent first.
func (s *Store) List(ctx context.Context, clientID string) ([]model.RecentSearch, error) {
	data, err := s.client.Get(ctx, keyPrefix+clientID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("recent searches get: %w", err)
	}

	var entries []model.RecentSearch
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("recent searches unmarshal: %w", err)
	}
	return entries, nil
}

// merge puts entry at the head, drops any older duplicate of it and caps the
// list at MaxEntries.
func merge(existing []model.RecentSearch, entry model.RecentSearch) []model.RecentSearch {
	merged := []model.RecentSearch{entry}
	for _, e := range existing {
		if sameSearch(e, entry) {
			continue
		}
		merged = append(merged, e)
		if len(merged) == MaxEntries {
			break
		}
	}
	return merged
}

func sameSearch(a, b model.RecentSearch) bool {
	return a.Query == b.Query &&
		a.Source == b.Source &&
		a.TimeRange == b.TimeRange &&
		a.Sentiment == b.Sentiment
}
