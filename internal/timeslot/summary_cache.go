package timeslot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryCache stores daily availability summaries. Implementations are best effort:
// a failing cache degrades to recomputing from the store.
//
// Every invalidation bumps the tournament's generation. A reader captures the
// generation before it queries the store and passes it to Set, which drops the
// summary if an invalidation happened in between.
type SummaryCache interface {
	Get(ctx context.Context, tournamentID uint, day time.Time) (*AvailabilitySummary, bool, error)
	Generation(ctx context.Context, tournamentID uint) (int64, error)
	Set(ctx context.Context, day time.Time, summary *AvailabilitySummary, generation int64) error
	InvalidateTournament(ctx context.Context, tournamentID uint) error
}

// NoopSummaryCache never hits.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(context.Context, uint, time.Time) (*AvailabilitySummary, bool, error) {
	return nil, false, nil
}

func (NoopSummaryCache) Generation(context.Context, uint) (int64, error) {
	return 0, nil
}

func (NoopSummaryCache) Set(context.Context, time.Time, *AvailabilitySummary, int64) error {
	return nil
}

func (NoopSummaryCache) InvalidateTournament(context.Context, uint) error {
	return nil
}

const summaryKeyPrefix = "courtplan:schedule"

var errStaleSummary = errors.New("schedule summary generation changed")

// RedisSummaryCache keeps one JSON value per (tournament, day), a set per tournament
// tracking which day keys exist so a slot mutation can drop them all, and a
// generation counter per tournament. The counter has no TTL so it never goes back.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

func summaryKey(tournamentID uint, day time.Time) string {
	return fmt.Sprintf("%s:%d:%s", summaryKeyPrefix, tournamentID, day.Format(time.RFC3339))
}

func trackingKey(tournamentID uint) string {
	return fmt.Sprintf("%s:%d:days", summaryKeyPrefix, tournamentID)
}

func generationKey(tournamentID uint) string {
	return fmt.Sprintf("%s:%d:gen", summaryKeyPrefix, tournamentID)
}

func (c *RedisSummaryCache) Get(ctx context.Context, tournamentID uint, day time.Time) (*AvailabilitySummary, bool, error) {
	raw, err := c.client.Get(ctx, summaryKey(tournamentID, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get schedule summary: %w", err)
	}

	var summary AvailabilitySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("decode schedule summary: %w", err)
	}
	return &summary, true, nil
}

// Generation returns 0 for a tournament that was never invalidated.
func (c *RedisSummaryCache) Generation(ctx context.Context, tournamentID uint) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(tournamentID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get schedule generation: %w", err)
	}
	return gen, nil
}

// Set writes the summary under WATCH on the generation key. A summary computed
// before the latest invalidation is silently discarded.
func (c *RedisSummaryCache) Set(ctx context.Context, day time.Time, summary *AvailabilitySummary, generation int64) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode schedule summary: %w", err)
	}

	key := summaryKey(summary.TournamentID, day)
	tracking := trackingKey(summary.TournamentID)
	genKey := generationKey(summary.TournamentID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleSummary
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			pipe.SAdd(ctx, tracking, key)
			pipe.Expire(ctx, tracking, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case errors.Is(err, errStaleSummary), errors.Is(err, redis.TxFailedErr):
		return nil
	case err != nil:
		return fmt.Errorf("store schedule summary: %w", err)
	}
	return nil
}

// InvalidateTournament bumps the generation first, so a reader racing with it can
// no longer store its summary, then drops every cached day.
func (c *RedisSummaryCache) InvalidateTournament(ctx context.Context, tournamentID uint) error {
	if err := c.client.Incr(ctx, generationKey(tournamentID)).Err(); err != nil {
		return fmt.Errorf("bump schedule generation: %w", err)
	}

	tracking := trackingKey(tournamentID)
	keys, err := c.client.SMembers(ctx, tracking).Result()
	if err != nil {
		return fmt.Errorf("list cached schedule days: %w", err)
	}
	keys = append(keys, tracking)

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate schedule summaries: %w", err)
	}
	return nil
}
