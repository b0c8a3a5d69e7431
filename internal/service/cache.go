package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"squad-stats-backend/internal/logger"
	"squad-stats-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of go-redis used by RedisStatsCache
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisStatsCache keeps player summaries in redis. Each team has a version
// counter that is part of every summary key, so bumping it orphans all cached
// summaries of that team until they expire.
type RedisStatsCache struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisStatsCache creates a redis backed cache; ttl 0 means no expiry
func NewRedisStatsCache(client RedisClient, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

func versionKey(teamID uuid.UUID) string {
	return fmt.Sprintf("stats:%s:version", teamID)
}

func summaryKey(teamID uuid.UUID, version int64, playerName string) string {
	return fmt.Sprintf("stats:%s:v%d:player:%s", teamID, version, playerName)
}

func (c *RedisStatsCache) version(ctx context.Context, teamID uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(teamID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Get returns the cached summary, if any, together with the team's version
// at lookup time. The version is -1 when redis could not be read.
func (c *RedisStatsCache) Get(ctx context.Context, teamID uuid.UUID, playerName string) (*stats.PlayerSummary, int64, bool) {
	log := logger.WithContext(ctx).WithField("team_id", teamID)

	version, err := c.version(ctx, teamID)
	if err != nil {
		log.WithError(err).Warn("stats cache version lookup failed")
		return nil, -1, false
	}

	raw, err := c.client.Get(ctx, summaryKey(teamID, version, playerName)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).Warn("stats cache read failed")
		}
		return nil, version, false
	}

	var summary stats.PlayerSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		log.WithError(err).Warn("stats cache entry is corrupt")
		return nil, version, false
	}
	return &summary, version, true
}

// Set stores a summary under version, which must be the one Get returned
// before the games were read. An invalidation in between leaves the entry
// under an orphaned version.
func (c *RedisStatsCache) Set(ctx context.Context, teamID uuid.UUID, version int64, playerName string, summary *stats.PlayerSummary) {
	if version < 0 {
		return
	}
	log := logger.WithContext(ctx).WithField("team_id", teamID)

	raw, err := json.Marshal(summary)
	if err != nil {
		log.WithError(err).Warn("stats cache encode failed")
		return
	}

	if err := c.client.Set(ctx, summaryKey(teamID, version, playerName), raw, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("stats cache write failed")
	}
}

// Invalidate bumps the team's version
func (c *RedisStatsCache) Invalidate(ctx context.Context, teamID uuid.UUID) {
	if err := c.client.Incr(ctx, versionKey(teamID)).Err(); err != nil {
		logger.WithContext(ctx).WithField("team_id", teamID).WithError(err).Warn("stats cache invalidation failed")
	}
}

// NoopStatsCache never stores anything
type NoopStatsCache struct{}

func (NoopStatsCache) Get(context.Context, uuid.UUID, string) (*stats.PlayerSummary, int64, bool) {
	return nil, 0, false
}
func (NoopStatsCache) Set(context.Context, uuid.UUID, int64, string, *stats.PlayerSummary) {}
func (NoopStatsCache) Invalidate(context.Context, uuid.UUID)                               {}
