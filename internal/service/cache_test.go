package service_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"squad-stats-backend/internal/service"
	"squad-stats-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis is an in-memory service.RedisClient
type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestRedisStatsCache_SetGet(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	cache := service.NewRedisStatsCache(rdb, 10*time.Minute)
	teamID := uuid.New()

	_, version, ok := cache.Get(ctx, teamID, "Alex")
	assert.False(t, ok)
	assert.Equal(t, int64(0), version)

	cache.Set(ctx, teamID, version, "Alex", &stats.PlayerSummary{Name: "Alex", TotalGames: 2, Averages: stats.Averages{Points: "15.0"}})

	got, _, ok := cache.Get(ctx, teamID, "Alex")
	require.True(t, ok)
	assert.Equal(t, 2, got.TotalGames)
	assert.Equal(t, "15.0", got.Averages.Points)

	key := "stats:" + teamID.String() + ":v0:player:Alex"
	assert.Equal(t, 10*time.Minute, rdb.ttls[key])
}

func TestRedisStatsCache_InvalidateOrphansEntries(t *testing.T) {
	ctx := context.Background()
	cache := service.NewRedisStatsCache(newFakeRedis(), time.Minute)
	teamID, otherID := uuid.New(), uuid.New()

	cache.Set(ctx, teamID, 0, "Alex", &stats.PlayerSummary{Name: "Alex"})
	cache.Set(ctx, otherID, 0, "Alex", &stats.PlayerSummary{Name: "Alex"})
	cache.Invalidate(ctx, teamID)

	_, version, ok := cache.Get(ctx, teamID, "Alex")
	assert.False(t, ok)
	assert.Equal(t, int64(1), version)
	_, _, ok = cache.Get(ctx, otherID, "Alex")
	assert.True(t, ok)

	cache.Set(ctx, teamID, version, "Alex", &stats.PlayerSummary{Name: "Alex", TotalGames: 3})
	got, _, ok := cache.Get(ctx, teamID, "Alex")
	require.True(t, ok)
	assert.Equal(t, 3, got.TotalGames)
}

func TestRedisStatsCache_SetAfterInvalidateIsOrphaned(t *testing.T) {
	ctx := context.Background()
	cache := service.NewRedisStatsCache(newFakeRedis(), time.Minute)
	teamID := uuid.New()

	_, version, ok := cache.Get(ctx, teamID, "Alex")
	require.False(t, ok)

	cache.Invalidate(ctx, teamID)
	cache.Set(ctx, teamID, version, "Alex", &stats.PlayerSummary{Name: "Alex", TotalGames: 1})

	_, _, ok = cache.Get(ctx, teamID, "Alex")
	assert.False(t, ok)
}

func TestRedisStatsCache_FailuresAreMisses(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	cache := service.NewRedisStatsCache(rdb, time.Minute)
	teamID := uuid.New()

	cache.Set(ctx, teamID, 0, "Alex", &stats.PlayerSummary{Name: "Alex"})
	rdb.failGet = true

	got, version, ok := cache.Get(ctx, teamID, "Alex")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, int64(-1), version)

	// Without a known version nothing is written
	rdb.failGet = false
	cache.Set(ctx, teamID, version, "Ben", &stats.PlayerSummary{Name: "Ben"})
	_, _, ok = cache.Get(ctx, teamID, "Ben")
	assert.False(t, ok)
}

func TestRedisStatsCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	cache := service.NewRedisStatsCache(rdb, time.Minute)
	teamID := uuid.New()
	rdb.data["stats:"+teamID.String()+":v0:player:Alex"] = "{not json"

	_, _, ok := cache.Get(ctx, teamID, "Alex")
	assert.False(t, ok)
}

func TestNoopStatsCache(t *testing.T) {
	var cache service.StatsCache = service.NoopStatsCache{}
	cache.Set(context.Background(), uuid.New(), 0, "Alex", &stats.PlayerSummary{})
	_, _, ok := cache.Get(context.Background(), uuid.New(), "Alex")
	assert.False(t, ok)
}
