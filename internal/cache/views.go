package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"recipehub/internal/trending"
)

const (
	viewsKey    = "recipe:views"
	trendingKey = "trending:scores"
)

// RecipeCache keeps hot read-state in Redis: per-recipe view deltas not yet
// flushed to Postgres, and the last trending leaderboard snapshot.
type RecipeCache struct {
	client      *redis.Client
	snapshotTTL time.Duration
}

// NewRecipeCache connects to Redis and verifies the connection. snapshotTTL
// bounds how long a stale leaderboard survives a dead worker.
func NewRecipeCache(addr, password string, snapshotTTL time.Duration) (*RecipeCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if snapshotTTL <= 0 {
		snapshotTTL = 30 * time.Minute
	}

	return &RecipeCache{client: rdb, snapshotTTL: snapshotTTL}, nil
}

func (c *RecipeCache) Close() error {
	return c.client.Close()
}

// IncrementView bumps the pending view delta for a recipe.
func (c *RecipeCache) IncrementView(ctx context.Context, recipeID string) error {
	return c.client.HIncrBy(ctx, viewsKey, recipeID, 1).Err()
}

// DrainViews atomically reads and clears all pending view deltas.
func (c *RecipeCache) DrainViews(ctx context.Context) (map[string]int64, error) {
	pipe := c.client.TxPipeline()
	getAll := pipe.HGetAll(ctx, viewsKey)
	pipe.Del(ctx, viewsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to drain view counters: %w", err)
	}

	raw := getAll.Val()
	deltas := make(map[string]int64, len(raw))
	for recipeID, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		deltas[recipeID] = n
	}
	return deltas, nil
}

// WriteSnapshot replaces the trending leaderboard sorted set.
func (c *RecipeCache) WriteSnapshot(ctx context.Context, scores []trending.ScoredRecipe) error {
	members := make([]redis.Z, 0, len(scores))
	for _, s := range scores {
		members = append(members, redis.Z{Score: s.Score, Member: s.RecipeID})
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, trendingKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, trendingKey, members...)
	}
	pipe.Expire(ctx, trendingKey, c.snapshotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write trending snapshot: %w", err)
	}
	return nil
}

// TopTrending reads the snapshot, highest score first. An empty result
// means the snapshot is missing or expired; callers fall back to the
// trending table.
func (c *RecipeCache) TopTrending(ctx context.Context, limit int) ([]trending.ScoredRecipe, error) {
	members, err := c.client.ZRevRangeWithScores(ctx, trendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trending snapshot: %w", err)
	}

	out := make([]trending.ScoredRecipe, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		out = append(out, trending.ScoredRecipe{RecipeID: id, Score: m.Score})
	}
	return out, nil
}
