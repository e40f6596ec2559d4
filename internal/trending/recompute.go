package trending

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

// Snapshotter publishes the recomputed leaderboard to a hot cache.
type Snapshotter interface {
	WriteSnapshot(ctx context.Context, scores []ScoredRecipe) error
}

// Recomputer scans engagement counters, scores them on a worker pool and
// materializes the results.
type Recomputer struct {
	store     *Store
	snapshot  Snapshotter
	workers   int
	batchSize int
}

func NewRecomputer(store *Store, snapshot Snapshotter, workers, batchSize int) *Recomputer {
	if workers < 1 {
		workers = 1
	}
	if batchSize < 1 {
		batchSize = 500
	}
	return &Recomputer{
		store:     store,
		snapshot:  snapshot,
		workers:   workers,
		batchSize: batchSize,
	}
}

// Run performs one full recomputation pass.
func (r *Recomputer) Run(ctx context.Context) error {
	start := time.Now()
	now := start

	var (
		mu     sync.Mutex
		scored []ScoredRecipe
	)

	pool := NewPool(ctx, r.workers)

	offset := 0
	for {
		batch, err := r.store.ListCounters(ctx, r.batchSize, offset)
		if err != nil {
			pool.Close()
			return err
		}
		if len(batch) == 0 {
			break
		}
		offset += len(batch)

		counters := batch
		pool.Submit(ctx, func(ctx context.Context) error {
			local := make([]ScoredRecipe, 0, len(counters))
			for _, rc := range counters {
				local = append(local, ScoredRecipe{
					RecipeID: rc.RecipeID,
					Score:    Score(rc.Likes, rc.Saves, rc.Made, rc.Views, rc.CreatedAt, now),
				})
			}
			mu.Lock()
			scored = append(scored, local...)
			mu.Unlock()
			return nil
		})
	}

	pool.Close()

	if err := r.store.UpsertScores(ctx, scored, now); err != nil {
		return err
	}

	if r.snapshot != nil {
		sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
		if err := r.snapshot.WriteSnapshot(ctx, scored); err != nil {
			// The table is the source of truth; a stale snapshot self-heals
			// on the next pass.
			log.Printf("[TrendingRecomputer] Snapshot write failed: %v", err)
		}
	}

	log.Printf("[TrendingRecomputer] Scored %d recipes in %s", len(scored), time.Since(start))
	return nil
}
