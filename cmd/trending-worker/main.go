package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/trending"
)

// The trending worker runs out-of-band from the API server. Each tick it
// drains buffered view counts from Redis into Postgres, rescores every
// published recipe and publishes a fresh leaderboard snapshot.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	store, err := trending.OpenStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not open store: %v", err)
	}
	defer store.Close()

	recipeCache, err := cache.NewRecipeCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer recipeCache.Close()

	recomputer := trending.NewRecomputer(store, recipeCache, cfg.TrendingWorkers, cfg.TrendingBatchSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("[TrendingWorker] Received %v, shutting down", sig)
		cancel()
	}()

	log.Printf("[TrendingWorker] Starting, interval=%s workers=%d batch=%d",
		cfg.TrendingInterval, cfg.TrendingWorkers, cfg.TrendingBatchSize)

	// Run one pass immediately so a fresh deploy has scores before the
	// first tick.
	runPass(ctx, store, recipeCache, recomputer)

	ticker := time.NewTicker(cfg.TrendingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[TrendingWorker] Stopped")
			return
		case <-ticker.C:
			runPass(ctx, store, recipeCache, recomputer)
		}
	}
}

func runPass(ctx context.Context, store *trending.Store, recipeCache *cache.RecipeCache, recomputer *trending.Recomputer) {
	// Views first: the pass should score against the freshest counters.
	deltas, err := recipeCache.DrainViews(ctx)
	if err != nil {
		log.Printf("[TrendingWorker] View drain failed: %v", err)
	} else if len(deltas) > 0 {
		if err := store.FlushViews(ctx, deltas); err != nil {
			log.Printf("[TrendingWorker] View flush failed: %v", err)
		} else {
			log.Printf("[TrendingWorker] Flushed view counts for %d recipes", len(deltas))
		}
	}

	if err := recomputer.Run(ctx); err != nil {
		log.Printf("[TrendingWorker] Recompute failed: %v", err)
	}
}
