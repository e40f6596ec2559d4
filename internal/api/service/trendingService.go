package service

import (
	"context"
	"errors"
	"log"
	"time"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/trending"

	"gorm.io/gorm"
)

// TrendingSnapshot is the read side of the Redis leaderboard kept by the
// trending worker.
type TrendingSnapshot interface {
	TopTrending(ctx context.Context, limit int) ([]trending.ScoredRecipe, error)
}

type TrendingService interface {
	List(ctx context.Context, limit int) ([]models.TrendingRecipe, error)
	RecomputeRecipe(recipeID string) error
}

type trendingService struct {
	trendingRepo repository.TrendingRepository
	recipeRepo   repository.RecipeRepository
	snapshot     TrendingSnapshot
}

func NewTrendingService(
	trendingRepo repository.TrendingRepository,
	recipeRepo repository.RecipeRepository,
	snapshot TrendingSnapshot,
) TrendingService {
	return &trendingService{
		trendingRepo: trendingRepo,
		recipeRepo:   recipeRepo,
		snapshot:     snapshot,
	}
}

// List returns the current trending recipes, score descending. It serves
// from the Redis snapshot when one exists and falls back to the
// materialized table otherwise.
func (s *trendingService) List(ctx context.Context, limit int) ([]models.TrendingRecipe, error) {
	if s.snapshot != nil {
		scored, err := s.snapshot.TopTrending(ctx, limit)
		if err != nil {
			log.Printf("[TrendingService] Snapshot read failed, falling back to table: %v", err)
		} else if len(scored) > 0 {
			return s.fromSnapshot(scored)
		}
	}

	return s.trendingRepo.ListTop(limit)
}

// fromSnapshot resolves snapshot entries to recipes, preserving the
// snapshot's ordering and skipping recipes deleted since the last pass.
func (s *trendingService) fromSnapshot(scored []trending.ScoredRecipe) ([]models.TrendingRecipe, error) {
	ids := make([]string, 0, len(scored))
	for _, sr := range scored {
		if sr.Score > 0 {
			ids = append(ids, sr.RecipeID)
		}
	}

	recipes, err := s.recipeRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	out := make([]models.TrendingRecipe, 0, len(scored))
	for _, sr := range scored {
		recipe, ok := byID[sr.RecipeID]
		if !ok || !recipe.IsPublished {
			continue
		}
		r := recipe
		out = append(out, models.TrendingRecipe{
			RecipeID: sr.RecipeID,
			Score:    sr.Score,
			Recipe:   &r,
		})
	}
	return out, nil
}

// RecomputeRecipe refreshes one recipe's materialized score from its
// current counters. Used on counter mutations; the worker covers the rest.
func (s *trendingService) RecomputeRecipe(recipeID string) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	now := time.Now()
	score := trending.Score(
		recipe.LikesCount,
		recipe.SavesCount,
		recipe.MadeCount,
		recipe.ViewsCount,
		recipe.CreatedAt,
		now,
	)

	return s.trendingRepo.Upsert(recipeID, score, now)
}
