package repository

import (
	"time"

	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type TrendingRepository interface {
	Upsert(recipeID string, score float64, at time.Time) error
	ListTop(limit int) ([]models.TrendingRecipe, error)
}

type trendingRepository struct {
	db *gorm.DB
}

func NewTrendingRepository(db *gorm.DB) TrendingRepository {
	return &trendingRepository{db: db}
}

// Upsert writes one recipe's score, used by the on-write recompute path.
// The batch path lives in the trending worker.
func (r *trendingRepository) Upsert(recipeID string, score float64, at time.Time) error {
	return r.db.Exec(`
		INSERT INTO trending_recipes (recipe_id, score, trending_at)
		VALUES (?, ?, ?)
		ON CONFLICT (recipe_id)
		DO UPDATE SET score = EXCLUDED.score, trending_at = EXCLUDED.trending_at
	`, recipeID, score, at).Error
}

// ListTop returns the highest-scored recipes; ties break on recipe
// creation time, newest first, so pagination stays deterministic.
func (r *trendingRepository) ListTop(limit int) ([]models.TrendingRecipe, error) {
	var rows []models.TrendingRecipe
	err := r.db.
		Joins("JOIN recipes ON recipes.id = trending_recipes.recipe_id").
		Where("recipes.is_published = ? AND trending_recipes.score > 0", true).
		Order("trending_recipes.score DESC, recipes.created_at DESC").
		Limit(limit).
		Preload("Recipe").
		Preload("Recipe.User").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
