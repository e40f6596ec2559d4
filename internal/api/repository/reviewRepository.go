package repository

import (
	"errors"

	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Upsert(review *models.RecipeReview) error
	Delete(recipeID, userID string) error
	GetByRecipeAndUser(recipeID, userID string) (*models.RecipeReview, error)
	ListByRecipe(recipeID string, page, pageSize int) ([]models.RecipeReview, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert creates or updates the user's review and refreshes the recipe's
// avg_rating and reviews_count in the same transaction.
func (r *reviewRepository) Upsert(review *models.RecipeReview) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.RecipeReview
		err := tx.Where("recipe_id = ? AND user_id = ?", review.RecipeID, review.UserID).
			First(&existing).Error

		switch {
		case err == nil:
			existing.Rating = review.Rating
			existing.Comment = review.Comment
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*review = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return refreshRatingAggregate(tx, review.RecipeID)
	})
}

func (r *reviewRepository) Delete(recipeID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
			Delete(&models.RecipeReview{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return refreshRatingAggregate(tx, recipeID)
	})
}

func (r *reviewRepository) GetByRecipeAndUser(recipeID, userID string) (*models.RecipeReview, error) {
	var review models.RecipeReview
	err := r.db.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Preload("User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByRecipe(recipeID string, page, pageSize int) ([]models.RecipeReview, int64, error) {
	query := r.db.Model(&models.RecipeReview{}).Where("recipe_id = ?", recipeID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.RecipeReview
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// refreshRatingAggregate recomputes avg_rating and reviews_count from the
// join table, which stays the source of truth.
func refreshRatingAggregate(tx *gorm.DB, recipeID string) error {
	var agg struct {
		Average float64
		Total   int64
	}
	err := tx.Model(&models.RecipeReview{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as total").
		Where("recipe_id = ?", recipeID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumns(map[string]any{
			"avg_rating":    agg.Average,
			"reviews_count": agg.Total,
		}).Error
}
