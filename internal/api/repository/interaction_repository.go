package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

// InteractionRepository maintains the like/save/made join tables and keeps
// the denormalized counters on recipes in step, inside one transaction per
// mutation.
type InteractionRepository interface {
	AddLike(recipeID, userID string) error
	RemoveLike(recipeID, userID string) error
	LikeExists(recipeID, userID string) (bool, error)

	AddSave(recipeID, userID string) error
	RemoveSave(recipeID, userID string) error
	SaveExists(recipeID, userID string) (bool, error)
	ListSaved(userID string, page, pageSize int) ([]models.SavedRecipe, int64, error)

	AddMade(made *models.MadeRecipe) error
	ListMadeByUser(userID string, page, pageSize int) ([]models.MadeRecipe, int64, error)
	ListMadeByRecipe(recipeID string, page, pageSize int) ([]models.MadeRecipe, int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// incrementCounter bumps one counter column on a recipe within tx.
func incrementCounter(tx *gorm.DB, recipeID, column string, delta int64) error {
	return tx.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

func (r *interactionRepository) AddLike(recipeID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.RecipeLike{RecipeID: recipeID, UserID: userID}).Error; err != nil {
			return err
		}
		return incrementCounter(tx, recipeID, "likes_count", 1)
	})
}

func (r *interactionRepository) RemoveLike(recipeID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
			Delete(&models.RecipeLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return incrementCounter(tx, recipeID, "likes_count", -1)
	})
}

func (r *interactionRepository) LikeExists(recipeID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RecipeLike{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) AddSave(recipeID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.SavedRecipe{RecipeID: recipeID, UserID: userID}).Error; err != nil {
			return err
		}
		return incrementCounter(tx, recipeID, "saves_count", 1)
	})
}

func (r *interactionRepository) RemoveSave(recipeID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
			Delete(&models.SavedRecipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return incrementCounter(tx, recipeID, "saves_count", -1)
	})
}

func (r *interactionRepository) SaveExists(recipeID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedRecipe{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *interactionRepository) ListSaved(userID string, page, pageSize int) ([]models.SavedRecipe, int64, error) {
	query := r.db.Model(&models.SavedRecipe{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var saved []models.SavedRecipe
	err := query.
		Preload("Recipe").
		Preload("Recipe.User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&saved).Error
	if err != nil {
		return nil, 0, err
	}

	return saved, total, nil
}

func (r *interactionRepository) AddMade(made *models.MadeRecipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(made).Error; err != nil {
			return err
		}
		return incrementCounter(tx, made.RecipeID, "made_count", 1)
	})
}

func (r *interactionRepository) ListMadeByUser(userID string, page, pageSize int) ([]models.MadeRecipe, int64, error) {
	query := r.db.Model(&models.MadeRecipe{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var made []models.MadeRecipe
	err := query.
		Preload("Recipe").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&made).Error
	if err != nil {
		return nil, 0, err
	}

	return made, total, nil
}

func (r *interactionRepository) ListMadeByRecipe(recipeID string, page, pageSize int) ([]models.MadeRecipe, int64, error) {
	query := r.db.Model(&models.MadeRecipe{}).Where("recipe_id = ?", recipeID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var made []models.MadeRecipe
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&made).Error
	if err != nil {
		return nil, 0, err
	}

	return made, total, nil
}
