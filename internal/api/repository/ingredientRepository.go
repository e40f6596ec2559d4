package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	GetByID(id string) (*models.Ingredient, error)
	FindByName(name string) (*models.Ingredient, error)
	Search(query string, limit int) ([]models.Ingredient, error)
	Attach(link *models.RecipeIngredient) error
	Detach(recipeID, ingredientID string) error
	ListForRecipe(recipeID string) ([]models.RecipeIngredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(id string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByName(name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Search matches name or aliases, case-insensitively.
func (r *ingredientRepository) Search(query string, limit int) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	like := "%" + query + "%"
	err := r.db.
		Where("name ILIKE ? OR aliases::text ILIKE ?", like, like).
		Order("name").
		Limit(limit).
		Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Attach(link *models.RecipeIngredient) error {
	return r.db.Create(link).Error
}

func (r *ingredientRepository) Detach(recipeID, ingredientID string) error {
	result := r.db.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&models.RecipeIngredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ingredientRepository) ListForRecipe(recipeID string) ([]models.RecipeIngredient, error) {
	var links []models.RecipeIngredient
	err := r.db.
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&links).Error
	return links, err
}
