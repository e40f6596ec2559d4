package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows published-recipe listings.
type RecipeFilter struct {
	Cuisine    string
	Category   string
	Difficulty string
	Tag        string
	Search     string
}

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(id string) (*models.Recipe, error)
	FindByIDs(ids []string) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	UpdateAnalysis(id string, aiTags, pairings []string, nutrition map[string]any) error
	Publish(recipe *models.Recipe) error
	Delete(id string) error
	ListPublished(filter RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error)
	ListDrafts(userID string, page, pageSize int) ([]models.Recipe, int64, error)
	ListByAuthors(authorIDs []string, page, pageSize int) ([]models.Recipe, int64, error)
	IncrementViews(id string, delta int64) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("User").
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindByIDs(ids []string) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []models.Recipe
	if err := r.db.Preload("User").Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

// UpdateAnalysis persists ML-produced tags, pairings and nutrition without
// touching author-owned fields.
func (r *recipeRepository) UpdateAnalysis(id string, aiTags, pairings []string, nutrition map[string]any) error {
	result := r.db.Model(&models.Recipe{}).
		Where("id = ?", id).
		Select("ai_tags", "pairings", "nutrition").
		Updates(&models.Recipe{AITags: aiTags, Pairings: pairings, Nutrition: nutrition})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Publish flips the flag and stamps published_at exactly once.
func (r *recipeRepository) Publish(recipe *models.Recipe) error {
	return r.db.Model(recipe).
		Where("published_at IS NULL").
		Updates(map[string]any{
			"is_published": true,
			"published_at": recipe.PublishedAt,
		}).Error
}

func (r *recipeRepository) Delete(id string) error {
	result := r.db.Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) ListPublished(filter RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error) {
	query := r.db.Model(&models.Recipe{}).Where("is_published = ?", true)

	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Tag != "" {
		// Combined tag set = AI tags + user tags; jsonb containment covers both
		query = query.Where("ai_tags @> ? OR user_tags @> ?",
			`["`+filter.Tag+`"]`, `["`+filter.Tag+`"]`)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (r *recipeRepository) ListDrafts(userID string, page, pageSize int) ([]models.Recipe, int64, error) {
	query := r.db.Model(&models.Recipe{}).
		Where("user_id = ? AND is_published = ?", userID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := query.
		Order("updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (r *recipeRepository) ListByAuthors(authorIDs []string, page, pageSize int) ([]models.Recipe, int64, error) {
	if len(authorIDs) == 0 {
		return nil, 0, nil
	}

	query := r.db.Model(&models.Recipe{}).
		Where("user_id IN ? AND is_published = ?", authorIDs, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := query.
		Preload("User").
		Order("published_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// IncrementViews bumps the denormalized view counter atomically.
func (r *recipeRepository) IncrementViews(id string, delta int64) error {
	return r.db.Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", delta)).Error
}
