package service

import (
	"context"
	"errors"
	"log"
	"time"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/mlclient"

	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrNotRecipeAuthor  = errors.New("not the recipe author")
	ErrAlreadyPublished = errors.New("recipe already published")
	ErrRecipeNotPublic  = errors.New("recipe is not published")
)

// ViewCounter records recipe views out of band; the trending worker folds
// them back into the recipes table.
type ViewCounter interface {
	IncrementView(ctx context.Context, recipeID string) error
}

type RecipeService interface {
	Create(userID string, recipe *models.Recipe) error
	Get(ctx context.Context, id string, viewerID string) (*models.Recipe, error)
	Update(userID string, recipe *models.Recipe) error
	Publish(userID, recipeID string) (*models.Recipe, error)
	Delete(userID, recipeID string) error
	ListPublished(filter repository.RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error)
	ListDrafts(userID string, page, pageSize int) ([]models.Recipe, int64, error)
	Analyze(ctx context.Context, userID, recipeID string) (*models.Recipe, error)
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
	views      ViewCounter
	ml         *mlclient.Client
}

func NewRecipeService(recipeRepo repository.RecipeRepository, views ViewCounter, ml *mlclient.Client) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		views:      views,
		ml:         ml,
	}
}

// Create stores a new recipe in draft state, owned by userID.
func (s *recipeService) Create(userID string, recipe *models.Recipe) error {
	recipe.UserID = userID
	recipe.IsPublished = false
	recipe.PublishedAt = nil
	return s.recipeRepo.Create(recipe)
}

// Get returns one recipe and counts the view. Drafts are only visible to
// their author.
func (s *recipeService) Get(ctx context.Context, id string, viewerID string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if !recipe.IsPublished && recipe.UserID != viewerID {
		return nil, ErrRecipeNotFound
	}

	// Views are best-effort; a cache hiccup should not fail the read.
	// If Redis is down the counter goes straight to the recipe row.
	if recipe.IsPublished && s.views != nil {
		if err := s.views.IncrementView(ctx, id); err != nil {
			log.Printf("[RecipeService] Failed to count view for %s: %v", id, err)
			if err := s.recipeRepo.IncrementViews(id, 1); err != nil {
				log.Printf("[RecipeService] View fallback write failed for %s: %v", id, err)
			}
		}
	}

	return recipe, nil
}

func (s *recipeService) Update(userID string, recipe *models.Recipe) error {
	existing, err := s.recipeRepo.GetByID(recipe.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return ErrNotRecipeAuthor
	}

	// Content fields only; counters and publishing state are system-owned
	existing.Title = recipe.Title
	existing.Description = recipe.Description
	existing.Instructions = recipe.Instructions
	existing.ImageURLs = recipe.ImageURLs
	existing.PrepTimeMinutes = recipe.PrepTimeMinutes
	existing.CookTimeMinutes = recipe.CookTimeMinutes
	existing.Servings = recipe.Servings
	existing.Difficulty = recipe.Difficulty
	existing.Cuisine = recipe.Cuisine
	existing.Category = recipe.Category
	existing.UserTags = recipe.UserTags

	return s.recipeRepo.Update(existing)
}

// Publish makes the recipe publicly listed. The publish timestamp is set
// once and never changes after that.
func (s *recipeService) Publish(userID, recipeID string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotRecipeAuthor
	}
	if recipe.PublishedAt != nil {
		return nil, ErrAlreadyPublished
	}

	now := time.Now()
	recipe.IsPublished = true
	recipe.PublishedAt = &now
	if err := s.recipeRepo.Publish(recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *recipeService) Delete(userID, recipeID string) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if recipe.UserID != userID {
		return ErrNotRecipeAuthor
	}

	return s.recipeRepo.Delete(recipeID)
}

func (s *recipeService) ListPublished(filter repository.RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error) {
	return s.recipeRepo.ListPublished(filter, page, pageSize)
}

func (s *recipeService) ListDrafts(userID string, page, pageSize int) ([]models.Recipe, int64, error) {
	return s.recipeRepo.ListDrafts(userID, page, pageSize)
}

// Analyze sends the recipe to the ML backend and persists the returned
// tags, nutrition and pairings.
func (s *recipeService) Analyze(ctx context.Context, userID, recipeID string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotRecipeAuthor
	}

	req := &mlclient.RecipeAnalysisRequest{
		Instructions: recipe.Instructions,
		Cuisine:      recipe.Cuisine,
		Category:     recipe.Category,
		Servings:     1,
	}
	if recipe.Servings != nil {
		req.Servings = *recipe.Servings
	}
	for _, link := range recipe.Ingredients {
		input := mlclient.IngredientInput{
			Amount:      link.Amount,
			Unit:        link.Unit,
			Preparation: link.Preparation,
		}
		if link.Ingredient != nil {
			input.Name = link.Ingredient.Name
		}
		req.Ingredients = append(req.Ingredients, input)
	}

	analysis, err := s.ml.AnalyzeRecipe(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepo.UpdateAnalysis(recipeID, analysis.Tags, analysis.Pairings, analysis.Nutrition); err != nil {
		return nil, err
	}

	recipe.AITags = analysis.Tags
	recipe.Pairings = analysis.Pairings
	recipe.Nutrition = analysis.Nutrition
	return recipe, nil
}
