package service

import (
	"errors"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrAlreadyAttached    = errors.New("ingredient already attached to recipe")
)

type IngredientService interface {
	Create(ingredient *models.Ingredient) error
	Search(query string, limit int) ([]models.Ingredient, error)
	Attach(userID string, link *models.RecipeIngredient) error
	Detach(userID, recipeID, ingredientID string) error
	ListForRecipe(recipeID string) ([]models.RecipeIngredient, error)
}

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
}

func NewIngredientService(
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
) IngredientService {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
	}
}

func (s *ingredientService) Create(ingredient *models.Ingredient) error {
	// Check by name first so a case-variant duplicate gets the same answer
	// as an exact one; the unique index catches what the check races past.
	if _, err := s.ingredientRepo.FindByName(ingredient.Name); err == nil {
		return ErrIngredientExists
	}

	err := s.ingredientRepo.Create(ingredient)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrIngredientExists
	}
	return err
}

func (s *ingredientService) Search(query string, limit int) ([]models.Ingredient, error) {
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.ingredientRepo.Search(query, limit)
}

func (s *ingredientService) requireAuthor(userID, recipeID string) error {
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
	return nil
}

// Attach links an ingredient to a recipe. At most one link per pair; the
// unique index backs this and a duplicate maps to ErrAlreadyAttached.
func (s *ingredientService) Attach(userID string, link *models.RecipeIngredient) error {
	if err := s.requireAuthor(userID, link.RecipeID); err != nil {
		return err
	}

	if _, err := s.ingredientRepo.GetByID(link.IngredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}

	err := s.ingredientRepo.Attach(link)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyAttached
	}
	return err
}

func (s *ingredientService) ListForRecipe(recipeID string) ([]models.RecipeIngredient, error) {
	return s.ingredientRepo.ListForRecipe(recipeID)
}

func (s *ingredientService) Detach(userID, recipeID, ingredientID string) error {
	if err := s.requireAuthor(userID, recipeID); err != nil {
		return err
	}
	err := s.ingredientRepo.Detach(recipeID, ingredientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrIngredientNotFound
	}
	return err
}
