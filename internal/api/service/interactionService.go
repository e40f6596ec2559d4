package service

import (
	"errors"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"

	"gorm.io/gorm"
)

// InteractionService implements the like/save/made toggles. Likes and
// saves are idempotent: repeating an action is a no-op, never a second row.
type InteractionService interface {
	Like(recipeID, userID string) error
	Unlike(recipeID, userID string) error
	Save(recipeID, userID string) error
	Unsave(recipeID, userID string) error
	ListSaved(userID string, page, pageSize int) ([]models.SavedRecipe, int64, error)
	RecordMade(made *models.MadeRecipe) error
	ListMadeByUser(userID string, page, pageSize int) ([]models.MadeRecipe, int64, error)
	ListMadeByRecipe(recipeID string, page, pageSize int) ([]models.MadeRecipe, int64, error)
}

type interactionService struct {
	interactionRepo repository.InteractionRepository
	recipeRepo      repository.RecipeRepository
}

func NewInteractionService(
	interactionRepo repository.InteractionRepository,
	recipeRepo repository.RecipeRepository,
) InteractionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		recipeRepo:      recipeRepo,
	}
}

func (s *interactionService) requirePublished(recipeID string) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if !recipe.IsPublished {
		return ErrRecipeNotPublic
	}
	return nil
}

func (s *interactionService) Like(recipeID, userID string) error {
	if err := s.requirePublished(recipeID); err != nil {
		return err
	}

	exists, err := s.interactionRepo.LikeExists(recipeID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.interactionRepo.AddLike(recipeID, userID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Raced with another request; the unique index already holds one row
		return nil
	}
	return err
}

func (s *interactionService) Unlike(recipeID, userID string) error {
	err := s.interactionRepo.RemoveLike(recipeID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *interactionService) Save(recipeID, userID string) error {
	if err := s.requirePublished(recipeID); err != nil {
		return err
	}

	exists, err := s.interactionRepo.SaveExists(recipeID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.interactionRepo.AddSave(recipeID, userID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (s *interactionService) Unsave(recipeID, userID string) error {
	err := s.interactionRepo.RemoveSave(recipeID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *interactionService) ListSaved(userID string, page, pageSize int) ([]models.SavedRecipe, int64, error) {
	return s.interactionRepo.ListSaved(userID, page, pageSize)
}

// RecordMade logs one cooking of a recipe. Unlike likes and saves this is
// not deduplicated; every cooking is its own record.
func (s *interactionService) RecordMade(made *models.MadeRecipe) error {
	if err := s.requirePublished(made.RecipeID); err != nil {
		return err
	}
	return s.interactionRepo.AddMade(made)
}

func (s *interactionService) ListMadeByUser(userID string, page, pageSize int) ([]models.MadeRecipe, int64, error) {
	return s.interactionRepo.ListMadeByUser(userID, page, pageSize)
}

func (s *interactionService) ListMadeByRecipe(recipeID string, page, pageSize int) ([]models.MadeRecipe, int64, error) {
	if err := s.requirePublished(recipeID); err != nil {
		return nil, 0, err
	}
	return s.interactionRepo.ListMadeByRecipe(recipeID, page, pageSize)
}
