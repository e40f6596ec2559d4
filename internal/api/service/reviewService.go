package service

import (
	"errors"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewService interface {
	CreateOrUpdate(recipeID, userID string, rating int, comment *string) (*models.RecipeReview, error)
	Delete(recipeID, userID string) error
	GetUserReview(recipeID, userID string) (*models.RecipeReview, error)
	ListByRecipe(recipeID string, page, pageSize int) ([]models.RecipeReview, int64, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	recipeRepo repository.RecipeRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, recipeRepo repository.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		recipeRepo: recipeRepo,
	}
}

// CreateOrUpdate writes the user's review. One review per (recipe, user);
// reviewing again replaces the previous rating and comment. The recipe's
// avg_rating and reviews_count are refreshed in the same transaction.
func (s *reviewService) CreateOrUpdate(recipeID, userID string, rating int, comment *string) (*models.RecipeReview, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if !recipe.IsPublished {
		return nil, ErrRecipeNotPublic
	}

	review := &models.RecipeReview{
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.reviewRepo.Upsert(review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByRecipeAndUser(recipeID, userID)
}

func (s *reviewService) Delete(recipeID, userID string) error {
	err := s.reviewRepo.Delete(recipeID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReviewNotFound
	}
	return err
}

func (s *reviewService) GetUserReview(recipeID, userID string) (*models.RecipeReview, error) {
	review, err := s.reviewRepo.GetByRecipeAndUser(recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByRecipe(recipeID string, page, pageSize int) ([]models.RecipeReview, int64, error) {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrRecipeNotFound
		}
		return nil, 0, err
	}
	return s.reviewRepo.ListByRecipe(recipeID, page, pageSize)
}
