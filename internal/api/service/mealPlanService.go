package service

import (
	"context"
	"errors"
	"time"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/mlclient"

	"gorm.io/gorm"
)

var (
	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrNotPlanOwner     = errors.New("not the meal plan owner")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrItemOutsideRange = errors.New("item date is outside the plan's range")
)

type MealPlanService interface {
	Create(userID string, plan *models.MealPlan) error
	Get(userID, planID string) (*models.MealPlan, error)
	List(userID string, page, pageSize int) ([]models.MealPlan, int64, error)
	Update(userID string, plan *models.MealPlan) error
	Delete(userID, planID string) error
	AddItem(userID string, item *models.MealPlanItem) error
	RemoveItem(userID, planID string, itemID int64) error
	Generate(ctx context.Context, req *mlclient.MealPlanRequest) (map[string]any, error)
	FlyerDinner(ctx context.Context, bannerURL string) (map[string]any, error)
}

type mealPlanService struct {
	planRepo   repository.MealPlanRepository
	recipeRepo repository.RecipeRepository
	ml         *mlclient.Client
}

func NewMealPlanService(
	planRepo repository.MealPlanRepository,
	recipeRepo repository.RecipeRepository,
	ml *mlclient.Client,
) MealPlanService {
	return &mealPlanService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		ml:         ml,
	}
}

func (s *mealPlanService) Create(userID string, plan *models.MealPlan) error {
	if plan.EndDate.Before(plan.StartDate) {
		return ErrInvalidDateRange
	}
	plan.UserID = userID
	return s.planRepo.Create(plan)
}

func (s *mealPlanService) owned(userID, planID string) (*models.MealPlan, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrNotPlanOwner
	}
	return plan, nil
}

func (s *mealPlanService) Get(userID, planID string) (*models.MealPlan, error) {
	return s.owned(userID, planID)
}

func (s *mealPlanService) List(userID string, page, pageSize int) ([]models.MealPlan, int64, error) {
	return s.planRepo.ListByUser(userID, page, pageSize)
}

func (s *mealPlanService) Update(userID string, plan *models.MealPlan) error {
	existing, err := s.owned(userID, plan.ID)
	if err != nil {
		return err
	}
	if plan.EndDate.Before(plan.StartDate) {
		return ErrInvalidDateRange
	}

	existing.Name = plan.Name
	existing.StartDate = plan.StartDate
	existing.EndDate = plan.EndDate
	return s.planRepo.Update(existing)
}

func (s *mealPlanService) Delete(userID, planID string) error {
	if _, err := s.owned(userID, planID); err != nil {
		return err
	}
	return s.planRepo.Delete(planID)
}

// AddItem assigns a recipe to a date and meal slot within the plan.
func (s *mealPlanService) AddItem(userID string, item *models.MealPlanItem) error {
	plan, err := s.owned(userID, item.MealPlanID)
	if err != nil {
		return err
	}

	// Compare calendar days; both bounds are inclusive
	day := truncateToDay(item.Date)
	if day.Before(truncateToDay(plan.StartDate)) || day.After(truncateToDay(plan.EndDate)) {
		return ErrItemOutsideRange
	}

	if _, err := s.recipeRepo.GetByID(item.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if item.Servings <= 0 {
		item.Servings = 1
	}

	return s.planRepo.AddItem(item)
}

func (s *mealPlanService) RemoveItem(userID, planID string, itemID int64) error {
	if _, err := s.owned(userID, planID); err != nil {
		return err
	}
	err := s.planRepo.RemoveItem(planID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMealPlanNotFound
	}
	return err
}

// Generate relays a meal-plan generation request to the ML backend; the
// response shape is the collaborator's, passed through untouched.
func (s *mealPlanService) Generate(ctx context.Context, req *mlclient.MealPlanRequest) (map[string]any, error) {
	return s.ml.GenerateMealPlan(ctx, req)
}

// FlyerDinner relays a grocery-flyer dinner request. The backend extracts
// the flyer's products and drafts a dinner for two around them.
func (s *mealPlanService) FlyerDinner(ctx context.Context, bannerURL string) (map[string]any, error) {
	return s.ml.FlyerDinner(ctx, &mlclient.FlyerDinnerRequest{Banner: bannerURL})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
