package service

import (
	"context"
	"time"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockRecipeRepository mocks the RecipeRepository interface
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDs(ids []string) ([]models.Recipe, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateAnalysis(id string, aiTags, pairings []string, nutrition map[string]any) error {
	args := m.Called(id, aiTags, pairings, nutrition)
	return args.Error(0)
}

func (m *MockRecipeRepository) Publish(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRecipeRepository) ListPublished(filter repository.RecipeFilter, page, pageSize int) ([]models.Recipe, int64, error) {
	args := m.Called(filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) ListDrafts(userID string, page, pageSize int) ([]models.Recipe, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) ListByAuthors(authorIDs []string, page, pageSize int) ([]models.Recipe, int64, error) {
	args := m.Called(authorIDs, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) IncrementViews(id string, delta int64) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

// MockInteractionRepository mocks the InteractionRepository interface
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) AddLike(recipeID, userID string) error {
	args := m.Called(recipeID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) RemoveLike(recipeID, userID string) error {
	args := m.Called(recipeID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) LikeExists(recipeID, userID string) (bool, error) {
	args := m.Called(recipeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) AddSave(recipeID, userID string) error {
	args := m.Called(recipeID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) RemoveSave(recipeID, userID string) error {
	args := m.Called(recipeID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) SaveExists(recipeID, userID string) (bool, error) {
	args := m.Called(recipeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) ListSaved(userID string, page, pageSize int) ([]models.SavedRecipe, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.SavedRecipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepository) AddMade(made *models.MadeRecipe) error {
	args := m.Called(made)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListMadeByUser(userID string, page, pageSize int) ([]models.MadeRecipe, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.MadeRecipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepository) ListMadeByRecipe(recipeID string, page, pageSize int) ([]models.MadeRecipe, int64, error) {
	args := m.Called(recipeID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.MadeRecipe), args.Get(1).(int64), args.Error(2)
}

// MockFollowRepository mocks the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(followerID, followingID string) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(followerID, followingID string) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(followerID, followingID string) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(userID string, page, pageSize int) ([]models.Follow, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Follow), args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowRepository) ListFollowing(userID string, page, pageSize int) ([]models.Follow, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Follow), args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowRepository) ListFollowingIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Upsert(review *models.RecipeReview) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(recipeID, userID string) error {
	args := m.Called(recipeID, userID)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByRecipeAndUser(recipeID, userID string) (*models.RecipeReview, error) {
	args := m.Called(recipeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeReview), args.Error(1)
}

func (m *MockReviewRepository) ListByRecipe(recipeID string, page, pageSize int) ([]models.RecipeReview, int64, error) {
	args := m.Called(recipeID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.RecipeReview), args.Get(1).(int64), args.Error(2)
}

// MockMealPlanRepository mocks the MealPlanRepository interface
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) GetByID(id string) (*models.MealPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) ListByUser(userID string, page, pageSize int) ([]models.MealPlan, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.MealPlan), args.Get(1).(int64), args.Error(2)
}

func (m *MockMealPlanRepository) Update(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMealPlanRepository) AddItem(item *models.MealPlanItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMealPlanRepository) RemoveItem(planID string, itemID int64) error {
	args := m.Called(planID, itemID)
	return args.Error(0)
}

// MockViewCounter mocks the ViewCounter interface
type MockViewCounter struct {
	mock.Mock
}

func (m *MockViewCounter) IncrementView(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

func publishedRecipe(id, authorID string) *models.Recipe {
	now := time.Now()
	return &models.Recipe{
		ID:          id,
		UserID:      authorID,
		Title:       "Test Recipe",
		IsPublished: true,
		PublishedAt: &now,
		CreatedAt:   now.Add(-48 * time.Hour),
	}
}

func draftRecipe(id, authorID string) *models.Recipe {
	return &models.Recipe{
		ID:        id,
		UserID:    authorID,
		Title:     "Draft Recipe",
		CreatedAt: time.Now(),
	}
}
