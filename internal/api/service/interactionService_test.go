package service

import (
	"testing"

	"recipehub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestLike_FirstTime(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockInteractionRepo.On("LikeExists", "recipe-1", "user-1").Return(false, nil)
	mockInteractionRepo.On("AddLike", "recipe-1", "user-1").Return(nil)

	err := interactionService.Like("recipe-1", "user-1")

	assert.NoError(t, err)
	mockInteractionRepo.AssertExpectations(t)
}

func TestLike_SecondTimeIsNoOp(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockInteractionRepo.On("LikeExists", "recipe-1", "user-1").Return(true, nil)

	err := interactionService.Like("recipe-1", "user-1")

	assert.NoError(t, err)
	mockInteractionRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything)
}

func TestLike_RaceLosesToUniqueIndex(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockInteractionRepo.On("LikeExists", "recipe-1", "user-1").Return(false, nil)
	mockInteractionRepo.On("AddLike", "recipe-1", "user-1").Return(gorm.ErrDuplicatedKey)

	// A concurrent request won the insert; this one still succeeds.
	err := interactionService.Like("recipe-1", "user-1")

	assert.NoError(t, err)
}

func TestLike_DraftRejected(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)

	err := interactionService.Like("recipe-1", "user-1")

	assert.Equal(t, ErrRecipeNotPublic, err)
	mockInteractionRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything)
}

func TestLike_RecipeMissing(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	err := interactionService.Like("missing", "user-1")

	assert.Equal(t, ErrRecipeNotFound, err)
}

func TestUnlike_MissingLikeIsNoOp(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockInteractionRepo.On("RemoveLike", "recipe-1", "user-1").Return(gorm.ErrRecordNotFound)

	err := interactionService.Unlike("recipe-1", "user-1")

	assert.NoError(t, err)
}

func TestSave_SecondTimeIsNoOp(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockInteractionRepo.On("SaveExists", "recipe-1", "user-1").Return(true, nil)

	err := interactionService.Save("recipe-1", "user-1")

	assert.NoError(t, err)
	mockInteractionRepo.AssertNotCalled(t, "AddSave", mock.Anything, mock.Anything)
}

func TestRecordMade_EveryCookCounts(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockInteractionRepo.On("AddMade", mock.AnythingOfType("*models.MadeRecipe")).Return(nil).Times(3)

	// Cooking the same recipe three times produces three records.
	for i := 0; i < 3; i++ {
		err := interactionService.RecordMade(&models.MadeRecipe{RecipeID: "recipe-1", UserID: "user-1"})
		assert.NoError(t, err)
	}

	mockInteractionRepo.AssertExpectations(t)
}

func TestRecordMade_DraftRejected(t *testing.T) {
	mockInteractionRepo := new(MockInteractionRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	interactionService := NewInteractionService(mockInteractionRepo, mockRecipeRepo)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)

	err := interactionService.RecordMade(&models.MadeRecipe{RecipeID: "recipe-1", UserID: "user-1"})

	assert.Equal(t, ErrRecipeNotPublic, err)
}
