package service

import (
	"context"
	"testing"

	"recipehub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestRecipeCreate_AlwaysStartsAsDraft(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("Create", mock.AnythingOfType("*models.Recipe")).Return(nil)

	recipe := &models.Recipe{Title: "Pho", IsPublished: true}
	err := recipeService.Create("author-1", recipe)

	assert.NoError(t, err)
	assert.Equal(t, "author-1", recipe.UserID)
	assert.False(t, recipe.IsPublished)
	assert.Nil(t, recipe.PublishedAt)
	mockRecipeRepo.AssertExpectations(t)
}

func TestRecipeGet_DraftHiddenFromOthers(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)

	recipe, err := recipeService.Get(context.Background(), "recipe-1", "someone-else")

	assert.Equal(t, ErrRecipeNotFound, err)
	assert.Nil(t, recipe)
}

func TestRecipeGet_DraftVisibleToAuthor(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	mockViews := new(MockViewCounter)
	recipeService := NewRecipeService(mockRecipeRepo, mockViews, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)

	recipe, err := recipeService.Get(context.Background(), "recipe-1", "author-1")

	assert.NoError(t, err)
	assert.NotNil(t, recipe)
	// Draft views are not counted
	mockViews.AssertNotCalled(t, "IncrementView", mock.Anything, mock.Anything)
}

func TestRecipeGet_PublishedCountsView(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	mockViews := new(MockViewCounter)
	recipeService := NewRecipeService(mockRecipeRepo, mockViews, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockViews.On("IncrementView", mock.Anything, "recipe-1").Return(nil)

	recipe, err := recipeService.Get(context.Background(), "recipe-1", "")

	assert.NoError(t, err)
	assert.NotNil(t, recipe)
	mockViews.AssertExpectations(t)
}

func TestRecipeGet_ViewCountFailureIsNotFatal(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	mockViews := new(MockViewCounter)
	recipeService := NewRecipeService(mockRecipeRepo, mockViews, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)
	mockViews.On("IncrementView", mock.Anything, "recipe-1").Return(assert.AnError)
	mockRecipeRepo.On("IncrementViews", "recipe-1", int64(1)).Return(nil)

	recipe, err := recipeService.Get(context.Background(), "recipe-1", "viewer-1")

	assert.NoError(t, err)
	assert.NotNil(t, recipe)
	// Counter still lands, just on the recipe row instead of the cache
	mockRecipeRepo.AssertCalled(t, "IncrementViews", "recipe-1", int64(1))
}

func TestRecipeUpdate_NotAuthor(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)

	err := recipeService.Update("intruder", &models.Recipe{ID: "recipe-1", Title: "Hijacked"})

	assert.Equal(t, ErrNotRecipeAuthor, err)
	mockRecipeRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestRecipeUpdate_DoesNotTouchCounters(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	existing := publishedRecipe("recipe-1", "author-1")
	existing.LikesCount = 42
	mockRecipeRepo.On("GetByID", "recipe-1").Return(existing, nil)
	mockRecipeRepo.On("Update", mock.AnythingOfType("*models.Recipe")).Return(nil)

	incoming := &models.Recipe{ID: "recipe-1", Title: "New Title", LikesCount: 9999}
	err := recipeService.Update("author-1", incoming)

	assert.NoError(t, err)
	assert.Equal(t, "New Title", existing.Title)
	assert.Equal(t, int64(42), existing.LikesCount)
	assert.True(t, existing.IsPublished)
}

func TestRecipePublish_Success(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)
	mockRecipeRepo.On("Publish", mock.AnythingOfType("*models.Recipe")).Return(nil)

	recipe, err := recipeService.Publish("author-1", "recipe-1")

	assert.NoError(t, err)
	assert.True(t, recipe.IsPublished)
	assert.NotNil(t, recipe.PublishedAt)
	mockRecipeRepo.AssertExpectations(t)
}

func TestRecipePublish_SecondPublishRejected(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(publishedRecipe("recipe-1", "author-1"), nil)

	recipe, err := recipeService.Publish("author-1", "recipe-1")

	assert.Equal(t, ErrAlreadyPublished, err)
	assert.Nil(t, recipe)
	mockRecipeRepo.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestRecipePublish_NotAuthor(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("GetByID", "recipe-1").Return(draftRecipe("recipe-1", "author-1"), nil)

	recipe, err := recipeService.Publish("intruder", "recipe-1")

	assert.Equal(t, ErrNotRecipeAuthor, err)
	assert.Nil(t, recipe)
}

func TestRecipeDelete_NotFound(t *testing.T) {
	mockRecipeRepo := new(MockRecipeRepository)
	recipeService := NewRecipeService(mockRecipeRepo, nil, nil)

	mockRecipeRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	err := recipeService.Delete("author-1", "missing")

	assert.Equal(t, ErrRecipeNotFound, err)
}
