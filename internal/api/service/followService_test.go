package service

import (
	"testing"

	"recipehub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestFollow_Success(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	mockUserRepo.On("FindByID", "user-2").Return(&models.User{ID: "user-2"}, nil)
	mockFollowRepo.On("Exists", "user-1", "user-2").Return(false, nil)
	mockFollowRepo.On("Create", "user-1", "user-2").Return(nil)

	err := followService.Follow("user-1", "user-2")

	assert.NoError(t, err)
	mockFollowRepo.AssertExpectations(t)
}

func TestFollow_SelfRejected(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	err := followService.Follow("user-1", "user-1")

	assert.Equal(t, ErrSelfFollow, err)
	mockFollowRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFollow_UnknownTarget(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	mockUserRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	err := followService.Follow("user-1", "ghost")

	assert.Equal(t, ErrUserNotFound, err)
}

func TestFollow_TwiceIsNoOp(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	mockUserRepo.On("FindByID", "user-2").Return(&models.User{ID: "user-2"}, nil)
	mockFollowRepo.On("Exists", "user-1", "user-2").Return(true, nil)

	err := followService.Follow("user-1", "user-2")

	assert.NoError(t, err)
	mockFollowRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnfollow_NotFollowing(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	mockFollowRepo.On("Delete", "user-1", "user-2").Return(gorm.ErrRecordNotFound)

	err := followService.Unfollow("user-1", "user-2")

	assert.Equal(t, ErrNotFollowing, err)
}

func TestFeed_EmptyWithoutFollows(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	mockFollowRepo.On("ListFollowingIDs", "user-1").Return([]string{}, nil)

	recipes, total, err := followService.Feed("user-1", 1, 20)

	assert.NoError(t, err)
	assert.Empty(t, recipes)
	assert.Zero(t, total)
	mockRecipeRepo.AssertNotCalled(t, "ListByAuthors", mock.Anything, mock.Anything, mock.Anything)
}

func TestFeed_QueriesFollowedAuthors(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	mockRecipeRepo := new(MockRecipeRepository)
	followService := NewFollowService(mockFollowRepo, mockUserRepo, mockRecipeRepo)

	mockFollowRepo.On("ListFollowingIDs", "user-1").Return([]string{"user-2", "user-3"}, nil)
	mockRecipeRepo.On("ListByAuthors", []string{"user-2", "user-3"}, 1, 20).
		Return([]models.Recipe{*publishedRecipe("recipe-1", "user-2")}, int64(1), nil)

	recipes, total, err := followService.Feed("user-1", 1, 20)

	assert.NoError(t, err)
	assert.Len(t, recipes, 1)
	assert.Equal(t, int64(1), total)
	mockRecipeRepo.AssertExpectations(t)
}
