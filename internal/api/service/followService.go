package service

import (
	"errors"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
	ErrNotFollowing = errors.New("not following this user")
)

type FollowService interface {
	Follow(followerID, followingID string) error
	Unfollow(followerID, followingID string) error
	ListFollowers(userID string, page, pageSize int) ([]models.Follow, int64, error)
	ListFollowing(userID string, page, pageSize int) ([]models.Follow, int64, error)
	Feed(userID string, page, pageSize int) ([]models.Recipe, int64, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
	}
}

// Follow creates the directed edge. Idempotent; following twice is a
// no-op. The schema only enforces pair uniqueness, so the self-follow
// guard lives here.
func (s *followService) Follow(followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	if _, err := s.userRepo.FindByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	exists, err := s.followRepo.Exists(followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.followRepo.Create(followerID, followingID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (s *followService) Unfollow(followerID, followingID string) error {
	err := s.followRepo.Delete(followerID, followingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFollowing
	}
	return err
}

func (s *followService) ListFollowers(userID string, page, pageSize int) ([]models.Follow, int64, error) {
	return s.followRepo.ListFollowers(userID, page, pageSize)
}

func (s *followService) ListFollowing(userID string, page, pageSize int) ([]models.Follow, int64, error) {
	return s.followRepo.ListFollowing(userID, page, pageSize)
}

// Feed lists published recipes from everyone the user follows, newest
// publications first.
func (s *followService) Feed(userID string, page, pageSize int) ([]models.Recipe, int64, error) {
	authorIDs, err := s.followRepo.ListFollowingIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	if len(authorIDs) == 0 {
		return []models.Recipe{}, 0, nil
	}
	return s.recipeRepo.ListByAuthors(authorIDs, page, pageSize)
}
