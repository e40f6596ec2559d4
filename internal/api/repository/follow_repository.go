package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(followerID, followingID string) error
	Delete(followerID, followingID string) error
	Exists(followerID, followingID string) (bool, error)
	ListFollowers(userID string, page, pageSize int) ([]models.Follow, int64, error)
	ListFollowing(userID string, page, pageSize int) ([]models.Follow, int64, error)
	ListFollowingIDs(userID string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(followerID, followingID string) error {
	return r.db.Create(&models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
}

func (r *followRepository) Delete(followerID, followingID string) error {
	result := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *followRepository) Exists(followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) ListFollowers(userID string, page, pageSize int) ([]models.Follow, int64, error) {
	query := r.db.Model(&models.Follow{}).Where("following_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []models.Follow
	err := query.
		Preload("Follower").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&follows).Error
	if err != nil {
		return nil, 0, err
	}

	return follows, total, nil
}

func (r *followRepository) ListFollowing(userID string, page, pageSize int) ([]models.Follow, int64, error) {
	query := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []models.Follow
	err := query.
		Preload("Following").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&follows).Error
	if err != nil {
		return nil, 0, err
	}

	return follows, total, nil
}

// ListFollowingIDs returns the IDs of every user this user follows, for
// building the recipe feed.
func (r *followRepository) ListFollowingIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
