package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type FoodImageRepository interface {
	Create(image *models.FoodImage) error
	GetByID(id string) (*models.FoodImage, error)
	ListByUser(userID string, page, pageSize int) ([]models.FoodImage, int64, error)
	UpdateAnalysis(id string, analysis map[string]any) error
	Delete(id string) error
}

type foodImageRepository struct {
	db *gorm.DB
}

func NewFoodImageRepository(db *gorm.DB) FoodImageRepository {
	return &foodImageRepository{db: db}
}

func (r *foodImageRepository) Create(image *models.FoodImage) error {
	return r.db.Create(image).Error
}

func (r *foodImageRepository) GetByID(id string) (*models.FoodImage, error) {
	var image models.FoodImage
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *foodImageRepository) ListByUser(userID string, page, pageSize int) ([]models.FoodImage, int64, error) {
	query := r.db.Model(&models.FoodImage{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []models.FoodImage
	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&images).Error
	if err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (r *foodImageRepository) UpdateAnalysis(id string, analysis map[string]any) error {
	result := r.db.Model(&models.FoodImage{}).
		Where("id = ?", id).
		Select("analysis").
		Updates(&models.FoodImage{Analysis: analysis})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodImageRepository) Delete(id string) error {
	result := r.db.Delete(&models.FoodImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
