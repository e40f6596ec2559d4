package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	GetByID(id string) (*models.MealPlan, error)
	ListByUser(userID string, page, pageSize int) ([]models.MealPlan, int64, error)
	Update(plan *models.MealPlan) error
	Delete(id string) error
	AddItem(item *models.MealPlanItem) error
	RemoveItem(planID string, itemID int64) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

func (r *mealPlanRepository) GetByID(id string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_plan_items.date, meal_plan_items.meal_type")
		}).
		Preload("Items.Recipe").
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) ListByUser(userID string, page, pageSize int) ([]models.MealPlan, int64, error) {
	query := r.db.Model(&models.MealPlan{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []models.MealPlan
	err := query.
		Order("start_date DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

func (r *mealPlanRepository) Update(plan *models.MealPlan) error {
	return r.db.Save(plan).Error
}

func (r *mealPlanRepository) Delete(id string) error {
	result := r.db.Delete(&models.MealPlan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mealPlanRepository) AddItem(item *models.MealPlanItem) error {
	return r.db.Create(item).Error
}

func (r *mealPlanRepository) RemoveItem(planID string, itemID int64) error {
	result := r.db.Where("meal_plan_id = ? AND id = ?", planID, itemID).
		Delete(&models.MealPlanItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
