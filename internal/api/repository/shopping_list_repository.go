package repository

import (
	"recipehub/internal/api/models"

	"gorm.io/gorm"
)

type ShoppingListRepository interface {
	Create(list *models.ShoppingList) error
	GetByID(id string) (*models.ShoppingList, error)
	ListByUser(userID string) ([]models.ShoppingList, error)
	Update(list *models.ShoppingList) error
	Delete(id string) error
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) Create(list *models.ShoppingList) error {
	return r.db.Create(list).Error
}

func (r *shoppingListRepository) GetByID(id string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := r.db.First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) ListByUser(userID string) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&lists).Error
	return lists, err
}

func (r *shoppingListRepository) Update(list *models.ShoppingList) error {
	return r.db.Save(list).Error
}

func (r *shoppingListRepository) Delete(id string) error {
	result := r.db.Delete(&models.ShoppingList{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
