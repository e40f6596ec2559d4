package service

import (
	"errors"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrNotListOwner         = errors.New("not the shopping list owner")
)

type ShoppingListService interface {
	Create(userID string, list *models.ShoppingList) error
	Get(userID, listID string) (*models.ShoppingList, error)
	List(userID string) ([]models.ShoppingList, error)
	Update(userID string, list *models.ShoppingList) error
	Delete(userID, listID string) error
}

type shoppingListService struct {
	listRepo repository.ShoppingListRepository
}

func NewShoppingListService(listRepo repository.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{listRepo: listRepo}
}

func (s *shoppingListService) Create(userID string, list *models.ShoppingList) error {
	list.UserID = userID
	if list.Items == nil {
		list.Items = []map[string]any{}
	}
	return s.listRepo.Create(list)
}

func (s *shoppingListService) owned(userID, listID string) (*models.ShoppingList, error) {
	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShoppingListNotFound
		}
		return nil, err
	}
	if list.UserID != userID {
		return nil, ErrNotListOwner
	}
	return list, nil
}

func (s *shoppingListService) Get(userID, listID string) (*models.ShoppingList, error) {
	return s.owned(userID, listID)
}

func (s *shoppingListService) List(userID string) ([]models.ShoppingList, error) {
	return s.listRepo.ListByUser(userID)
}

func (s *shoppingListService) Update(userID string, list *models.ShoppingList) error {
	existing, err := s.owned(userID, list.ID)
	if err != nil {
		return err
	}
	existing.Name = list.Name
	existing.Items = list.Items
	return s.listRepo.Update(existing)
}

func (s *shoppingListService) Delete(userID, listID string) error {
	if _, err := s.owned(userID, listID); err != nil {
		return err
	}
	return s.listRepo.Delete(listID)
}
