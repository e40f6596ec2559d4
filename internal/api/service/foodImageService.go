package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/mlclient"

	"gorm.io/gorm"
)

var (
	ErrImageNotFound = errors.New("food image not found")
	ErrNotImageOwner = errors.New("not the image owner")
)

type FoodImageService interface {
	Create(ctx context.Context, userID string, image *models.FoodImage, analyze bool) error
	Get(userID, imageID string) (*models.FoodImage, error)
	List(userID string, page, pageSize int) ([]models.FoodImage, int64, error)
	Delete(userID, imageID string) error
}

type foodImageService struct {
	imageRepo repository.FoodImageRepository
	ml        *mlclient.Client
}

func NewFoodImageService(imageRepo repository.FoodImageRepository, ml *mlclient.Client) FoodImageService {
	return &foodImageService{
		imageRepo: imageRepo,
		ml:        ml,
	}
}

// Create stores the image record and, when requested, sends it to the ML
// backend for dish analysis. Analysis is best-effort: the record is kept
// even when the collaborator is down, and can be re-analyzed later.
func (s *foodImageService) Create(ctx context.Context, userID string, image *models.FoodImage, analyze bool) error {
	image.UserID = &userID

	if err := s.imageRepo.Create(image); err != nil {
		return err
	}

	if !analyze {
		return nil
	}

	encoded := base64.StdEncoding.EncodeToString(image.Data)
	analysis, err := s.ml.AnalyzeFoodImage(ctx, encoded)
	if err != nil {
		log.Printf("[FoodImageService] Analysis failed for image %s: %v", image.ID, err)
		return nil
	}

	image.Analysis = analysis
	return s.imageRepo.UpdateAnalysis(image.ID, analysis)
}

func (s *foodImageService) Get(userID, imageID string) (*models.FoodImage, error) {
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	if image.UserID == nil || *image.UserID != userID {
		return nil, ErrNotImageOwner
	}
	return image, nil
}

func (s *foodImageService) List(userID string, page, pageSize int) ([]models.FoodImage, int64, error) {
	return s.imageRepo.ListByUser(userID, page, pageSize)
}

func (s *foodImageService) Delete(userID, imageID string) error {
	if _, err := s.Get(userID, imageID); err != nil {
		return err
	}
	return s.imageRepo.Delete(imageID)
}
