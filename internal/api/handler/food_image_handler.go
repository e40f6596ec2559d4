package handler

import (
	"encoding/base64"
	"errors"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type FoodImageHandler struct {
	foodImageService service.FoodImageService
}

func NewFoodImageHandler(foodImageService service.FoodImageService) *FoodImageHandler {
	return &FoodImageHandler{foodImageService: foodImageService}
}

// RegisterRoutes registers food image routes. All protected.
func (h *FoodImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	{
		images.POST("", h.Upload)
		images.GET("", h.List)
		images.GET("/:image_id", h.Serve)
		images.GET("/:image_id/analysis", h.GetAnalysis)
		images.DELETE("/:image_id", h.Delete)
	}
}

// Upload stores an image and optionally runs dish analysis on it.
// POST /api/images
func (h *FoodImageHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateFoodImageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is not valid base64"})
		return
	}

	image := &models.FoodImage{
		RecipeID: req.RecipeID,
		Data:     data,
		MimeType: req.MimeType,
	}

	if err := h.foodImageService.Create(c.Request.Context(), userID, image, req.Analyze); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// Serve writes the raw image bytes with the stored content type.
// GET /api/images/:image_id
func (h *FoodImageHandler) Serve(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	image, err := h.foodImageService.Get(userID, c.Param("image_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, image.MimeType, image.Data)
}

// GetAnalysis returns the stored ML analysis for an image, if any.
// GET /api/images/:image_id/analysis
func (h *FoodImageHandler) GetAnalysis(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	image, err := h.foodImageService.Get(userID, c.Param("image_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": image.Analysis})
}

// List returns the caller's uploads (metadata only, no payloads).
// GET /api/images?page=1&page_size=20
func (h *FoodImageHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, pageSize := paginationParams(c)

	images, total, err := h.foodImageService.List(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginated(images, int(total), page, pageSize))
}

// Delete removes an upload.
// DELETE /api/images/:image_id
func (h *FoodImageHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.foodImageService.Delete(userID, c.Param("image_id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}

func (h *FoodImageHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotImageOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
