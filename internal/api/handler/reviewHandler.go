package handler

import (
	"errors"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes nested under a recipe.
func (h *ReviewHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/recipes/:recipe_id/reviews", h.List)

	reviews := protected.Group("/recipes/:recipe_id/reviews")
	{
		reviews.PUT("", h.CreateOrUpdate)
		reviews.GET("/me", h.GetMine)
		reviews.DELETE("", h.Delete)
	}
}

// CreateOrUpdate writes the caller's review; a second call replaces the
// first. The recipe's average rating is recomputed in the same transaction.
// PUT /api/recipes/:recipe_id/reviews
func (h *ReviewHandler) CreateOrUpdate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateOrUpdate(c.Param("recipe_id"), userID, req.Rating, req.Comment)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// GetMine returns the caller's own review of a recipe.
// GET /api/recipes/:recipe_id/reviews/me
func (h *ReviewHandler) GetMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	review, err := h.reviewService.GetUserReview(c.Param("recipe_id"), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete removes the caller's review and recomputes the aggregate.
// DELETE /api/recipes/:recipe_id/reviews
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.reviewService.Delete(c.Param("recipe_id"), userID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// List returns all reviews for a recipe, newest first.
// GET /api/recipes/:recipe_id/reviews?page=1&page_size=20
func (h *ReviewHandler) List(c *gin.Context) {
	page, pageSize := paginationParams(c)

	reviews, total, err := h.reviewService.ListByRecipe(c.Param("recipe_id"), page, pageSize)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		results = append(results, dto.FromModelToReviewResponse(&reviews[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginated(results, int(total), page, pageSize))
}

func (h *ReviewHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotPublic):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
