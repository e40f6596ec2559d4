package handler

import (
	"errors"
	"log"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionService service.InteractionService
	trendingService    service.TrendingService
}

func NewInteractionHandler(interactionService service.InteractionService, trendingService service.TrendingService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		trendingService:    trendingService,
	}
}

// refreshScore updates the recipe's materialized trending score after a
// counter change. Best-effort; the worker's next pass corrects any miss.
func (h *InteractionHandler) refreshScore(recipeID string) {
	if h.trendingService == nil {
		return
	}
	if err := h.trendingService.RecomputeRecipe(recipeID); err != nil {
		log.Printf("[InteractionHandler] Score refresh failed for %s: %v", recipeID, err)
	}
}

// RegisterRoutes registers like/save/made routes. Everything here mutates or
// reads per-user state, so it all goes on the protected group, except the
// public "who made this" list.
func (h *InteractionHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/recipes/:recipe_id/made", h.ListMadeByRecipe)

	recipes := protected.Group("/recipes/:recipe_id")
	{
		recipes.POST("/like", h.Like)
		recipes.DELETE("/like", h.Unlike)
		recipes.POST("/save", h.Save)
		recipes.DELETE("/save", h.Unsave)
		recipes.POST("/made", h.RecordMade)
	}

	me := protected.Group("/me")
	{
		me.GET("/saved", h.ListSaved)
		me.GET("/made", h.ListMadeByMe)
	}
}

// Like likes a recipe. Liking twice is a no-op.
// POST /api/recipes/:recipe_id/like
func (h *InteractionHandler) Like(c *gin.Context) {
	h.toggle(c, h.interactionService.Like, "liked")
}

// Unlike removes a like. Removing a like that does not exist is a no-op.
// DELETE /api/recipes/:recipe_id/like
func (h *InteractionHandler) Unlike(c *gin.Context) {
	h.toggle(c, h.interactionService.Unlike, "unliked")
}

// Save bookmarks a recipe. Idempotent.
// POST /api/recipes/:recipe_id/save
func (h *InteractionHandler) Save(c *gin.Context) {
	h.toggle(c, h.interactionService.Save, "saved")
}

// Unsave removes a bookmark. Idempotent.
// DELETE /api/recipes/:recipe_id/save
func (h *InteractionHandler) Unsave(c *gin.Context) {
	h.toggle(c, h.interactionService.Unsave, "unsaved")
}

func (h *InteractionHandler) toggle(c *gin.Context, op func(recipeID, userID string) error, message string) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	err := op(c.Param("recipe_id"), userID)
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotPublic):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		h.refreshScore(c.Param("recipe_id"))
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// RecordMade logs that the caller cooked this recipe. Repeatable: every cook
// counts.
// POST /api/recipes/:recipe_id/made
func (h *InteractionHandler) RecordMade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.RecordMadeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	made := &models.MadeRecipe{
		RecipeID:  c.Param("recipe_id"),
		UserID:    userID,
		Rating:    req.Rating,
		Notes:     req.Notes,
		PhotoURLs: req.PhotoURLs,
	}

	err := h.interactionService.RecordMade(made)
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotPublic):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		h.refreshScore(made.RecipeID)
		c.JSON(http.StatusCreated, dto.FromModelToMadeResponse(made))
	}
}

// ListSaved returns the caller's bookmarked recipes, newest first.
// GET /api/me/saved?page=1&page_size=20
func (h *InteractionHandler) ListSaved(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, pageSize := paginationParams(c)

	saved, total, err := h.interactionService.ListSaved(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]dto.RecipeSummary, 0, len(saved))
	for i := range saved {
		if saved[i].Recipe == nil {
			continue
		}
		summaries = append(summaries, dto.FromModelToRecipeSummary(saved[i].Recipe))
	}

	c.JSON(http.StatusOK, dto.NewPaginated(summaries, int(total), page, pageSize))
}

// ListMadeByMe returns the caller's cooking log.
// GET /api/me/made?page=1&page_size=20
func (h *InteractionHandler) ListMadeByMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, pageSize := paginationParams(c)

	made, total, err := h.interactionService.ListMadeByUser(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]dto.MadeRecipeResponse, 0, len(made))
	for i := range made {
		results = append(results, dto.FromModelToMadeResponse(&made[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginated(results, int(total), page, pageSize))
}

// ListMadeByRecipe returns cook reports for a published recipe.
// GET /api/recipes/:recipe_id/made?page=1&page_size=20
func (h *InteractionHandler) ListMadeByRecipe(c *gin.Context) {
	page, pageSize := paginationParams(c)

	made, total, err := h.interactionService.ListMadeByRecipe(c.Param("recipe_id"), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) || errors.Is(err, service.ErrRecipeNotPublic) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]dto.MadeRecipeResponse, 0, len(made))
	for i := range made {
		results = append(results, dto.FromModelToMadeResponse(&made[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginated(results, int(total), page, pageSize))
}
