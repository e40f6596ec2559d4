package handler

import (
	"errors"
	"net/http"
	"strconv"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	ingredientService service.IngredientService
}

func NewIngredientHandler(ingredientService service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// RegisterRoutes registers the ingredient catalog routes. Search is public;
// creating catalog entries needs a logged-in user.
func (h *IngredientHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/ingredients/search", h.Search)
	protected.POST("/ingredients", h.Create)
}

// Create adds an ingredient to the shared catalog.
// POST /api/ingredients
func (h *IngredientHandler) Create(c *gin.Context) {
	var req dto.CreateIngredientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := &models.Ingredient{
		Name:             req.Name,
		Category:         req.Category,
		DefaultUnit:      req.DefaultUnit,
		Aliases:          req.Aliases,
		NutritionPer100g: req.NutritionPer100g,
	}

	if err := h.ingredientService.Create(ingredient); err != nil {
		if errors.Is(err, service.ErrIngredientExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

// Search matches ingredients by name or alias.
// GET /api/ingredients/search?q=toma&limit=10
func (h *IngredientHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	ingredients, err := h.ingredientService.Search(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ingredients})
}
