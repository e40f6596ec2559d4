package handler

import (
	"errors"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService     service.RecipeService
	ingredientService service.IngredientService
}

func NewRecipeHandler(recipeService service.RecipeService, ingredientService service.IngredientService) *RecipeHandler {
	return &RecipeHandler{
		recipeService:     recipeService,
		ingredientService: ingredientService,
	}
}

// RegisterRoutes registers recipe routes. Reads go on the public group (which
// carries OptionalAuth so authors can see their own drafts); writes go on the
// protected group.
func (h *RecipeHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/recipes", h.List)
	public.GET("/recipes/:recipe_id", h.Get)

	recipes := protected.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.GET("/drafts", h.ListDrafts)
		recipes.PUT("/:recipe_id", h.Update)
		recipes.DELETE("/:recipe_id", h.Delete)
		recipes.POST("/:recipe_id/publish", h.Publish)
		recipes.POST("/:recipe_id/analyze", h.Analyze)
		recipes.POST("/:recipe_id/ingredients", h.AttachIngredient)
		recipes.DELETE("/:recipe_id/ingredients/:ingredient_id", h.DetachIngredient)
	}
}

// Create makes a new recipe, always as a draft.
// POST /api/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateRecipeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := req.ToModel()
	if err := h.recipeService.Create(userID, recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// Get returns a single recipe. Drafts are only visible to their author;
// published views are counted.
// GET /api/recipes/:recipe_id
func (h *RecipeHandler) Get(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	recipe, err := h.recipeService.Get(c.Request.Context(), c.Param("recipe_id"), viewerID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// List returns published recipes, filterable and paginated.
// GET /api/recipes?cuisine=&category=&difficulty=&tag=&search=&page=1&page_size=20
func (h *RecipeHandler) List(c *gin.Context) {
	page, pageSize := paginationParams(c)

	filter := repository.RecipeFilter{
		Cuisine:    c.Query("cuisine"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Tag:        c.Query("tag"),
		Search:     c.Query("search"),
	}

	recipes, total, err := h.recipeService.ListPublished(filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]dto.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, dto.FromModelToRecipeSummary(&recipes[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginated(summaries, int(total), page, pageSize))
}

// ListDrafts returns the caller's unpublished recipes.
// GET /api/recipes/drafts?page=1&page_size=20
func (h *RecipeHandler) ListDrafts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, pageSize := paginationParams(c)

	recipes, total, err := h.recipeService.ListDrafts(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]dto.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, dto.FromModelToRecipeSummary(&recipes[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginated(summaries, int(total), page, pageSize))
}

// Update modifies a recipe's content fields. Author only.
// PUT /api/recipes/:recipe_id
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateRecipeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := req.ToModel()
	recipe.ID = c.Param("recipe_id")

	if err := h.recipeService.Update(userID, recipe); err != nil {
		h.writeRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Delete removes a recipe and its dependents.
// DELETE /api/recipes/:recipe_id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recipeService.Delete(userID, c.Param("recipe_id")); err != nil {
		h.writeRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// Publish flips a draft to published. One-way.
// POST /api/recipes/:recipe_id/publish
func (h *RecipeHandler) Publish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe, err := h.recipeService.Publish(userID, c.Param("recipe_id"))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyPublished) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.writeRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Analyze runs the ML analysis pass and stores tags, nutrition and pairings.
// POST /api/recipes/:recipe_id/analyze
func (h *RecipeHandler) Analyze(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe, err := h.recipeService.Analyze(c.Request.Context(), userID, c.Param("recipe_id"))
	if err != nil {
		h.writeRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// AttachIngredient links an ingredient to a recipe.
// POST /api/recipes/:recipe_id/ingredients
func (h *RecipeHandler) AttachIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AttachIngredientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link := &models.RecipeIngredient{
		RecipeID:     c.Param("recipe_id"),
		IngredientID: req.IngredientID,
		Amount:       req.Amount,
		Unit:         req.Unit,
		Preparation:  req.Preparation,
		Optional:     req.Optional,
	}

	err := h.ingredientService.Attach(userID, link)
	switch {
	case errors.Is(err, service.ErrAlreadyAttached):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		h.writeRecipeError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{"ingredients": h.recipeIngredients(link.RecipeID, link)})
	}
}

// recipeIngredients reloads the recipe's ingredient links for the response.
// Falls back to just the touched link if the reload fails.
func (h *RecipeHandler) recipeIngredients(recipeID string, fallback *models.RecipeIngredient) []models.RecipeIngredient {
	links, err := h.ingredientService.ListForRecipe(recipeID)
	if err != nil {
		if fallback == nil {
			return []models.RecipeIngredient{}
		}
		return []models.RecipeIngredient{*fallback}
	}
	return links
}

// DetachIngredient unlinks an ingredient from a recipe.
// DELETE /api/recipes/:recipe_id/ingredients/:ingredient_id
func (h *RecipeHandler) DetachIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	err := h.ingredientService.Detach(userID, c.Param("recipe_id"), c.Param("ingredient_id"))
	if err != nil {
		h.writeRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "ingredient removed",
		"ingredients": h.recipeIngredients(c.Param("recipe_id"), nil),
	})
}

func (h *RecipeHandler) writeRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotRecipeAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
