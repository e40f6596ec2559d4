package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"
	"recipehub/internal/mlclient"

	"github.com/gin-gonic/gin"
)

type MealPlanHandler struct {
	mealPlanService service.MealPlanService
}

func NewMealPlanHandler(mealPlanService service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// RegisterRoutes registers meal plan routes. All owner-scoped, all protected.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.POST("", h.Create)
		plans.GET("", h.List)
		plans.POST("/generate", h.Generate)
		plans.POST("/flyer-dinner", h.FlyerDinner)
		plans.GET("/:plan_id", h.Get)
		plans.PUT("/:plan_id", h.Update)
		plans.DELETE("/:plan_id", h.Delete)
		plans.POST("/:plan_id/items", h.AddItem)
		plans.DELETE("/:plan_id/items/:item_id", h.RemoveItem)
	}
}

// Create starts a new plan covering a date range.
// POST /api/meal-plans
func (h *MealPlanHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateMealPlanDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := req.ToModel()
	if err := h.mealPlanService.Create(userID, plan); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// Get returns one plan with its items and their recipes.
// GET /api/meal-plans/:plan_id
func (h *MealPlanHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plan, err := h.mealPlanService.Get(userID, c.Param("plan_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// List returns the caller's plans.
// GET /api/meal-plans?page=1&page_size=20
func (h *MealPlanHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, pageSize := paginationParams(c)

	plans, total, err := h.mealPlanService.List(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginated(plans, int(total), page, pageSize))
}

// Update renames a plan or shifts its date range.
// PUT /api/meal-plans/:plan_id
func (h *MealPlanHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateMealPlanDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := req.ToModel()
	plan.ID = c.Param("plan_id")

	if err := h.mealPlanService.Update(userID, plan); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Delete removes a plan and its items.
// DELETE /api/meal-plans/:plan_id
func (h *MealPlanHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.mealPlanService.Delete(userID, c.Param("plan_id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

// AddItem schedules a recipe into a plan slot.
// POST /api/meal-plans/:plan_id/items
func (h *MealPlanHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddMealPlanItemDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.MealPlanItem{
		MealPlanID: c.Param("plan_id"),
		RecipeID:   req.RecipeID,
		Date:       req.Date,
		MealType:   req.MealType,
		Servings:   req.Servings,
	}
	if item.Servings <= 0 {
		item.Servings = 1
	}

	if err := h.mealPlanService.AddItem(userID, item); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItem takes a recipe out of a plan slot.
// DELETE /api/meal-plans/:plan_id/items/:item_id
func (h *MealPlanHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	if err := h.mealPlanService.RemoveItem(userID, c.Param("plan_id"), itemID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

// Generate asks the ML backend to draft a multi-day plan. The result is
// returned to the client as-is; nothing is persisted until the user saves it.
// POST /api/meal-plans/generate
func (h *MealPlanHandler) Generate(c *gin.Context) {
	var req dto.GenerateMealPlanDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	servings := req.Servings
	if servings == 0 {
		servings = 2
	}

	plan, err := h.mealPlanService.Generate(c.Request.Context(), &mlclient.MealPlanRequest{
		Days:                req.Days,
		DietaryRestrictions: req.DietaryRestrictions,
		CuisinePreferences:  req.CuisinePreferences,
		Servings:            servings,
		ExcludeIngredients:  req.ExcludeIngredients,
		CaloriesPerDay:      req.CaloriesPerDay,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "meal plan generation failed"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// FlyerDinner asks the ML backend to build a dinner plan from a grocery
// flyer. Nothing is persisted; the draft goes straight back to the client.
// POST /api/meal-plans/flyer-dinner
func (h *MealPlanHandler) FlyerDinner(c *gin.Context) {
	var req dto.FlyerDinnerDTO
	// An empty body means "use the backend's default flyer"
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dinner, err := h.mealPlanService.FlyerDinner(c.Request.Context(), req.Banner)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "flyer dinner generation failed"})
		return
	}

	c.JSON(http.StatusOK, dinner)
}

func (h *MealPlanHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMealPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotPlanOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDateRange), errors.Is(err, service.ErrItemOutsideRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
