package handler

import (
	"errors"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ShoppingListHandler struct {
	shoppingListService service.ShoppingListService
}

func NewShoppingListHandler(shoppingListService service.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingListService: shoppingListService}
}

// RegisterRoutes registers shopping list routes. All protected.
func (h *ShoppingListHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/shopping-lists")
	{
		lists.POST("", h.Create)
		lists.GET("", h.List)
		lists.GET("/:list_id", h.Get)
		lists.PUT("/:list_id", h.Update)
		lists.DELETE("/:list_id", h.Delete)
	}
}

// POST /api/shopping-lists
func (h *ShoppingListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateShoppingListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := &models.ShoppingList{
		Name:  req.Name,
		Items: req.Items,
	}

	if err := h.shoppingListService.Create(userID, list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, list)
}

// GET /api/shopping-lists/:list_id
func (h *ShoppingListHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	list, err := h.shoppingListService.Get(userID, c.Param("list_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /api/shopping-lists
func (h *ShoppingListHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	lists, err := h.shoppingListService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": lists})
}

// PUT /api/shopping-lists/:list_id
func (h *ShoppingListHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateShoppingListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list := &models.ShoppingList{
		ID:    c.Param("list_id"),
		Name:  req.Name,
		Items: req.Items,
	}

	if err := h.shoppingListService.Update(userID, list); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// DELETE /api/shopping-lists/:list_id
func (h *ShoppingListHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.shoppingListService.Delete(userID, c.Param("list_id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shopping list deleted"})
}

func (h *ShoppingListHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShoppingListNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotListOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
