package handler

import (
	"net/http"
	"strconv"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trendingService service.TrendingService
}

func NewTrendingHandler(trendingService service.TrendingService) *TrendingHandler {
	return &TrendingHandler{trendingService: trendingService}
}

// RegisterRoutes registers the trending feed. Public.
func (h *TrendingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/trending", h.List)
}

// List returns the current trending recipes, best score first.
// GET /api/recipes/trending?limit=20
func (h *TrendingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := h.trendingService.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]dto.TrendingRecipeResponse, 0, len(entries))
	for i := range entries {
		results = append(results, dto.FromModelToTrendingResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}
