package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/mlclient"

	"github.com/gin-gonic/gin"
)

// ChatHandler relays the cooking assistant endpoints to the ML backend.
type ChatHandler struct {
	ml *mlclient.Client
}

func NewChatHandler(ml *mlclient.Client) *ChatHandler {
	return &ChatHandler{ml: ml}
}

// RegisterRoutes registers assistant routes. All protected; these calls cost
// ML backend quota.
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.Chat)
	router.POST("/chat/simple", h.ChatSimple)
	router.POST("/recommendations", h.Recommend)
}

// Chat streams assistant tokens to the client as server-sent events. Each
// frame from the ML backend is forwarded as one SSE data line.
// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	chatReq := &mlclient.ChatRequest{
		Message:   req.Message,
		SessionID: req.SessionID,
	}

	err := h.ml.ChatStream(c.Request.Context(), chatReq, func(frame mlclient.ChatFrame) error {
		payload, err := json.Marshal(frame)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Headers are already out; report the failure in-band.
		frame := mlclient.ChatFrame{Type: mlclient.FrameError, Content: "assistant unavailable"}
		if payload, merr := json.Marshal(frame); merr == nil {
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

// ChatSimple sends one message and waits for the full reply.
// POST /api/chat/simple
func (h *ChatHandler) ChatSimple(c *gin.Context) {
	var req dto.ChatDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.ml.ChatSimple(c.Request.Context(), &mlclient.ChatRequest{
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// Recommend asks the ML backend for recipes matching a free-text query.
// POST /api/recommendations
func (h *ChatHandler) Recommend(c *gin.Context) {
	var req struct {
		Query               string   `json:"query" binding:"required,max=500"`
		DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
		CuisinePreferences  []string `json:"cuisine_preferences,omitempty"`
		MaxCookingTime      *int     `json:"max_cooking_time,omitempty" binding:"omitempty,min=1"`
		MaxResults          int      `json:"max_results" binding:"omitempty,min=1,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.MaxResults == 0 {
		req.MaxResults = 10
	}

	recs, err := h.ml.RecommendRecipes(c.Request.Context(), &mlclient.RecipeRecommendationRequest{
		Query:               req.Query,
		DietaryRestrictions: req.DietaryRestrictions,
		CuisinePreferences:  req.CuisinePreferences,
		MaxCookingTime:      req.MaxCookingTime,
		MaxResults:          req.MaxResults,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation service unavailable"})
		return
	}

	c.JSON(http.StatusOK, recs)
}
