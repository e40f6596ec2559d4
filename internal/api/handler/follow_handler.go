package handler

import (
	"errors"
	"net/http"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterRoutes registers follow-graph routes. Follower/following lists are
// public; follow, unfollow and the feed require authentication.
func (h *FollowHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/users/:user_id/followers", h.ListFollowers)
	public.GET("/users/:user_id/following", h.ListFollowing)

	protected.POST("/users/:user_id/follow", h.Follow)
	protected.DELETE("/users/:user_id/follow", h.Unfollow)
	protected.GET("/feed", h.Feed)
}

// Follow makes the caller follow another user. Idempotent.
// POST /api/users/:user_id/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	err := h.followService.Follow(userID, c.Param("user_id"))
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "followed"})
	}
}

// Unfollow removes a follow edge.
// DELETE /api/users/:user_id/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	err := h.followService.Unfollow(userID, c.Param("user_id"))
	switch {
	case errors.Is(err, service.ErrNotFollowing):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
	}
}

// ListFollowers lists who follows a user.
// GET /api/users/:user_id/followers?page=1&page_size=20
func (h *FollowHandler) ListFollowers(c *gin.Context) {
	page, pageSize := paginationParams(c)

	follows, total, err := h.followService.ListFollowers(c.Param("user_id"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]dto.FollowUserResponse, 0, len(follows))
	for i := range follows {
		f := &follows[i]
		if f.Follower == nil {
			continue
		}
		results = append(results, dto.FollowUserResponse{
			UserID:     f.Follower.ID,
			Username:   f.Follower.Username,
			AvatarURL:  f.Follower.AvatarURL,
			FollowedAt: f.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.NewPaginated(results, int(total), page, pageSize))
}

// ListFollowing lists who a user follows.
// GET /api/users/:user_id/following?page=1&page_size=20
func (h *FollowHandler) ListFollowing(c *gin.Context) {
	page, pageSize := paginationParams(c)

	follows, total, err := h.followService.ListFollowing(c.Param("user_id"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]dto.FollowUserResponse, 0, len(follows))
	for i := range follows {
		f := &follows[i]
		if f.Following == nil {
			continue
		}
		results = append(results, dto.FollowUserResponse{
			UserID:     f.Following.ID,
			Username:   f.Following.Username,
			AvatarURL:  f.Following.AvatarURL,
			FollowedAt: f.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.NewPaginated(results, int(total), page, pageSize))
}

// Feed returns recent published recipes from users the caller follows.
// GET /api/feed?page=1&page_size=20
func (h *FollowHandler) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, pageSize := paginationParams(c)

	recipes, total, err := h.followService.Feed(userID, page, pageSize)
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
