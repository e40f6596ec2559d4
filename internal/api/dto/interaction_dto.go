package dto

import (
	"time"

	"recipehub/internal/api/models"
)

type RecordMadeDTO struct {
	Rating    *int     `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes     *string  `json:"notes,omitempty"`
	PhotoURLs []string `json:"photo_urls,omitempty" binding:"omitempty,dive,url"`
}

type MadeRecipeResponse struct {
	ID        int64     `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	Rating    *int      `json:"rating,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	PhotoURLs []string  `json:"photo_urls,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToMadeResponse(made *models.MadeRecipe) MadeRecipeResponse {
	return MadeRecipeResponse{
		ID:        made.ID,
		RecipeID:  made.RecipeID,
		Rating:    made.Rating,
		Notes:     made.Notes,
		PhotoURLs: made.PhotoURLs,
		CreatedAt: made.CreatedAt,
	}
}

type CreateReviewDTO struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewResponse is the list-view shape (reviewer by name, no IDs).
type ReviewResponse struct {
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelToReviewResponse(review *models.RecipeReview) ReviewResponse {
	resp := ReviewResponse{
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
	if review.User != nil {
		resp.Username = review.User.Username
	}
	return resp
}

type FollowUserResponse struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	FollowedAt time.Time `json:"followed_at"`
}
