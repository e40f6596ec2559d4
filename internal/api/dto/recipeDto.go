package dto

import (
	"time"

	"recipehub/internal/api/models"
)

type CreateRecipeDTO struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     *string  `json:"description,omitempty"`
	Instructions    []string `json:"instructions" binding:"required,min=1"`
	ImageURLs       []string `json:"image_urls,omitempty" binding:"omitempty,dive,url"`
	PrepTimeMinutes *int     `json:"prep_time_minutes,omitempty" binding:"omitempty,min=0"`
	CookTimeMinutes *int     `json:"cook_time_minutes,omitempty" binding:"omitempty,min=0"`
	Servings        *int     `json:"servings,omitempty" binding:"omitempty,min=1"`
	Difficulty      *string  `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
	Cuisine         *string  `json:"cuisine,omitempty"`
	Category        *string  `json:"category,omitempty"`
	UserTags        []string `json:"user_tags,omitempty"`
}

func (d *CreateRecipeDTO) ToModel() *models.Recipe {
	return &models.Recipe{
		Title:           d.Title,
		Description:     d.Description,
		Instructions:    d.Instructions,
		ImageURLs:       d.ImageURLs,
		PrepTimeMinutes: d.PrepTimeMinutes,
		CookTimeMinutes: d.CookTimeMinutes,
		Servings:        d.Servings,
		Difficulty:      d.Difficulty,
		Cuisine:         d.Cuisine,
		Category:        d.Category,
		UserTags:        d.UserTags,
	}
}

// RecipeSummary is the list-view shape.
type RecipeSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Difficulty  *string    `json:"difficulty,omitempty"`
	Cuisine     *string    `json:"cuisine,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	LikesCount  int64      `json:"likes_count"`
	SavesCount  int64      `json:"saves_count"`
	MadeCount   int64      `json:"made_count"`
	AvgRating   float64    `json:"avg_rating"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromModelToRecipeSummary(recipe *models.Recipe) RecipeSummary {
	summary := RecipeSummary{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Difficulty:  recipe.Difficulty,
		Cuisine:     recipe.Cuisine,
		Tags:        recipe.Tags(),
		LikesCount:  recipe.LikesCount,
		SavesCount:  recipe.SavesCount,
		MadeCount:   recipe.MadeCount,
		AvgRating:   recipe.AvgRating,
		PublishedAt: recipe.PublishedAt,
		CreatedAt:   recipe.CreatedAt,
	}
	if recipe.User != nil {
		summary.Author = recipe.User.Username
	}
	if len(recipe.ImageURLs) > 0 {
		summary.ImageURL = &recipe.ImageURLs[0]
	}
	return summary
}

// TrendingRecipeResponse pairs a recipe summary with its trending score.
type TrendingRecipeResponse struct {
	Score      float64       `json:"score"`
	TrendingAt *time.Time    `json:"trending_at,omitempty"`
	Recipe     RecipeSummary `json:"recipe"`
}

func FromModelToTrendingResponse(tr *models.TrendingRecipe) TrendingRecipeResponse {
	resp := TrendingRecipeResponse{Score: tr.Score}
	if !tr.TrendingAt.IsZero() {
		at := tr.TrendingAt
		resp.TrendingAt = &at
	}
	if tr.Recipe != nil {
		resp.Recipe = FromModelToRecipeSummary(tr.Recipe)
	}
	return resp
}

type AttachIngredientDTO struct {
	IngredientID string   `json:"ingredient_id" binding:"required,uuid"`
	Amount       *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Unit         *string  `json:"unit,omitempty"`
	Preparation  *string  `json:"preparation,omitempty"`
	Optional     bool     `json:"optional"`
}

type CreateIngredientDTO struct {
	Name             string         `json:"name" binding:"required,max=100"`
	Category         *string        `json:"category,omitempty"`
	DefaultUnit      *string        `json:"default_unit,omitempty"`
	Aliases          []string       `json:"aliases,omitempty"`
	NutritionPer100g map[string]any `json:"nutrition_per_100g,omitempty"`
}
