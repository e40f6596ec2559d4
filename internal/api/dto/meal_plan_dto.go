package dto

import (
	"time"

	"recipehub/internal/api/models"
)

type CreateMealPlanDTO struct {
	Name      string    `json:"name" binding:"required,max=100"`
	StartDate time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
}

func (d *CreateMealPlanDTO) ToModel() *models.MealPlan {
	return &models.MealPlan{
		Name:      d.Name,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
	}
}

type AddMealPlanItemDTO struct {
	RecipeID string    `json:"recipe_id" binding:"required,uuid"`
	Date     time.Time `json:"date" binding:"required" time_format:"2006-01-02"`
	MealType string    `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Servings float64   `json:"servings" binding:"omitempty,gt=0"`
}

type GenerateMealPlanDTO struct {
	Days                int      `json:"days" binding:"required,min=1,max=14"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  []string `json:"cuisine_preferences,omitempty"`
	Servings            int      `json:"servings" binding:"omitempty,min=1"`
	ExcludeIngredients  []string `json:"exclude_ingredients,omitempty"`
	CaloriesPerDay      *int     `json:"calories_per_day,omitempty" binding:"omitempty,min=500"`
}

type FlyerDinnerDTO struct {
	// Flyer image URL; the ML backend supplies a default when omitted
	Banner string `json:"banner" binding:"omitempty,url"`
}

type CreateShoppingListDTO struct {
	Name  string           `json:"name" binding:"required,max=100"`
	Items []map[string]any `json:"items,omitempty"`
}

type CreateFoodImageDTO struct {
	// Image payload, base64 encoded
	Image    string  `json:"image" binding:"required"`
	MimeType string  `json:"mime_type" binding:"required"`
	RecipeID *string `json:"recipe_id,omitempty" binding:"omitempty,uuid"`
	Analyze  bool    `json:"analyze"`
}

type ChatDTO struct {
	Message   string `json:"message" binding:"required,max=4000"`
	SessionID string `json:"session_id,omitempty"`
}
