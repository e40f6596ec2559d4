package mlclient

// Request/response shapes for the ML backend. These mirror the service's
// JSON contract; fields this app does not consume stay in opaque maps.

type IngredientInput struct {
	Name        string   `json:"name"`
	Amount      *float64 `json:"amount,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Preparation *string  `json:"preparation,omitempty"`
}

type RecipeAnalysisRequest struct {
	Ingredients  []IngredientInput `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Cuisine      *string           `json:"cuisine,omitempty"`
	Category     *string           `json:"category,omitempty"`
	Servings     int               `json:"servings"`
}

type RecipeAnalysisResponse struct {
	Tags           []string       `json:"tags"`
	Nutrition      map[string]any `json:"nutrition"`
	Pairings       []string       `json:"pairings"`
	Difficulty     *string        `json:"difficulty,omitempty"`
	ProcessingTime float64        `json:"processing_time"`
}

type ImageAnalysisRequest struct {
	Image string `json:"image"` // base64-encoded payload
}

type RecipeRecommendationRequest struct {
	Query               string   `json:"query"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  []string `json:"cuisine_preferences,omitempty"`
	MaxCookingTime      *int     `json:"max_cooking_time,omitempty"`
	MaxResults          int      `json:"max_results"`
}

type MealPlanRequest struct {
	Days                int      `json:"days"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	CuisinePreferences  []string `json:"cuisine_preferences,omitempty"`
	Servings            int      `json:"servings"`
	ExcludeIngredients  []string `json:"exclude_ingredients,omitempty"`
	CaloriesPerDay      *int     `json:"calories_per_day,omitempty"`
}

type FlyerDinnerRequest struct {
	// Banner is a grocery flyer image URL; the backend falls back to a
	// stock flyer when empty.
	Banner string `json:"banner"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// Chat frame types emitted by the streaming endpoint.
const (
	FrameToken = "token"
	FrameAI    = "ai"
	FrameHuman = "human"
	FrameEnd   = "end"
	FrameError = "error"
)

// ChatFrame is one typed frame from the streaming chat endpoint.
type ChatFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
