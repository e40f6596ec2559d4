package models

import "time"

type Ingredient struct {
	ID               string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name             string         `gorm:"uniqueIndex;not null" json:"name"`
	Category         *string        `json:"category,omitempty"`
	DefaultUnit      *string        `json:"default_unit,omitempty"`
	Aliases          []string       `gorm:"type:jsonb;serializer:json" json:"aliases,omitempty"`
	NutritionPer100g map[string]any `gorm:"type:jsonb;serializer:json" json:"nutrition_per_100g,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// RecipeIngredient joins a recipe to an ingredient with quantities.
// At most one row per (recipe, ingredient) pair.
type RecipeIngredient struct {
	ID           int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     string   `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID string   `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       *float64 `json:"amount,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	Preparation  *string  `json:"preparation,omitempty"`
	Optional     bool     `gorm:"default:false;not null" json:"optional"`

	// Associations
	Recipe     *Recipe     `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE;"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
