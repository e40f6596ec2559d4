package models

import "time"

// TrendingRecipe materializes the last-computed trending score per recipe.
type TrendingRecipe struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID   string    `gorm:"type:uuid;not null;uniqueIndex" json:"recipe_id"`
	Score      float64   `gorm:"not null;index" json:"score"`
	TrendingAt time.Time `gorm:"not null" json:"trending_at"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

func (TrendingRecipe) TableName() string {
	return "trending_recipes"
}
