package models

import "time"

// RecipeReview is a rated review of a recipe. One row per (recipe, user);
// re-reviewing updates the existing row.
type RecipeReview struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_recipe_user" json:"recipe_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_recipe_user" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (RecipeReview) TableName() string {
	return "recipe_reviews"
}
