package models

import "time"

// RecipeLike records a user liking a recipe. One row per (recipe, user).
type RecipeLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_recipe_user" json:"recipe_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_recipe_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

// SavedRecipe records a user saving a recipe for later. One row per (recipe, user).
type SavedRecipe struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_save_recipe_user" json:"recipe_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_save_recipe_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

// MadeRecipe records one cooking of a recipe. A user can cook the same
// recipe repeatedly, so the (recipe, user) pair is deliberately not unique.
type MadeRecipe struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID  string    `gorm:"type:uuid;not null;index" json:"recipe_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating    *int      `gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)" json:"rating,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	PhotoURLs []string  `gorm:"type:jsonb;serializer:json" json:"photo_urls,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (MadeRecipe) TableName() string {
	return "made_recipes"
}
