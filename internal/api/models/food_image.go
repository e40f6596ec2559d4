package models

import "time"

// FoodImage is an uploaded image, optionally tied to a user and/or recipe.
// Deleting the user deletes the image; deleting the recipe only detaches it.
type FoodImage struct {
	ID        string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    *string        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	RecipeID  *string        `gorm:"type:uuid;index" json:"recipe_id,omitempty"`
	Data      []byte         `gorm:"not null" json:"-"`
	MimeType  string         `gorm:"not null" json:"mime_type"`
	Analysis  map[string]any `gorm:"type:jsonb;serializer:json" json:"analysis,omitempty"`
	CreatedAt time.Time      `json:"created_at"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:SET NULL;"`
}

func (FoodImage) TableName() string {
	return "food_images"
}
