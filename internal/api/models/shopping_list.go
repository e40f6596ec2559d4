package models

import "time"

// ShoppingList holds free-form line items; item shape is not contracted,
// so they are stored as an opaque JSON array.
type ShoppingList struct {
	ID        string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string           `gorm:"not null" json:"name"`
	Items     []map[string]any `gorm:"type:jsonb;serializer:json" json:"items"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (ShoppingList) TableName() string {
	return "shopping_lists"
}
