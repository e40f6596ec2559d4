package models

import "time"

// Meal slots for a plan item.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type MealPlan struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Items []MealPlanItem `json:"items,omitempty" gorm:"foreignKey:MealPlanID"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

type MealPlanItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MealPlanID string    `gorm:"type:uuid;not null;index" json:"meal_plan_id"`
	RecipeID   string    `gorm:"type:uuid;not null" json:"recipe_id"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	MealType   string    `gorm:"not null;check:meal_type IN ('breakfast','lunch','dinner','snack')" json:"meal_type"`
	Servings   float64   `gorm:"default:1;not null" json:"servings"`

	MealPlan *MealPlan `json:"-" gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE;"`
	Recipe   *Recipe   `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

func (MealPlanItem) TableName() string {
	return "meal_plan_items"
}
