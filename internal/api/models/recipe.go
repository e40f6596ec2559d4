package models

import "time"

// Difficulty levels accepted for a recipe.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID          string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID      string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description,omitempty"`

	// Ordered instruction steps and image URLs, stored as JSON arrays
	Instructions []string `gorm:"type:jsonb;serializer:json" json:"instructions"`
	ImageURLs    []string `gorm:"type:jsonb;serializer:json" json:"image_urls,omitempty"`

	PrepTimeMinutes *int    `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int    `json:"cook_time_minutes,omitempty"`
	Servings        *int    `json:"servings,omitempty"`
	Difficulty      *string `gorm:"check:difficulty IN ('easy','medium','hard')" json:"difficulty,omitempty"`
	Cuisine         *string `json:"cuisine,omitempty"`
	Category        *string `json:"category,omitempty"`

	// Provenance-tagged tag sets. AITags come back from the ML backend,
	// UserTags are author supplied. Tags() merges them for search.
	AITags   []string `gorm:"type:jsonb;serializer:json" json:"ai_tags,omitempty"`
	UserTags []string `gorm:"type:jsonb;serializer:json" json:"user_tags,omitempty"`

	// Opaque payloads from the ML backend; shape is not contracted here
	Pairings  []string       `gorm:"type:jsonb;serializer:json" json:"pairings,omitempty"`
	Nutrition map[string]any `gorm:"type:jsonb;serializer:json" json:"nutrition,omitempty"`

	// Denormalized engagement counters, kept in step with the join tables
	LikesCount   int64   `gorm:"default:0;not null" json:"likes_count"`
	SavesCount   int64   `gorm:"default:0;not null" json:"saves_count"`
	MadeCount    int64   `gorm:"default:0;not null" json:"made_count"`
	ViewsCount   int64   `gorm:"default:0;not null" json:"views_count"`
	ReviewsCount int64   `gorm:"default:0;not null" json:"reviews_count"`
	AvgRating    float64 `gorm:"default:0;not null" json:"avg_rating"`

	IsPublished bool       `gorm:"default:false;not null;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User        *User              `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
}

// Tags returns the combined searchable tag set (AI + user, deduplicated).
func (r *Recipe) Tags() []string {
	seen := make(map[string]struct{}, len(r.AITags)+len(r.UserTags))
	tags := make([]string, 0, len(r.AITags)+len(r.UserTags))
	for _, t := range append(append([]string{}, r.AITags...), r.UserTags...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

func (Recipe) TableName() string {
	return "recipes"
}
