package trending

import "time"

// trendingWindowDays is how long a recipe stays eligible for trending.
// Past this age the weight floors at zero regardless of engagement.
const trendingWindowDays = 30.0

// Engagement weights reflect increasing commitment: a like is cheap,
// cooking the recipe is costly.
const (
	likeWeight = 2
	saveWeight = 3
	madeWeight = 5
)

// Score computes a recipe's trending score from its engagement counters
// and age. Pure function of its inputs.
//
// The engagement rate is (2*likes + 3*saves + 5*made) / max(views, 1),
// linearly decayed to zero over 30 days. The age weight is clamped to
// [0, 1], so a created_at in the future (clock skew) scores as brand new
// instead of being inflated.
func Score(likes, saves, made, views int64, createdAt, now time.Time) float64 {
	ageInDays := now.Sub(createdAt).Hours() / 24

	ageWeight := 1 - ageInDays/trendingWindowDays
	if ageWeight < 0 {
		ageWeight = 0
	}
	if ageWeight > 1 {
		ageWeight = 1
	}

	viewFloor := views
	if viewFloor < 1 {
		viewFloor = 1
	}

	engagement := float64(likeWeight*likes+saveWeight*saves+madeWeight*made) / float64(viewFloor)

	return engagement * ageWeight
}
