package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore_ZeroEngagement(t *testing.T) {
	now := time.Now()
	score := Score(0, 0, 0, 1000, now.Add(-24*time.Hour), now)
	assert.Equal(t, 0.0, score)
}

func TestScore_ExactEngagementRatio(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-3 * 24 * time.Hour)

	// (2*10 + 3*5 + 5*3) / 50 = 1.0 engagement, 3 days old -> 0.9 weight
	score := Score(10, 5, 3, 50, createdAt, now)
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestScore_HalfwayThroughWindow(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-time.Duration(16.5 * 24 * float64(time.Hour)))

	// 1.0 engagement at 16.5 days -> weight 1 - 16.5/30 = 0.45
	score := Score(10, 5, 3, 50, createdAt, now)
	assert.InDelta(t, 0.45, score, 1e-9)
}

func TestScore_WindowBoundary(t *testing.T) {
	now := time.Now()

	justInside := now.Add(-time.Duration(29.999 * 24 * float64(time.Hour)))
	assert.Greater(t, Score(10, 5, 3, 50, justInside, now), 0.0)

	atBoundary := now.Add(-30 * 24 * time.Hour)
	assert.Equal(t, 0.0, Score(10, 5, 3, 50, atBoundary, now))

	past := now.Add(-45 * 24 * time.Hour)
	assert.Equal(t, 0.0, Score(100, 100, 100, 1, past, now))
}

func TestScore_NeverNegative(t *testing.T) {
	now := time.Now()
	ancient := now.Add(-365 * 24 * time.Hour)
	assert.GreaterOrEqual(t, Score(50, 50, 50, 10, ancient, now), 0.0)
}

func TestScore_FutureCreatedAtClamped(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)

	// Age weight caps at 1: a recipe dated in the future scores like a
	// brand new one, not higher.
	fresh := Score(10, 5, 3, 50, now, now)
	futureScore := Score(10, 5, 3, 50, future, now)
	assert.InDelta(t, fresh, futureScore, 1e-9)
}

func TestScore_InteractionWeights(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-24 * time.Hour)

	likeOnly := Score(1, 0, 0, 10, createdAt, now)
	saveOnly := Score(0, 1, 0, 10, createdAt, now)
	madeOnly := Score(0, 0, 1, 10, createdAt, now)

	// A cook outranks a bookmark outranks a like.
	assert.Greater(t, saveOnly, likeOnly)
	assert.Greater(t, madeOnly, saveOnly)
}

func TestScore_ViewsDiluteEngagement(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-24 * time.Hour)

	niche := Score(10, 5, 3, 100, createdAt, now)
	viral := Score(10, 5, 3, 10000, createdAt, now)

	// Same interactions with far more views means a lower hit rate.
	assert.Greater(t, niche, viral)
}

func TestScore_ZeroViewsFloor(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-24 * time.Hour)

	// Division floor of 1 view: zero views behaves like one view.
	assert.Equal(t,
		Score(2, 1, 1, 0, createdAt, now),
		Score(2, 1, 1, 1, createdAt, now))
}

func TestScore_FreshRecipeFullWeight(t *testing.T) {
	now := time.Now()

	// (2*1 + 3*1 + 5*1) / 10 = 1.0 engagement at age zero
	score := Score(1, 1, 1, 10, now, now)
	assert.InDelta(t, 1.0, score, 1e-9)
}
