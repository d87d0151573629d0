package models

import "time"

// Recipe is a recipe record. RatingAvg and RatingCount are derived from the
// per-user rating map held by the repository; they are never set from client
// input. TimeMinutes of zero means no time estimate.
type Recipe struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Ingredients []string
	Steps       []string
	Tags        []string
	Cuisine     string
	TimeMinutes int
	RatingAvg   float64
	RatingCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeUpdate is a partial update. Nil fields leave the existing value
// untouched.
type RecipeUpdate struct {
	Title       *string
	Description *string
	Ingredients *[]string
	Steps       *[]string
	Tags        *[]string
	Cuisine     *string
	TimeMinutes *int
}
