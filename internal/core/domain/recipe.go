package domain

import (
	"errors"
	"time"
)

// Difficulty is the self-declared cooking difficulty of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// Recipe is the core content entity. Author is a point-in-time copy of the
// creating user's username: it does not follow later renames, so recipes
// stay listed under the name their author had when publishing.
//
// Ingredients and Instructions are newline-delimited text blocks, and the
// time/servings fields are free-text strings, exactly as authors type them.
type Recipe struct {
	ID              string     `json:"id" bson:"id"`
	Name            string     `json:"name" bson:"name"`
	Description     string     `json:"description" bson:"description"`
	Ingredients     string     `json:"ingredients" bson:"ingredients"`
	Instructions    string     `json:"instructions" bson:"instructions"`
	Image           string     `json:"image,omitempty" bson:"image,omitempty"`
	Author          string     `json:"author" bson:"author"`
	Preparation     string     `json:"preparation,omitempty" bson:"preparation,omitempty"`
	CookingTime     string     `json:"cookingTime,omitempty" bson:"cookingTime,omitempty"`
	Servings        string     `json:"servings,omitempty" bson:"servings,omitempty"`
	Difficulty      Difficulty `json:"difficulty" bson:"difficulty"`
	YoutubeTutorial string     `json:"youtubeTutorial,omitempty" bson:"youtubeTutorial,omitempty"`
	Hidden          bool       `json:"hidden" bson:"hidden"`
	Views           int64      `json:"views,omitempty" bson:"views,omitempty"`
	DateCreated     time.Time  `json:"dateCreated" bson:"dateCreated"`
}

// Favorite records that a user starred a recipe. The (UserID, RecipeID)
// pair is unique; duplicate adds are ignored at the gateway.
type Favorite struct {
	UserID   string `json:"userId" bson:"userId"`
	RecipeID string `json:"recipeId" bson:"recipeId"`
}
