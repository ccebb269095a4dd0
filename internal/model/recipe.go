package model

import (
	"time"
)

// Recipe is a user-owned content record. UserID is written on create only.
type Recipe struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	RecipeName   string     `gorm:"size:255;not null" json:"recipe_name"`
	RecipeImage  string     `gorm:"type:text" json:"recipe_image"`
	Ingredients  string     `gorm:"type:text;not null" json:"ingredients"`
	Instructions string     `gorm:"type:text;not null" json:"instructions"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         *User      `json:"user,omitempty"`
	Favorites    []Favorite `json:"favorites,omitempty"`
}

// RecipeChanges holds the mutable recipe fields; nil means "leave as is".
type RecipeChanges struct {
	RecipeName   *string
	RecipeImage  *string
	Ingredients  *string
	Instructions *string
}

// Columns returns the column/value pairs to write. user_id is never part of it.
func (c RecipeChanges) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if c.RecipeName != nil {
		cols["recipe_name"] = *c.RecipeName
	}
	if c.RecipeImage != nil {
		cols["recipe_image"] = *c.RecipeImage
	}
	if c.Ingredients != nil {
		cols["ingredients"] = *c.Ingredients
	}
	if c.Instructions != nil {
		cols["instructions"] = *c.Instructions
	}
	return cols
}
