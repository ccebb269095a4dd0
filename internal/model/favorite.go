package model

import "time"

// Favorite marks that a user favorited a recipe. Pairs are not unique.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}
