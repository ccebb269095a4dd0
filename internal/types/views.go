package types

import "github.com/pageza/recipe-share/backend/internal/model"

// AuthorView is the part of the owning user shown on a recipe page.
type AuthorView struct {
	ID   uint
	Name string
}

// RecipeView is everything the recipe and modify templates render.
// Favorited and IsAuthor stay false for anonymous visitors.
type RecipeView struct {
	ID            uint
	RecipeName    string
	RecipeImage   string
	Ingredients   string
	Instructions  string
	Author        AuthorView
	FavoriteCount int
	Favorited     bool
	IsAuthor      bool
	LoggedIn      bool
}

// NewRecipeView copies the recipe fields; the caller sets the flags.
func NewRecipeView(r *model.Recipe) RecipeView {
	v := RecipeView{
		ID:            r.ID,
		RecipeName:    r.RecipeName,
		RecipeImage:   r.RecipeImage,
		Ingredients:   r.Ingredients,
		Instructions:  r.Instructions,
		Author:        AuthorView{ID: r.UserID},
		FavoriteCount: len(r.Favorites),
	}
	if r.User != nil {
		v.Author.Name = r.User.Name
	}
	return v
}
