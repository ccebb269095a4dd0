package types

// CreateRecipeRequest represents the request body for creating a recipe.
// It has no user_id field; ownership comes from the session.
type CreateRecipeRequest struct {
	RecipeName   string `json:"recipe_name" binding:"required,max=255"`
	RecipeImage  string `json:"recipe_image"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

// UpdateRecipeRequest carries any subset of the mutable recipe fields.
// Fields required on create may be omitted but not blanked.
type UpdateRecipeRequest struct {
	RecipeName   *string `json:"recipe_name" binding:"omitempty,min=1,max=255"`
	RecipeImage  *string `json:"recipe_image"`
	Ingredients  *string `json:"ingredients" binding:"omitempty,min=1"`
	Instructions *string `json:"instructions" binding:"omitempty,min=1"`
}

// SearchRequest is the body of a recipe search.
type SearchRequest struct {
	SearchInput string `json:"searchInput"`
}

// SearchResponse lists matching recipe ids in primary-key order.
type SearchResponse struct {
	RecipeIDs []uint `json:"recipeIds"`
}

type FavoriteRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
