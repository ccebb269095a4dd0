package service

import (
	"context"
	"io"

	"github.com/pageza/recipe-share/backend/internal/model"
	"github.com/pageza/recipe-share/backend/internal/types"
)

// IRecipeService defines the interface for recipe operations.
// Update and delete only touch rows owned by ownerID.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*model.Recipe, error)
	IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error)
	UpdateRecipe(ctx context.Context, id, ownerID uint, changes model.RecipeChanges) (int64, error)
	DeleteRecipe(ctx context.Context, id, ownerID uint) (int64, error)
	SearchRecipeIDs(ctx context.Context, query string) ([]uint, error)
}

// IFavoriteService defines the favorite operations of the session user.
type IFavoriteService interface {
	AddFavorite(ctx context.Context, userID, recipeID uint) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uint) (int64, error)
	ListFavoriteRecipes(ctx context.Context, userID uint) ([]model.Recipe, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GenerateToken(user *model.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IImageService stores uploaded recipe images.
type IImageService interface {
	UploadRecipeImage(ctx context.Context, body io.Reader) (string, error)
}
