package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// likeEscaper escapes LIKE metacharacters using '!' as the escape character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// RecipeService handles recipe and favorite persistence
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe inserts a new recipe. The caller sets UserID from the session.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Omit("User", "Favorites").Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipe loads a recipe with its owner and favorites.
// It returns ErrRecipeNotFound when no row has the id.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Favorites").
		First(&recipe, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	return &recipe, nil
}

// IsFavorited reports whether at least one favorite row links the pair.
func (s *RecipeService) IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up favorites: %w", err)
	}
	return count > 0, nil
}

// UpdateRecipe writes the given changes in a single statement matching
// both id and owner, and returns the number of rows affected.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, ownerID uint, changes model.RecipeChanges) (int64, error) {
	cols := changes.Columns()
	if len(cols) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(cols)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update recipe %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteRecipe removes the recipe if ownerID owns it, together with its
// favorites, and returns the number of recipes removed.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, ownerID uint) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("recipe_id = ?", id).Delete(&model.Favorite{}).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}
	return deleted, nil
}

// SearchRecipeIDs returns the ids of recipes whose name contains query,
// ignoring case, in primary-key order. An empty query matches everything.
// Both sides are folded by the store's LOWER so identical names always match.
func (s *RecipeService) SearchRecipeIDs(ctx context.Context, query string) ([]uint, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("LOWER(recipe_name) LIKE LOWER(?) ESCAPE '!'", pattern).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

// AddFavorite records that userID favorited recipeID.
func (s *RecipeService) AddFavorite(ctx context.Context, userID, recipeID uint) (*model.Favorite, error) {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", recipeID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("failed to look up recipe %d: %w", recipeID, err)
	}
	if exists == 0 {
		return nil, ErrRecipeNotFound
	}

	fav := model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return nil, fmt.Errorf("failed to favorite recipe %d: %w", recipeID, err)
	}
	return &fav, nil
}

// RemoveFavorite deletes every favorite row of the pair.
func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, recipeID uint) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to unfavorite recipe %d: %w", recipeID, result.Error)
	}
	return result.RowsAffected, nil
}

// ListFavoriteRecipes returns the recipes userID favorited, each once.
func (s *RecipeService) ListFavoriteRecipes(ctx context.Context, userID uint) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	favorited := s.db.Model(&model.Favorite{}).Select("recipe_id").Where("user_id = ?", userID)
	err := s.db.WithContext(ctx).
		Where("id IN (?)", favorited).
		Order("id").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return recipes, nil
}
