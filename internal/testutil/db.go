// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/model"
)

// NewDB returns a migrated in-memory sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.SQLite(":memory:"), config.Test)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, PasswordHash: "not-a-real-hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateRecipe inserts a recipe owned by ownerID.
func CreateRecipe(t *testing.T, db *gorm.DB, ownerID uint, name string) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		RecipeName:   name,
		RecipeImage:  "https://example.com/" + name + ".jpg",
		Ingredients:  "salt\npepper",
		Instructions: "cook it",
		UserID:       ownerID,
	}
	if err := db.Omit("User", "Favorites").Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return recipe
}

// CreateFavorite inserts a favorite row; duplicates are allowed.
func CreateFavorite(t *testing.T, db *gorm.DB, userID, recipeID uint) *model.Favorite {
	t.Helper()
	fav := &model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := db.Create(fav).Error; err != nil {
		t.Fatalf("failed to create favorite: %v", err)
	}
	return fav
}
