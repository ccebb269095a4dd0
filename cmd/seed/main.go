package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/seed"
	"github.com/pageza/recipe-share/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Environment.IsProduction() {
		slog.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.SessionTTL)
	stats, err := seed.Run(context.Background(), db, auth, service.NewRecipeService(db))
	if err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seeding complete", "users", stats.Users, "recipes", stats.Recipes, "favorites", stats.Favorites, "password", seed.Password)
}
