package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
)

// FavoriteHandler serves the session user's favorites.
type FavoriteHandler struct {
	favorites service.IFavoriteService
}

func NewFavoriteHandler(favorites service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites", middleware.RequireAuth())
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:recipe_id", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := h.favorites.AddFavorite(c.Request.Context(), middleware.SessionFrom(c).UserID, req.RecipeID)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		slog.Error("failed to add favorite", "recipe_id", req.RecipeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, fav)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	recipeID, err := parseID(c.Param("recipe_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	deleted, err := h.favorites.RemoveFavorite(c.Request.Context(), middleware.SessionFrom(c).UserID, recipeID)
	if err != nil {
		slog.Error("failed to remove favorite", "recipe_id", recipeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	recipes, err := h.favorites.ListFavoriteRecipes(c.Request.Context(), middleware.SessionFrom(c).UserID)
	if err != nil {
		slog.Error("failed to list favorites", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
