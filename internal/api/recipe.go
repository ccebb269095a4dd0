package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/model"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
	"github.com/pageza/recipe-share/backend/internal/web"
)

// RecipeHandler serves /api/recipes.
type RecipeHandler struct {
	recipes       service.IRecipeService
	createLimiter *middleware.RateLimiter
	modifyLimiter *middleware.RateLimiter
}

// NewRecipeHandler creates a recipe handler. Nil limiters disable rate limiting.
func NewRecipeHandler(recipes service.IRecipeService, createLimiter, modifyLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:       recipes,
		createLimiter: createLimiter,
		modifyLimiter: modifyLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("", middleware.RequireAuth(), h.createLimiter.PerUser(), h.CreateRecipe)
		recipes.POST("/search", h.SearchRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/modify/:id", middleware.RequireAuth(), h.GetRecipeForModify)
		recipes.PUT("/:id", middleware.RequireAuth(), h.modifyLimiter.PerRecipe(), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.RequireAuth(), h.modifyLimiter.PerRecipe(), h.DeleteRecipe)
	}
}

// CreateRecipe stores a recipe owned by the session user.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := &model.Recipe{
		RecipeName:   req.RecipeName,
		RecipeImage:  req.RecipeImage,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		UserID:       middleware.SessionFrom(c).UserID,
	}
	created, err := h.recipes.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetRecipe renders the recipe page. Favorited and IsAuthor are only set
// for logged-in visitors.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	session := middleware.SessionFrom(c)
	view := types.NewRecipeView(recipe)
	if session.LoggedIn {
		favorited, err := h.recipes.IsFavorited(c.Request.Context(), session.UserID, recipe.ID)
		if err != nil {
			slog.Error("failed to look up favorite", "recipe_id", recipe.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
			return
		}
		view.LoggedIn = true
		view.Favorited = favorited
		view.IsAuthor = recipe.UserID == session.UserID
	}

	c.HTML(http.StatusOK, web.RecipePage, view)
}

// GetRecipeForModify renders the edit form for the owner and the plain
// recipe page for everyone else.
func (h *RecipeHandler) GetRecipeForModify(c *gin.Context) {
	recipe, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	view := types.NewRecipeView(recipe)
	view.LoggedIn = true
	if recipe.UserID == middleware.SessionFrom(c).UserID {
		view.IsAuthor = true
		c.HTML(http.StatusOK, web.ModifyPage, view)
		return
	}

	c.HTML(http.StatusOK, web.RecipePage, view)
}

// UpdateRecipe applies the fields present in the body to a recipe the
// session user owns. A recipe that is absent or owned by someone else
// reports zero updated rows.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.recipes.UpdateRecipe(c.Request.Context(), id, middleware.SessionFrom(c).UserID, model.RecipeChanges{
		RecipeName:   req.RecipeName,
		RecipeImage:  req.RecipeImage,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// SearchRecipes returns the ids of recipes whose name contains searchInput.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var req types.SearchRequest
	// An empty body searches for the empty string.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.recipes.SearchRecipeIDs(c.Request.Context(), req.SearchInput)
	if err != nil {
		slog.Error("recipe search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
		return
	}

	c.JSON(http.StatusOK, types.SearchResponse{RecipeIDs: ids})
}

// DeleteRecipe removes a recipe the session user owns.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No recipe found with this id!"})
		return
	}

	deleted, err := h.recipes.DeleteRecipe(c.Request.Context(), id, middleware.SessionFrom(c).UserID)
	if err != nil {
		slog.Error("failed to delete recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No recipe found with this id!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted", "deleted": deleted})
}

// loadRecipe fetches the :id recipe and writes the error response itself
// when it cannot.
func (h *RecipeHandler) loadRecipe(c *gin.Context) (*model.Recipe, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return nil, false
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return nil, false
	}
	if err != nil {
		slog.Error("failed to fetch recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return nil, false
	}
	return recipe, true
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
