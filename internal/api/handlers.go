package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/service"
)

// Dependencies are the services the handlers are built from.
type Dependencies struct {
	DB        *gorm.DB
	Recipes   service.IRecipeService
	Favorites service.IFavoriteService
	Auth      service.IAuthService
	// Images is nil when no bucket is configured.
	Images service.IImageService

	CreateLimiter *middleware.RateLimiter
	ModifyLimiter *middleware.RateLimiter

	SessionTTL   time.Duration
	SecureCookie bool
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", healthCheck(deps.DB))

	api := router.Group("/api")
	NewRecipeHandler(deps.Recipes, deps.CreateLimiter, deps.ModifyLimiter).RegisterRoutes(api)
	NewFavoriteHandler(deps.Favorites).RegisterRoutes(api)
	NewUserHandler(deps.Auth, deps.SessionTTL, deps.SecureCookie).RegisterRoutes(api)
	if deps.Images != nil {
		NewImageHandler(deps.Images).RegisterRoutes(api)
	}
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := database.HealthCheck(c.Request.Context(), db); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
