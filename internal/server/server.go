package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/api"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/web"
)

// Options carries the optional backends of the server.
type Options struct {
	// Redis enables rate limiting when set.
	Redis *redis.Client
	// Images enables image uploads when set.
	Images service.IImageService
	Logger *slog.Logger
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *slog.Logger
}

// New wires services, middleware and routes onto a gin engine.
func New(cfg *config.Config, db *gorm.DB, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	recipes := service.NewRecipeService(db)
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.SessionTTL)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Sessions(auth),
	)

	deps := api.Dependencies{
		DB:           db,
		Recipes:      recipes,
		Favorites:    recipes,
		Auth:         auth,
		Images:       opts.Images,
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.SecureCookie,
	}
	if opts.Redis != nil {
		deps.CreateLimiter = middleware.NewRecipeCreationRateLimiter(opts.Redis, cfg.RecipeCreateLimit, logger)
		deps.ModifyLimiter = middleware.NewRecipeModificationRateLimiter(opts.Redis, cfg.RecipeModifyLimit, logger)
	} else {
		logger.Warn("redis not configured, rate limiting disabled")
	}
	api.RegisterRoutes(router, deps)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
