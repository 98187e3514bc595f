// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/http"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/middleware"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// App bundles the wired router with the background resources that need an
// explicit release once the HTTP server has drained.
type App struct {
	Router *gin.Engine

	resultCache *service.ShardedCache
	rateLimiter *middleware.ShardedRateLimiter
	db          *repository.MongoDB
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the optimization engine
	serviceComponents := InitializeServices(cfg.Cache, cfg.Engine)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Engine.SeedPresets)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Optimizer, dbComponents, cfg)

	// Request logs flow through the buffered async writer when storage is up
	if dbComponents != nil && dbComponents.LoggingService != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	app := &App{
		Router:      http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		resultCache: serviceComponents.ResultCache,
		rateLimiter: routerComponents.RateLimiter,
	}
	if dbComponents != nil {
		app.db = dbComponents.DB
	}
	return app
}

// Close stops background goroutines and closes the database connection.
// Call it after the HTTP server has stopped accepting requests.
func (a *App) Close() {
	if a.resultCache != nil {
		a.resultCache.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	middleware.StopAsyncLogger()
	if a.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.db.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
