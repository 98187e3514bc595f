// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/http"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/middleware"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// RateLimiter is the limiter installed on the API group, exposed so the
	// owner can stop its cleanup goroutine on shutdown.
	RateLimiter *middleware.ShardedRateLimiter
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	optimizer service.Optimizer,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var (
		loggingService service.LoggingService
		catalogService service.CatalogService
		presetsService service.PresetsService
		quotesService  service.QuotesService
	)

	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.ProductsRepo != nil {
			catalogService = service.NewCatalogService(dbComponents.ProductsRepo)
		}
		if dbComponents.PresetsRepo != nil {
			presetsService = service.NewPresetsService(dbComponents.PresetsRepo)
		}
		if dbComponents.QuotesRepo != nil {
			quotesService = service.NewQuotesService(dbComponents.QuotesRepo, optimizer)
		}
	}

	// Without storage the catalog rejects references and presets resolve
	// from the built-in defaults.
	if catalogService == nil {
		catalogService = service.NewCatalogService(nil)
	}
	if presetsService == nil {
		presetsService = service.NewPresetsService(nil)
	}

	handler := http.NewHandler(optimizer, catalogService, presetsService)
	healthHandler := http.NewHealthHandler()

	// Register database probes for health monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return db.HealthCheck(ctx)
			}))
		}
		if dbComponents.PresetsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_presets", dbComponents.PresetsCircuitBreaker)
		}
		if dbComponents.ProductsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_products", dbComponents.ProductsCircuitBreaker)
		}
		if dbComponents.QuotesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_quotes", dbComponents.QuotesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	var rateLimiter *middleware.ShardedRateLimiter
	if cfg.Server.RateLimit > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		QuotesService:     quotesService,
		RateLimiter:       rateLimiter,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		RateLimiter:   rateLimiter,
	}
}
