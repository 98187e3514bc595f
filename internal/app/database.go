// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/circuitbreaker"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	PresetsRepo            repository.PresetsRepositoryInterface
	ProductsRepo           repository.ProductsRepositoryInterface
	QuotesRepo             repository.QuotesRepositoryInterface
	LoggingService         service.LoggingService
	PresetsCircuitBreaker  *circuitbreaker.CircuitBreaker
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
	QuotesCircuitBreaker   *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, seedPresets bool) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	mongoCfg := repository.DefaultMongoConfig()
	if cfg.MaxPoolSize > 0 {
		mongoCfg.MaxPoolSize = cfg.MaxPoolSize
	}
	if cfg.MinPoolSize > 0 {
		mongoCfg.MinPoolSize = cfg.MinPoolSize
	}

	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers, one per collection
	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             name,
		})
	}
	presetsCB := newBreaker("mongodb-presets")
	productsCB := newBreaker("mongodb-products")
	quotesCB := newBreaker("mongodb-quotes")
	logsCB := newBreaker("mongodb-logs")

	// Initialize repositories
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	presetsRepo := repository.NewPresetsRepositoryWithCircuitBreaker(repository.NewPresetsRepository(db), presetsCB)
	productsRepo := repository.NewProductsRepositoryWithCircuitBreaker(repository.NewProductsRepository(db), productsCB)
	quotesRepo := repository.NewQuotesRepositoryWithCircuitBreaker(repository.NewQuotesRepository(db), quotesCB)

	// Store the standard presets if the database has none
	if seedPresets {
		if err := seedDefaultPresets(presetsRepo); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default presets")
		}
	}

	return &DatabaseComponents{
		DB:                     db,
		PresetsRepo:            presetsRepo,
		ProductsRepo:           productsRepo,
		QuotesRepo:             quotesRepo,
		LoggingService:         loggingService,
		PresetsCircuitBreaker:  presetsCB,
		ProductsCircuitBreaker: productsCB,
		QuotesCircuitBreaker:   quotesCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// seedDefaultPresets stores the standard container and pallet presets for any
// kind that has no active configuration yet.
func seedDefaultPresets(repo repository.PresetsRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx, repository.PresetKindContainers)
	if err != nil {
		return err
	}
	if active == nil {
		if _, err := repo.ReplaceContainers(ctx, service.DefaultContainerPresets()); err != nil {
			return err
		}
		log.Info().Msg("Seeded default container presets")
	}

	active, err = repo.GetActive(ctx, repository.PresetKindPallets)
	if err != nil {
		return err
	}
	if active == nil {
		if _, err := repo.ReplacePallets(ctx, service.DefaultPalletPresets()); err != nil {
			return err
		}
		log.Info().Msg("Seeded default pallet presets")
	}

	return nil
}
