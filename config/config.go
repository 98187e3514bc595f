// Package config provides configuration management for the optimizer service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
//
// Values are resolved from four sources, lowest to highest precedence:
// built-in defaults, environment variables, an optional YAML file and
// command-line flags.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Engine   EngineConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CacheConfig holds result cache configuration.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// EngineConfig holds optimization engine configuration.
type EngineConfig struct {
	// SuccessMessage overrides the message attached to successful
	// optimizations. Empty keeps the engine default.
	SuccessMessage string
	// SeedPresets controls whether the standard container and pallet
	// presets are stored on startup when the database holds none.
	SeedPresets bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	MaxPoolSize  uint64
	MinPoolSize  uint64
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables. Unset or invalid
// values fall back to defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 16),
		},
		Engine: EngineConfig{
			SuccessMessage: getEnv("OPTIMIZE_SUCCESS_MESSAGE", ""),
			SeedPresets:    getEnvBool("SEED_PRESETS", true),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "pallet_optimizer"),
			MaxPoolSize:                    getEnvUint64("MONGODB_MAX_POOL_SIZE", 50),
			MinPoolSize:                    getEnvUint64("MONGODB_MIN_POOL_SIZE", 10),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// LoadWithFlags resolves configuration from environment variables, then an
// optional YAML file named by --config, then command-line flags.
func LoadWithFlags(args []string) (Config, error) {
	app := kingpin.New("pallet-optimizer", "Pallet and container packing optimization service")
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	port := app.Flag("port", "HTTP port exposed by the service").String()
	rateLimit := app.Flag("rate-limit", "Requests allowed per rate window (set 0 to disable)").Default("-1").Int()
	rateWindow := app.Flag("rate-window", "Rate limiting window, e.g. 1m").Duration()
	requestTimeout := app.Flag("request-timeout", "Per-request handler timeout, e.g. 30s").Duration()
	cacheSize := app.Flag("cache-size", "Maximum entries held by the result cache").Default("-1").Int()
	cacheTTL := app.Flag("cache-ttl", "Result cache entry lifetime, e.g. 5m").Duration()
	mongoEnabled := app.Flag("mongodb", "Enable MongoDB persistence (true/false)").String()
	mongoURI := app.Flag("mongodb-uri", "MongoDB connection string").String()
	mongoDatabase := app.Flag("mongodb-database", "MongoDB database name").String()

	if _, err := app.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg := Load()

	if *configFile != "" {
		if err := applyFile(&cfg, *configFile); err != nil {
			return Config{}, err
		}
	}

	if *port != "" {
		cfg.Server.Port = *port
	}
	if *rateLimit >= 0 {
		cfg.Server.RateLimit = *rateLimit
	}
	if *rateWindow > 0 {
		cfg.Server.RateWindow = *rateWindow
	}
	if *requestTimeout > 0 {
		cfg.Server.RequestTimeout = *requestTimeout
	}
	if *cacheSize >= 0 {
		cfg.Cache.Size = *cacheSize
	}
	if *cacheTTL > 0 {
		cfg.Cache.TTL = *cacheTTL
	}
	if *mongoEnabled != "" {
		if b, err := strconv.ParseBool(*mongoEnabled); err == nil {
			cfg.Database.Enabled = b
		}
	}
	if *mongoURI != "" {
		cfg.Database.URI = *mongoURI
	}
	if *mongoDatabase != "" {
		cfg.Database.DatabaseName = *mongoDatabase
	}

	return cfg, nil
}

// fileConfig mirrors Config for YAML decoding. Durations are strings so a
// malformed value can be skipped instead of failing the whole file.
type fileConfig struct {
	Server struct {
		Port           string   `yaml:"port"`
		RateLimit      *int     `yaml:"rate_limit"`
		RateWindow     string   `yaml:"rate_window"`
		RequestTimeout string   `yaml:"request_timeout"`
		CORSOrigins    []string `yaml:"cors_origins"`
		SwaggerUser    string   `yaml:"swagger_user"`
		SwaggerPass    string   `yaml:"swagger_pass"`
	} `yaml:"server"`
	Cache struct {
		Size   *int   `yaml:"size"`
		TTL    string `yaml:"ttl"`
		Shards *int   `yaml:"shards"`
	} `yaml:"cache"`
	Engine struct {
		SuccessMessage string `yaml:"success_message"`
		SeedPresets    *bool  `yaml:"seed_presets"`
	} `yaml:"engine"`
	Database struct {
		Enabled          *bool   `yaml:"enabled"`
		URI              string  `yaml:"uri"`
		DatabaseName     string  `yaml:"database"`
		MaxPoolSize      *uint64 `yaml:"max_pool_size"`
		MinPoolSize      *uint64 `yaml:"min_pool_size"`
		LogsTTL          string  `yaml:"logs_ttl"`
		FailureThreshold *int    `yaml:"circuit_breaker_failure_threshold"`
		SuccessThreshold *int    `yaml:"circuit_breaker_success_threshold"`
		BreakerTimeout   string  `yaml:"circuit_breaker_timeout"`
	} `yaml:"database"`
}

// applyFile overlays values from a YAML file onto cfg. Only fields present
// in the file are applied.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Server.Port != "" {
		cfg.Server.Port = fc.Server.Port
	}
	if fc.Server.RateLimit != nil && *fc.Server.RateLimit >= 0 {
		cfg.Server.RateLimit = *fc.Server.RateLimit
	}
	if d, ok := parseDuration(fc.Server.RateWindow); ok {
		cfg.Server.RateWindow = d
	}
	if d, ok := parseDuration(fc.Server.RequestTimeout); ok {
		cfg.Server.RequestTimeout = d
	}
	if len(fc.Server.CORSOrigins) > 0 {
		cfg.Server.CORSOrigins = fc.Server.CORSOrigins
	}
	if fc.Server.SwaggerUser != "" {
		cfg.Server.SwaggerUser = fc.Server.SwaggerUser
	}
	if fc.Server.SwaggerPass != "" {
		cfg.Server.SwaggerPass = fc.Server.SwaggerPass
	}

	if fc.Cache.Size != nil && *fc.Cache.Size >= 0 {
		cfg.Cache.Size = *fc.Cache.Size
	}
	if d, ok := parseDuration(fc.Cache.TTL); ok {
		cfg.Cache.TTL = d
	}
	if fc.Cache.Shards != nil && *fc.Cache.Shards > 0 {
		cfg.Cache.Shards = *fc.Cache.Shards
	}

	if fc.Engine.SuccessMessage != "" {
		cfg.Engine.SuccessMessage = fc.Engine.SuccessMessage
	}
	if fc.Engine.SeedPresets != nil {
		cfg.Engine.SeedPresets = *fc.Engine.SeedPresets
	}

	if fc.Database.Enabled != nil {
		cfg.Database.Enabled = *fc.Database.Enabled
	}
	if fc.Database.URI != "" {
		cfg.Database.URI = fc.Database.URI
	}
	if fc.Database.DatabaseName != "" {
		cfg.Database.DatabaseName = fc.Database.DatabaseName
	}
	if fc.Database.MaxPoolSize != nil && *fc.Database.MaxPoolSize > 0 {
		cfg.Database.MaxPoolSize = *fc.Database.MaxPoolSize
	}
	if fc.Database.MinPoolSize != nil {
		cfg.Database.MinPoolSize = *fc.Database.MinPoolSize
	}
	if d, ok := parseDuration(fc.Database.LogsTTL); ok {
		cfg.Database.LogsTTL = d
	}
	if fc.Database.FailureThreshold != nil && *fc.Database.FailureThreshold > 0 {
		cfg.Database.CircuitBreakerFailureThreshold = *fc.Database.FailureThreshold
	}
	if fc.Database.SuccessThreshold != nil && *fc.Database.SuccessThreshold > 0 {
		cfg.Database.CircuitBreakerSuccessThreshold = *fc.Database.SuccessThreshold
	}
	if d, ok := parseDuration(fc.Database.BreakerTimeout); ok {
		cfg.Database.CircuitBreakerTimeout = d
	}

	return nil
}

func parseDuration(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
