// Package main is the entry point for the pallet optimizer service.
//
// @title           Pallet Optimizer API
// @version         1.0.0
// @description     Packing optimization engine for bulk-shipment quoting.
//
//	Computes how many product units fit per pallet and how many loaded
//	pallets fit into a shipping container, and turns accepted plans into
//	persisted quotes.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/Zchasse63/pallet-puzzle-optimizer-sub001
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Optimization
// @tag.description Packing plan computation
//
// @tag.name        Presets
// @tag.description Container and pallet preset management
//
// @tag.name        Products
// @tag.description Catalog product management
//
// @tag.name        Quotes
// @tag.description Quote creation and retrieval
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/Zchasse63/pallet-puzzle-optimizer-sub001/docs" // swagger docs

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/config"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadWithFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)

	err = server.Run()

	// Release caches, the rate limiter, the async log writer, and the
	// database connection only after the listener has drained.
	application.Close()

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
