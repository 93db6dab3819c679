package main

import (
	"log"

	"riftrewind/api/modules"
	"riftrewind/api/routes"
	"riftrewind/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(cfg)
	if err != nil {
		log.Fatalf("Couldn't start the module: %v", err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.SummaryHandler,
		module.ChampionHandler,
		module.ProfileHandler,
	)

	// Start the server.
	router.Run(":" + cfg.Port)
}
