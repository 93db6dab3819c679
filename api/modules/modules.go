package modules

import (
	"fmt"

	"riftrewind/api/cache"
	"riftrewind/api/clients"
	"riftrewind/api/handlers"
	profilerepo "riftrewind/api/repositories/profile"
	profileservice "riftrewind/api/services/profile"
	summaryservice "riftrewind/api/services/summary"
	"riftrewind/pkg/config"
	"riftrewind/pkg/database"
	"riftrewind/pkg/ddragon"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	Logger          *logger.NewLogger
	SummaryHandler  *handlers.SummaryHandler
	ChampionHandler *handlers.ChampionHandler
	ProfileHandler  *handlers.ProfileHandler
}

// NewModule creates a module with all the necessary handlers initialized.
func NewModule(cfg *config.Config) (*Module, error) {
	router := gin.Default()

	log, err := logger.CreateLogger()
	if err != nil {
		return nil, fmt.Errorf("couldn't create the logger: %w", err)
	}

	// Redis is a warm cache only, the gateway runs without it.
	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Errorf("running without the Redis warm cache: %v", err)
		redisClient = nil
	}

	versions := ddragon.NewVersionHolder(&ddragon.VersionHolderDeps{
		Redis:  redisClient,
		Logger: log,
	})
	versions.Resolve()

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to the database: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}

	// Initialize the services.
	summaryService := summaryservice.NewSummaryService(&summaryservice.SummaryServiceDeps{
		Client:   clients.NewRecapClient(cfg.Recap.BaseURL),
		Cache:    cache.NewSimpleCache(),
		Versions: versions,
		Logger:   log,
	})

	profileService := profileservice.NewProfileService(&profileservice.ProfileServiceDeps{
		Repository: profilerepo.NewProfileRepository(db),
	})

	// Initialize the handlers.
	summaryHandler := handlers.NewSummaryHandler(&handlers.SummaryHandlerDependencies{
		SummaryService: summaryService,
	})
	championHandler := handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{
		SummaryService: summaryService,
	})
	profileHandler := handlers.NewProfileHandler(&handlers.ProfileHandlerDependencies{
		ProfileService: profileService,
	})

	// Return the module with all handlers.
	return &Module{
		Router:          router,
		Logger:          log,
		SummaryHandler:  summaryHandler,
		ChampionHandler: championHandler,
		ProfileHandler:  profileHandler,
	}, nil
}
