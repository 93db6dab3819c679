package routes

import (
	"riftrewind/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.SummaryHandler:
			r.registerSummaryHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.ProfileHandler:
			r.registerProfileHandler(handler)
		}
	}
}

// Register the summary handler.
func (r *Router) registerSummaryHandler(handler *handlers.SummaryHandler) {
	summary := r.api.Group("/summary")
	{
		summary.GET("/:region/:gameName/:gameTag", handler.GetYearSummary)
	}
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("/:name/icon", handler.GetChampionIcon)
	}
}

// Register the profile handler.
func (r *Router) registerProfileHandler(handler *handlers.ProfileHandler) {
	profiles := r.api.Group("/profiles")
	{
		profiles.POST("", handler.PostProfile)
		profiles.POST("/compare", handler.PostCompare)
	}
}

// Run starts the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
