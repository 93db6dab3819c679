package handlers

import (
	"net/http"

	"riftrewind/api/filters"
	summaryservice "riftrewind/api/services/summary"

	"github.com/gin-gonic/gin"
)

// ChampionHandler is the handler for the champion asset endpoints.
type ChampionHandler struct {
	SummaryService *summaryservice.SummaryService
}

// ChampionHandlerDependencies is the dependency list for the champion handler.
type ChampionHandlerDependencies struct {
	SummaryService *summaryservice.SummaryService
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		SummaryService: deps.SummaryService,
	}
}

// GetChampionIcon handles requests for a champion's resolved icon URL.
func (h *ChampionHandler) GetChampionIcon(c *gin.Context) {
	var up filters.ChampionURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h.SummaryService.GetChampionIcon(up.Name)})
}
