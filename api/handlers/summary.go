package handlers

import (
	"net/http"

	"riftrewind/api/filters"
	summaryservice "riftrewind/api/services/summary"

	"github.com/gin-gonic/gin"
)

// SummaryHandler is the handler for the recap endpoints.
type SummaryHandler struct {
	SummaryService *summaryservice.SummaryService
}

// SummaryHandlerDependencies is the dependency list for the summary handler.
type SummaryHandlerDependencies struct {
	SummaryService *summaryservice.SummaryService
}

// NewSummaryHandler creates a new instance of the summary handler.
func NewSummaryHandler(deps *SummaryHandlerDependencies) *SummaryHandler {
	return &SummaryHandler{
		SummaryService: deps.SummaryService,
	}
}

// GetYearSummary handles requests for a player's normalized year recap.
func (h *SummaryHandler) GetYearSummary(c *gin.Context) {
	var up filters.SummaryURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaryFilter := filters.NewSummaryFilter(&up)

	view, err := h.SummaryService.GetYearSummary(c, summaryFilter)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": view})
}
