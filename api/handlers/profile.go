package handlers

import (
	"net/http"

	"riftrewind/api/dto"
	profileservice "riftrewind/api/services/profile"
	"riftrewind/pkg/export"

	"github.com/gin-gonic/gin"
)

// ProfileHandler is the handler for the profile export endpoints.
type ProfileHandler struct {
	ProfileService *profileservice.ProfileService
}

// ProfileHandlerDependencies is the dependency list for the profile handler.
type ProfileHandlerDependencies struct {
	ProfileService *profileservice.ProfileService
}

// NewProfileHandler creates a new instance of the profile handler.
func NewProfileHandler(deps *ProfileHandlerDependencies) *ProfileHandler {
	return &ProfileHandler{
		ProfileService: deps.ProfileService,
	}
}

// PostProfile builds a v1 export from a posted year summary and stores it.
// The export itself can't fail, only the persistence can.
func (h *ProfileHandler) PostProfile(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := h.ProfileService.BuildProfile(req.PlayerID, req.Summary)
	if err := h.ProfileService.StoreProfile(c, profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// PostCompare compares two profiles, inline exports or stored identifiers.
func (h *ProfileHandler) PostCompare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.resolveSide(c, req.AProfile, req.APlayerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.resolveSide(c, req.BProfile, req.BPlayerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": h.ProfileService.CompareProfiles(a, b)})
}

// Resolve one compare side: inline export wins over a stored identifier.
func (h *ProfileHandler) resolveSide(c *gin.Context, inline []byte, playerID string) (*export.PlayerProfile, error) {
	if len(inline) > 0 {
		return export.ParseProfile(inline)
	}
	return h.ProfileService.GetStoredProfile(c, playerID)
}
