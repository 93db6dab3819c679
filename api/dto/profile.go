package dto

import (
	"encoding/json"

	"riftrewind/pkg/models/recap"
)

// ExportRequest is the body for building and storing a profile export.
type ExportRequest struct {
	PlayerID string              `json:"playerId" binding:"required"`
	Summary  *recap.YearResponse `json:"summary"`
}

// CompareRequest is the body for comparing two profiles. Each side is either
// an inline v1 export or the identifier of a previously uploaded one.
type CompareRequest struct {
	AProfile  json.RawMessage `json:"aProfile,omitempty"`
	BProfile  json.RawMessage `json:"bProfile,omitempty"`
	APlayerID string          `json:"aPlayerId,omitempty"`
	BPlayerID string          `json:"bPlayerId,omitempty"`
}
