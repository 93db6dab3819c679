package profileservice

import (
	"context"
	"encoding/json"
	"fmt"

	profilerepo "riftrewind/api/repositories/profile"
	"riftrewind/pkg/compare"
	"riftrewind/pkg/database/models"
	"riftrewind/pkg/export"
	"riftrewind/pkg/models/recap"
)

// ProfileService owns the export and compare flows. Building an export never
// touches storage: persisting only happens on the explicit upload operation.
type ProfileService struct {
	repo profilerepo.ProfileRepository
}

// ProfileServiceDeps is the dependency list for the profile service.
type ProfileServiceDeps struct {
	Repository profilerepo.ProfileRepository
}

// NewProfileService creates a profile service.
func NewProfileService(deps *ProfileServiceDeps) *ProfileService {
	return &ProfileService{
		repo: deps.Repository,
	}
}

// BuildProfile projects a year summary into the v1 export schema.
func (ps *ProfileService) BuildProfile(identifier string, summary *recap.YearResponse) *export.PlayerProfile {
	return export.BuildPlayerProfile(identifier, summary)
}

// StoreProfile persists an uploaded v1 export, replacing any previous one
// for the same player.
func (ps *ProfileService) StoreProfile(ctx context.Context, profile *export.PlayerProfile) error {
	if profile == nil {
		return fmt.Errorf("profile can't be nil")
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("couldn't serialize the profile: %w", err)
	}

	return ps.repo.Upsert(ctx, &models.PlayerProfileRecord{
		PlayerID:      profile.PlayerID,
		SchemaVersion: profile.Version,
		Payload:       payload,
	})
}

// GetStoredProfile loads and re-validates a stored export.
func (ps *ProfileService) GetStoredProfile(ctx context.Context, playerID string) (*export.PlayerProfile, error) {
	record, err := ps.repo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	// The stored payload went through ParseProfile on the way in, but the
	// discriminator check is the contract for every re-ingestion path.
	return export.ParseProfile(record.Payload)
}

// CompareProfiles compares two v1 exports and returns the anchored verdict.
func (ps *ProfileService) CompareProfiles(a *export.PlayerProfile, b *export.PlayerProfile) *compare.Result {
	return compare.Profiles(a, b)
}

// CompareStored compares two previously uploaded players by identifier.
func (ps *ProfileService) CompareStored(ctx context.Context, aPlayerID string, bPlayerID string) (*compare.Result, error) {
	a, err := ps.GetStoredProfile(ctx, aPlayerID)
	if err != nil {
		return nil, err
	}

	b, err := ps.GetStoredProfile(ctx, bPlayerID)
	if err != nil {
		return nil, err
	}

	return compare.Profiles(a, b), nil
}
