package repositories

import (
	"context"
	"errors"
	"fmt"

	"riftrewind/pkg/database/models"
	"riftrewind/pkg/messages"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository is the public interface for the stored profile exports.
type ProfileRepository interface {
	Upsert(ctx context.Context, record *models.PlayerProfileRecord) error
	GetByPlayerID(ctx context.Context, playerID string) (*models.PlayerProfileRecord, error)
}

// profileRepository repository structure.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert inserts or replaces the stored export for a player.
// Re-uploading overwrites: the newest export is the one that counts.
func (pr *profileRepository) Upsert(ctx context.Context, record *models.PlayerProfileRecord) error {
	if record == nil {
		return errors.New("record can't be nil")
	}

	return pr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"schema_version", "payload", "updated_at"}),
	}).Create(record).Error
}

// GetByPlayerID returns the stored export for a given player identifier.
func (pr *profileRepository) GetByPlayerID(ctx context.Context, playerID string) (*models.PlayerProfileRecord, error) {
	var record models.PlayerProfileRecord

	err := pr.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf(messages.ProfileNotFound, playerID)
		}
		return nil, err
	}

	return &record, nil
}
