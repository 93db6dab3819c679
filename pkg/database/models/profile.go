package models

import "time"

// PlayerProfileRecord is a stored v1 profile export. Uploads are keyed by the
// player identifier so a later compare can reference players by id instead of
// re-posting the whole file.
type PlayerProfileRecord struct {
	ID            uint      `gorm:"primaryKey"`
	PlayerID      string    `gorm:"uniqueIndex;not null"`
	SchemaVersion string    `gorm:"not null"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}
