package db_models

import (
	"github.com/google/uuid"
)

// MigrationLog is the audit trail of one planned->real promotion. Per-item
// failures are concatenated into ErrorDetail instead of aborting the run.
type MigrationLog struct {
	BaseModel
	FutureTripID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"viaje_futuro_id"`
	RealTripID          *uuid.UUID `gorm:"type:uuid" json:"viaje_real_id"`
	ItinerariesMigrated int        `json:"itinerarios_migrados"`
	ActivitiesMigrated  int        `json:"actividades_migradas"`
	ErrorDetail         string     `gorm:"type:text" json:"errores"`
}
