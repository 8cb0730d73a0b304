package response_models

import (
	"github.com/google/uuid"
)

type MigrationResult struct {
	FutureTripID        uuid.UUID `json:"viaje_futuro_id"`
	RealTripID          uuid.UUID `json:"viaje_real_id"`
	ItinerariesMigrated int       `json:"itinerarios_migrados"`
	ActivitiesMigrated  int       `json:"actividades_migradas"`
	Errors              []string  `json:"errores,omitempty"`
}
