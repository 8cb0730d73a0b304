package db_models

import (
	"github.com/google/uuid"
)

// FutureTripStatus transitions planificado -> migrado exactly once; a migrated
// planning row is frozen and rejects further edits.
type FutureTripStatus string

const (
	FutureTripPlanned  FutureTripStatus = "planificado"
	FutureTripMigrated FutureTripStatus = "migrado"
)

// FutureTrip mirrors Trip for the planning stage. SessionID ties the row to
// the AI planning session that produced it; RealTripID is written back by the
// migration workflow.
type FutureTrip struct {
	BaseModel
	Name        string           `gorm:"not null" json:"nombre"`
	Destination string           `json:"destino"`
	StartDate   string           `gorm:"index" json:"fecha_inicio"`
	EndDate     string           `json:"fecha_fin"`
	Description string           `gorm:"type:text" json:"descripcion"`
	Status      FutureTripStatus `gorm:"type:varchar(16);default:'planificado';index" json:"estado"`
	SessionID   string           `gorm:"index" json:"session_id"`
	RealTripID  *uuid.UUID       `gorm:"type:uuid" json:"viaje_real_id"`

	Itineraries []FutureItinerary `gorm:"constraint:OnDelete:CASCADE" json:"itinerarios,omitempty"`
}

type FutureItinerary struct {
	BaseModel
	FutureTripID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"viaje_futuro_id"`
	StartDate         string     `gorm:"index" json:"fecha_inicio"`
	EndDate           string     `json:"fecha_fin"`
	DurationDays      int        `json:"duracion_dias"`
	DailyDestinations string     `gorm:"type:text" json:"destinos_por_dia"`
	Description       string     `gorm:"type:text" json:"descripcion"`
	TravelType        TravelType `gorm:"type:varchar(16)" json:"tipo_viaje"`
	RealItineraryID   *uuid.UUID `gorm:"type:uuid" json:"itinerario_real_id"`

	Activities []FutureActivity `gorm:"constraint:OnDelete:CASCADE" json:"actividades,omitempty"`
}

// FutureActivity carries a free-text planned location instead of the GPS
// statistics of its real counterpart.
type FutureActivity struct {
	BaseModel
	FutureItineraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"itinerario_futuro_id"`
	FutureTripID      uuid.UUID `gorm:"type:uuid;not null;index" json:"viaje_futuro_id"`
	Name              string    `json:"nombre"`
	StartTime         string    `gorm:"index" json:"hora_inicio"`
	EndTime           string    `json:"hora_fin"`
	PlannedLocation   string    `gorm:"type:text" json:"ubicacion_prevista"`
	Description       string    `gorm:"type:text" json:"descripcion"`

	AvailableActivityID *uuid.UUID `gorm:"type:uuid" json:"actividad_disponible_id"`
	ActivityTypeID      *uuid.UUID `gorm:"type:uuid" json:"tipo_actividad_id"`
	RealActivityID      *uuid.UUID `gorm:"type:uuid" json:"actividad_real_id"`
}
