package db_models

import (
	"github.com/google/uuid"
)

// Activity is a concrete entry inside an itinerary. The GPS statistics and the
// generated track/map/manifest references only exist on the real variant;
// planned activities live in FutureActivity.
type Activity struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;not null;index" json:"itinerario_id"`
	TripID      uuid.UUID `gorm:"type:uuid;not null;index" json:"viaje_id"`
	Name        string    `json:"nombre"`
	StartTime   string    `gorm:"index" json:"hora_inicio"`
	EndTime     string    `json:"hora_fin"`
	Description string    `gorm:"type:text" json:"descripcion"`

	AvailableActivityID *uuid.UUID `gorm:"type:uuid" json:"actividad_disponible_id"`
	ActivityTypeID      *uuid.UUID `gorm:"type:uuid" json:"tipo_actividad_id"`

	// Statistics derived from the recorded GPS track.
	DistanceKM       float64 `json:"distancia_km"`
	DurationMin      float64 `json:"duracion_min"`
	AvgSpeedKMH      float64 `json:"velocidad_media"`
	Calories         int     `json:"calorias"`
	StepCount        int     `json:"pasos"`
	PointCount       int     `json:"puntos_gps"`
	TransportProfile string  `json:"perfil_transporte"`

	TrackPath    string `json:"archivo_track"`
	MapPath      string `json:"archivo_mapa"`
	ManifestPath string `json:"archivo_manifest"`

	Files []File `gorm:"constraint:OnDelete:CASCADE" json:"archivos,omitempty"`
}
