package request_models

import (
	"github.com/google/uuid"
)

type TripRequest struct {
	Name        string `json:"nombre"`
	Destination string `json:"destino"`
	StartDate   string `json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
	ImagePath   string `json:"imagen"`
	AudioPath   string `json:"audio"`
	Description string `json:"descripcion"`
}

type ItineraryRequest struct {
	StartDate         string `json:"fecha_inicio"`
	EndDate           string `json:"fecha_fin"`
	DurationDays      int    `json:"duracion_dias"`
	DailyDestinations string `json:"destinos_por_dia"`
	Description       string `json:"descripcion"`
	TravelType        string `json:"tipo_viaje"`
}

type ActivityRequest struct {
	Name        string `json:"nombre"`
	StartTime   string `json:"hora_inicio"`
	EndTime     string `json:"hora_fin"`
	Description string `json:"descripcion"`

	AvailableActivityID *uuid.UUID `json:"actividad_disponible_id"`
	ActivityTypeID      *uuid.UUID `json:"tipo_actividad_id"`

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
}
