package request_models

import (
	"github.com/google/uuid"
)

type FutureTripRequest struct {
	Name        string `json:"nombre"`
	Destination string `json:"destino"`
	StartDate   string `json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
	Description string `json:"descripcion"`
	SessionID   string `json:"session_id"`
}

type FutureItineraryRequest struct {
	StartDate         string `json:"fecha_inicio"`
	EndDate           string `json:"fecha_fin"`
	DurationDays      int    `json:"duracion_dias"`
	DailyDestinations string `json:"destinos_por_dia"`
	Description       string `json:"descripcion"`
	TravelType        string `json:"tipo_viaje"`
}

type FutureActivityRequest struct {
	Name            string `json:"nombre"`
	StartTime       string `json:"hora_inicio"`
	EndTime         string `json:"hora_fin"`
	PlannedLocation string `json:"ubicacion_prevista"`
	Description     string `json:"descripcion"`

	AvailableActivityID *uuid.UUID `json:"actividad_disponible_id"`
	ActivityTypeID      *uuid.UUID `json:"tipo_actividad_id"`
}
