package db_models

import (
	"github.com/google/uuid"
)

// Trip is an operational (lived or ongoing) trip. JSON field names follow the
// desktop client's contract, which is Spanish throughout.
type Trip struct {
	BaseModel
	Name        string `gorm:"not null" json:"nombre"`
	Destination string `json:"destino"`
	StartDate   string `gorm:"index" json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
	ImagePath   string `json:"imagen"`
	AudioPath   string `json:"audio"`
	Description string `gorm:"type:text" json:"descripcion"`

	Itineraries []Itinerary `gorm:"constraint:OnDelete:CASCADE" json:"itinerarios,omitempty"`
}

type TravelType string

const (
	TravelTypeCoast    TravelType = "costa"
	TravelTypeNature   TravelType = "naturaleza"
	TravelTypeRural    TravelType = "rural"
	TravelTypeUrban    TravelType = "urbana"
	TravelTypeCultural TravelType = "cultural"
	TravelTypeWork     TravelType = "trabajo"
)

type Itinerary struct {
	BaseModel
	TripID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"viaje_id"`
	StartDate         string     `gorm:"index" json:"fecha_inicio"`
	EndDate           string     `json:"fecha_fin"`
	DurationDays      int        `json:"duracion_dias"`
	DailyDestinations string     `gorm:"type:text" json:"destinos_por_dia"`
	Description       string     `gorm:"type:text" json:"descripcion"`
	TravelType        TravelType `gorm:"type:varchar(16)" json:"tipo_viaje"`

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE" json:"actividades,omitempty"`
}
