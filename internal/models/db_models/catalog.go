package db_models

import (
	"github.com/google/uuid"
)

// Lookup tables referenced by activities.

type ActivityType struct {
	BaseModel
	Name        string `gorm:"not null;uniqueIndex" json:"nombre"`
	Description string `json:"descripcion"`
}

type AvailableActivity struct {
	BaseModel
	Name           string     `gorm:"not null" json:"nombre"`
	Description    string     `json:"descripcion"`
	ActivityTypeID *uuid.UUID `gorm:"type:uuid;index" json:"tipo_actividad_id"`
}
