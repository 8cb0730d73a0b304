package db_models

import (
	"github.com/google/uuid"
)

type FileType string

const (
	FileTypePhoto FileType = "foto"
	FileTypeVideo FileType = "video"
	FileTypeAudio FileType = "audio"
	FileTypeText  FileType = "texto"
	FileTypeImage FileType = "imagen"
)

// File is an uploaded asset. ActivityID is nullable: uploads may arrive before
// the user assigns them to an activity, and some never are.
type File struct {
	BaseModel
	ActivityID   *uuid.UUID `gorm:"type:uuid;index" json:"actividad_id"`
	Type         FileType   `gorm:"type:varchar(16)" json:"tipo"`
	Path         string     `gorm:"not null" json:"ruta"`
	OriginalName string     `json:"nombre_original"`
	CapturedAt   string     `json:"fecha_captura"`
	Version      int        `gorm:"default:1" json:"version"`
	Geolocation  string     `gorm:"type:text" json:"geolocalizacion"`
	Metadata     string     `gorm:"type:text" json:"metadatos"`

	Associated []AssociatedFile `gorm:"constraint:OnDelete:CASCADE" json:"asociados,omitempty"`
}

// AssociatedFile is a secondary asset hanging off a primary one, typically a
// text commentary or a voice note recorded over a photo.
type AssociatedFile struct {
	BaseModel
	FileID      uuid.UUID `gorm:"type:uuid;not null;index" json:"archivo_id"`
	Type        FileType  `gorm:"type:varchar(16)" json:"tipo"`
	Path        string    `gorm:"not null" json:"ruta"`
	Version     int       `gorm:"default:1" json:"version"`
	Description string    `gorm:"type:text" json:"descripcion"`
}
