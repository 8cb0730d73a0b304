package request_models

import (
	"github.com/google/uuid"
)

// FileUpdateRequest is a full-field replace of the mutable file metadata;
// setting ActivityID assigns an orphan upload to an activity.
type FileUpdateRequest struct {
	ActivityID  *uuid.UUID `json:"actividad_id"`
	Type        string     `json:"tipo"`
	CapturedAt  string     `json:"fecha_captura"`
	Geolocation string     `json:"geolocalizacion"`
	Metadata    string     `json:"metadatos"`
}

type AssociatedFileRequest struct {
	Type        string `json:"tipo"`
	Path        string `json:"ruta"`
	Description string `json:"descripcion"`
}

type CatalogEntryRequest struct {
	Name           string     `json:"nombre"`
	Description    string     `json:"descripcion"`
	ActivityTypeID *uuid.UUID `json:"tipo_actividad_id"`
}
