package response_models

// StructuredPlan is the machine-readable block the assistant is instructed to
// append to its reply inside a fenced ```json section. It maps one-to-one onto
// the future-trip schema so a detected plan can be turned into records directly.
type StructuredPlan struct {
	Trip        PlanTrip        `json:"viaje"`
	Itineraries []PlanItinerary `json:"itinerarios"`
	Complete    bool            `json:"plan_completo"`
}

type PlanTrip struct {
	Name        string `json:"nombre"`
	Destination string `json:"destino"`
	StartDate   string `json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
	Description string `json:"descripcion"`
}

type PlanItinerary struct {
	StartDate         string         `json:"fecha_inicio"`
	EndDate           string         `json:"fecha_fin"`
	DurationDays      int            `json:"duracion_dias"`
	DailyDestinations string         `json:"destinos_por_dia"`
	TravelType        string         `json:"tipo_viaje"`
	Activities        []PlanActivity `json:"actividades"`
}

type PlanActivity struct {
	Name            string `json:"nombre"`
	StartTime       string `json:"hora_inicio"`
	EndTime         string `json:"hora_fin"`
	PlannedLocation string `json:"ubicacion_prevista"`
	Description     string `json:"descripcion"`
}
