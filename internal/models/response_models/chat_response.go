package response_models

type TokenUsage struct {
	Prompt     int `json:"prompt"`
	Completion int `json:"completion"`
	Total      int `json:"total"`
}

type BudgetSummary struct {
	Consumed  int `json:"consumidos"`
	Remaining int `json:"restantes"`
	Limit     int `json:"limite"`
}

type ChatResponse struct {
	Reply        string          `json:"respuesta"`
	Usage        TokenUsage      `json:"tokens"`
	LatencyMS    int64           `json:"latencia_ms"`
	Model        string          `json:"modelo"`
	PlanDetected bool            `json:"plan_detectado"`
	Plan         *StructuredPlan `json:"plan,omitempty"`
	Citations    []string        `json:"citas"`
	Budget       BudgetSummary   `json:"presupuesto"`
}

type SessionSummary struct {
	SessionID    string `json:"session_id"`
	Messages     int    `json:"mensajes"`
	TokensUsed   int    `json:"tokens_consumidos"`
	LastActivity int64  `json:"ultima_actividad"`
}

type APIKeyValidation struct {
	Valid   bool   `json:"valida"`
	Model   string `json:"modelo"`
	Message string `json:"mensaje"`
}
