package request_models

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"mensaje"`
}

type ValidateAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}
