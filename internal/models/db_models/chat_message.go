package db_models

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

// ChatMessage is one turn of an AI planning conversation. Sessions are not a
// first-class entity; the session id is an opaque string chosen by the client.
type ChatMessage struct {
	BaseModel
	SessionID       string   `gorm:"not null;index" json:"session_id"`
	Role            ChatRole `gorm:"type:varchar(12);not null" json:"rol"`
	Content         string   `gorm:"type:text" json:"contenido"`
	TokenCount      int      `json:"tokens"`
	Model           string   `json:"modelo"`
	LatencyMS       int64    `json:"latencia_ms"`
	PlanPayload     *string  `gorm:"type:text" json:"plan,omitempty"`
	InteractionType string   `json:"tipo_interaccion"`
}
