package utils

import (
	"context"
	"fmt"
)

// ChatTurn is one message of the conversation forwarded to the AI backend.
// Role follows the stored values: user, assistant, system.
type ChatTurn struct {
	Role    string
	Content string
}

type ChatResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// AIClientInterface hides which backend answers. Implementations apply the
// configured model parameters and timeout and translate failures into
// *UpstreamError with the mirrored status.
type AIClientInterface interface {
	Chat(ctx context.Context, turns []ChatTurn) (*ChatResult, error)
	ValidateKey(ctx context.Context, apiKey string) (string, error)
}

func NewAIClient(cfg *Config) (AIClientInterface, error) {
	switch cfg.AIProvider {
	case "openai", "":
		return NewOpenAIClient(cfg), nil
	case "gemini":
		return NewGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}
