package utils

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	cfg    *Config
}

func NewOpenAIClient(cfg *Config) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(cfg.OpenAIAPIKey),
		cfg:    cfg,
	}
}

func (c *OpenAIClient) Chat(ctx context.Context, turns []ChatTurn) (*ChatResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AITimeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    t.Role,
			Content: t.Content,
		})
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.AIModel,
		Messages:    messages,
		MaxTokens:   c.cfg.AIMaxTokens,
		Temperature: c.cfg.AITemperature,
		TopP:        c.cfg.AITopP,
	})
	if err != nil {
		return nil, mapOpenAIError(err, time.Since(start))
	}
	if len(resp.Choices) == 0 {
		return nil, &UpstreamError{
			Status:  http.StatusInternalServerError,
			Message: "La IA no devolvió ninguna respuesta",
			Elapsed: time.Since(start),
		}
	}

	return &ChatResult{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
		Model:            resp.Model,
	}, nil
}

// ValidateKey issues the cheapest possible authenticated call. An empty key
// argument validates the configured key instead.
func (c *OpenAIClient) ValidateKey(ctx context.Context, apiKey string) (string, error) {
	client := c.client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.AITimeout)
	defer cancel()

	start := time.Now()
	if _, err := client.ListModels(ctx); err != nil {
		return "", mapOpenAIError(err, time.Since(start))
	}
	return c.cfg.AIModel, nil
}

func mapOpenAIError(err error, elapsed time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &UpstreamError{
			Status:  http.StatusGatewayTimeout,
			Message: "La consulta a la IA tardó demasiado",
			Elapsed: elapsed,
		}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.HTTPStatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return &UpstreamError{
			Status:  status,
			Message: "Error del servicio de IA: " + apiErr.Message,
			Elapsed: elapsed,
		}
	}

	return &UpstreamError{
		Status:  http.StatusInternalServerError,
		Message: "Error del servicio de IA: " + err.Error(),
		Elapsed: elapsed,
	}
}
