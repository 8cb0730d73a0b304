package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	cfg    *Config
}

func NewGeminiClient(cfg *Config) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, cfg: cfg}, nil
}

func (c *GeminiClient) Chat(ctx context.Context, turns []ChatTurn) (*ChatResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AITimeout)
	defer cancel()

	model := c.client.GenerativeModel(c.cfg.AIModel)
	model.SetTemperature(c.cfg.AITemperature)
	model.SetTopP(c.cfg.AITopP)
	model.SetMaxOutputTokens(int32(c.cfg.AIMaxTokens))

	// Gemini takes the system turn separately and names the assistant "model".
	var history []*genai.Content
	last := ""
	for i, t := range turns {
		switch t.Role {
		case "system":
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(t.Content)}}
		case "assistant":
			history = append(history, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(t.Content)},
			})
		default:
			if i == len(turns)-1 {
				last = t.Content
				continue
			}
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(t.Content)},
			})
		}
	}
	if last == "" {
		return nil, &UpstreamError{
			Status:  http.StatusInternalServerError,
			Message: "La conversación no termina en un mensaje de usuario",
		}
	}

	cs := model.StartChat()
	cs.History = history

	start := time.Now()
	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return nil, mapGeminiError(err, time.Since(start))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &UpstreamError{
			Status:  http.StatusInternalServerError,
			Message: "La IA no devolvió ninguna respuesta",
			Elapsed: time.Since(start),
		}
	}

	result := &ChatResult{
		Content: fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]),
		Model:   c.cfg.AIModel,
	}
	if resp.UsageMetadata != nil {
		result.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return result, nil
}

func (c *GeminiClient) ValidateKey(ctx context.Context, apiKey string) (string, error) {
	client := c.client
	if apiKey != "" {
		fresh, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return "", &UpstreamError{
				Status:  http.StatusInternalServerError,
				Message: "Error del servicio de IA: " + err.Error(),
			}
		}
		defer fresh.Close()
		client = fresh
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.AITimeout)
	defer cancel()

	model := client.GenerativeModel(c.cfg.AIModel)
	model.SetMaxOutputTokens(1)

	start := time.Now()
	if _, err := model.GenerateContent(ctx, genai.Text("ping")); err != nil {
		return "", mapGeminiError(err, time.Since(start))
	}
	return c.cfg.AIModel, nil
}

func mapGeminiError(err error, elapsed time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &UpstreamError{
			Status:  http.StatusGatewayTimeout,
			Message: "La consulta a la IA tardó demasiado",
			Elapsed: elapsed,
		}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return &UpstreamError{
			Status:  apiErr.Code,
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
