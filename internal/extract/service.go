// Package extract calls an OpenAI-compatible chat model to turn free-text
// user input into a structured activity record.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"tomatolog/internal/clock"
	"tomatolog/models"
)

const (
	// DefaultBaseURL targets DeepSeek's OpenAI-compatible API.
	DefaultBaseURL = "https://api.deepseek.com/v1"
	// DefaultModel is the extraction model.
	DefaultModel = "deepseek-chat"

	defaultTimeout = 60 * time.Second
)

// Config holds the extraction client settings.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Turn is one prior exchange in a chat session, replayed so follow-up
// messages resolve against earlier context.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Service extracts activity records via a chat completion endpoint.
type Service struct {
	client *openai.Client
	model  string

	// banner supplies the current-time line for the system prompt,
	// overridable in tests.
	banner func(context.Context) string
}

// NewService builds the extraction client. The API key is required; base
// URL, model, and timeout fall back to the DeepSeek defaults.
func NewService(cfg Config) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("extraction: missing API key (set llm.apiKey or TOMATOLOG_LLM_APIKEY)")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	slog.Info("initializing extraction client", "base_url", cfg.BaseURL, "model", cfg.Model)
	return &Service{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		banner: clock.BannerNow,
	}, nil
}

// Extract sends userText (preceded by the session history, if any) to the
// model and parses its strict-JSON reply into a validated candidate record.
func (s *Service) Extract(ctx context.Context, userText string, history []Turn) (models.Candidate, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt(s.banner(ctx)),
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return models.Candidate{}, fmt.Errorf("extraction request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Candidate{}, fmt.Errorf("extraction request: model returned no choices")
	}

	content := resp.Choices[0].Message.Content
	slog.Debug("extraction reply", "model", s.model, "content", content)
	return ParseCandidate(content)
}
