package llm

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"PostCraft/internal/config"
	"PostCraft/internal/domain"
	"PostCraft/internal/ports"
)

// GroqProvider implements ports.TextProvider against Groq's OpenAI-compatible endpoint.
type GroqProvider struct {
	client openai.Client
	model  string
}

var _ ports.TextProvider = (*GroqProvider)(nil)

// NewGroqProvider builds a client from configuration. The SDK's own retries are
// disabled; every provider call is a single attempt.
func NewGroqProvider(cfg config.GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq api key missing")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("groq model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &GroqProvider{client: openai.NewClient(opts...), model: cfg.Model}, nil
}

// Name identifies the provider in logs and metrics.
func (g *GroqProvider) Name() string {
	return "groq"
}

// Generate sends prompt as a single user message to the chat completions API.
func (g *GroqProvider) Generate(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(roundTemperature(opts.Temperature)),
		MaxTokens:   openai.Int(int64(opts.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", domain.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: groq returned no choices", domain.ErrGeneration)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty response from groq", domain.ErrGeneration)
	}
	return text, nil
}

// roundTemperature avoids sending float32 noise such as 0.699999988.
func roundTemperature(t float32) float64 {
	return math.Round(float64(t)*100) / 100
}
