package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"PostCraft/internal/config"
	"PostCraft/internal/domain"
	"PostCraft/internal/ports"
)

// GeminiProvider implements ports.TextProvider on the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

var _ ports.TextProvider = (*GeminiProvider)(nil)

// NewGeminiProvider builds the client once; it is reused for every request.
func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key missing")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: cfg.Model}, nil
}

// Name identifies the provider in logs and metrics.
func (g *GeminiProvider) Name() string {
	return "gemini"
}

// Generate sends prompt as a single user turn.
func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: int32(opts.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", domain.ErrGeneration, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no response from gemini", domain.ErrGeneration)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response from gemini", domain.ErrGeneration)
	}
	return text, nil
}
