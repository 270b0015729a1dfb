package ports

import (
	"context"
	"encoding/json"

	"PostCraft/internal/domain"
)

// ContentExtractor downloads a blog page and reduces it to clean text.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (domain.BlogContent, error)
}

// PostGenerator turns extracted content into one post per platform.
type PostGenerator interface {
	GeneratePosts(ctx context.Context, blog domain.BlogContent, platforms []string) []domain.SocialPost
}

// GenerateOptions are the sampling settings sent with each prompt.
type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
}

// TextProvider sends a prompt to a generative model (Gemini, Groq, etc.).
type TextProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// MessageSender handles the message/send RPC method.
type MessageSender interface {
	HandleMessageSend(ctx context.Context, id json.RawMessage, params map[string]json.RawMessage) domain.RPCResponse
}
