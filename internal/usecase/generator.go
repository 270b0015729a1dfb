package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"PostCraft/internal/domain"
	"PostCraft/internal/metrics"
	"PostCraft/internal/ports"
	"PostCraft/internal/prompt"
)

// GeneratorDeps wires providers and prompt builders into the generator.
type GeneratorDeps struct {
	// Providers are tried in order; the first success wins.
	Providers []ports.TextProvider
	Prompts   *prompt.Registry
	Options   ports.GenerateOptions
	// Timeout bounds one GeneratePosts call; platforms still pending when it
	// expires get placeholders. Zero means no deadline.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Generator produces one post per platform, substituting a placeholder when
// generation for a platform fails.
type Generator struct {
	providers []ports.TextProvider
	prompts   *prompt.Registry
	options   ports.GenerateOptions
	timeout   time.Duration
	logger    *slog.Logger
}

var _ ports.PostGenerator = (*Generator)(nil)

// NewGenerator constructs the generation engine.
func NewGenerator(deps GeneratorDeps) *Generator {
	prompts := deps.Prompts
	if prompts == nil {
		prompts = prompt.NewRegistry()
	}
	return &Generator{
		providers: deps.Providers,
		prompts:   prompts,
		options:   deps.Options,
		timeout:   deps.Timeout,
		logger:    deps.Logger,
	}
}

// PlaceholderContent is the post body used when a platform could not be generated.
func PlaceholderContent(platform string) string {
	return fmt.Sprintf("Failed to generate content for %s", platform)
}

// GeneratePosts returns exactly one post per platform, in order.
func (g *Generator) GeneratePosts(ctx context.Context, blog domain.BlogContent, platforms []string) []domain.SocialPost {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	posts := make([]domain.SocialPost, 0, len(platforms))

	for _, platform := range platforms {
		content, err := g.generate(ctx, g.prompts.Build(platform, blog))
		if err != nil {
			g.warn("post generation failed", "platform", platform, "error", err)
			metrics.PostsGenerated.WithLabelValues(platform, "placeholder").Inc()
			posts = append(posts, domain.SocialPost{Platform: platform, Content: PlaceholderContent(platform)})
			continue
		}

		metrics.PostsGenerated.WithLabelValues(platform, "generated").Inc()
		posts = append(posts, domain.SocialPost{Platform: platform, Content: content})
	}

	return posts
}

func (g *Generator) generate(ctx context.Context, text string) (string, error) {
	if len(g.providers) == 0 {
		return "", domain.ErrNoProviderAvailable
	}

	var errs []error
	for i, provider := range g.providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", domain.ErrGeneration, err))
			break
		}

		start := time.Now()
		out, err := provider.Generate(ctx, text, g.options)
		metrics.ProviderLatency.WithLabelValues(provider.Name()).Observe(time.Since(start).Seconds())

		if err == nil {
			metrics.ProviderCalls.WithLabelValues(provider.Name(), "success").Inc()
			return out, nil
		}

		metrics.ProviderCalls.WithLabelValues(provider.Name(), "error").Inc()
		errs = append(errs, fmt.Errorf("%s: %w", provider.Name(), err))
		if i < len(g.providers)-1 {
			g.warn("provider failed, trying next", "provider", provider.Name(), "error", err)
		}
	}

	return "", errors.Join(errs...)
}

func (g *Generator) warn(msg string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Warn(msg, args...)
	}
}
