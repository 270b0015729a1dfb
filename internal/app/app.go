package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"PostCraft/internal/api"
	"PostCraft/internal/config"
	"PostCraft/internal/handlers"
	"PostCraft/internal/infrastructure/llm"
	"PostCraft/internal/infrastructure/parser"
	"PostCraft/internal/logging"
	"PostCraft/internal/ports"
	"PostCraft/internal/prompt"
	"PostCraft/internal/usecase"
)

const (
	shutdownTimeout = 30 * time.Second
	// writeSlack covers decoding, formatting and writing the response.
	writeSlack = 15 * time.Second
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	extractor *parser.BlogExtractor
	processor *usecase.Processor
	server    *http.Server
}

// New builds the agent: extractor, providers, generator, processor and HTTP server.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	providers := buildProviders(ctx, cfg, baseLogger.With("component", "llm"))
	if len(providers) == 0 {
		baseLogger.Warn("no AI provider could be initialized; posts will be placeholders")
	}

	extractor := parser.NewBlogExtractor(cfg.Extractor, baseLogger.With("component", "extractor"))

	generator := usecase.NewGenerator(usecase.GeneratorDeps{
		Providers: providers,
		Prompts:   prompt.NewRegistry(),
		Options: ports.GenerateOptions{
			Temperature: cfg.Generation.Temperature,
			MaxTokens:   cfg.Generation.MaxTokens,
		},
		Timeout: cfg.Generation.Timeout,
		Logger:  baseLogger.With("component", "generator"),
	})

	processor := usecase.NewProcessor(usecase.ProcessorDeps{
		Extractor: extractor,
		Generator: generator,
		Targets:   cfg.Platforms.Targets,
		Logger:    baseLogger.With("component", "processor"),
	})

	h := handlers.NewHandler(handlers.Deps{
		Sender:          processor,
		Card:            handlers.NewAgentCard(cfg.Server.AgentURL),
		GeminiAvailable: cfg.GeminiAvailable(),
		GroqAvailable:   cfg.GroqAvailable(),
		Logger:          baseLogger.With("component", "rpc"),
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(baseLogger.With("component", "http"), h),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      writeTimeout(cfg),
		IdleTimeout:       60 * time.Second,
	}

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		extractor: extractor,
		processor: processor,
		server:    server,
	}, nil
}

// writeTimeout leaves room for the full fetch and generation budget, so a slow
// request still ends in a task response instead of a dropped connection.
// Either budget being unbounded leaves the write unbounded too.
func writeTimeout(cfg config.Config) time.Duration {
	if cfg.Extractor.Timeout <= 0 || cfg.Generation.Timeout <= 0 {
		return 0
	}
	return cfg.Extractor.Timeout + cfg.Generation.Timeout + writeSlack
}

// buildProviders returns the configured providers in fallback order: Gemini, then Groq.
// A provider that fails to initialize is logged and skipped.
func buildProviders(ctx context.Context, cfg config.Config, logger *slog.Logger) []ports.TextProvider {
	var providers []ports.TextProvider

	if cfg.GeminiAvailable() {
		gemini, err := llm.NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			logger.Warn("gemini provider unavailable", "error", err)
		} else {
			providers = append(providers, gemini)
			logger.Info("gemini provider initialized", "model", cfg.Gemini.Model)
		}
	}

	if cfg.GroqAvailable() {
		groq, err := llm.NewGroqProvider(cfg.Groq)
		if err != nil {
			logger.Warn("groq provider unavailable", "error", err)
		} else {
			providers = append(providers, groq)
			logger.Info("groq provider initialized", "model", cfg.Groq.Model)
		}
	}

	return providers
}

// Handler exposes the HTTP routes, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

// Processor exposes the request processor.
func (a *Application) Processor() *usecase.Processor {
	return a.processor
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("starting PostCraft agent",
			"addr", a.server.Addr,
			"agent_url", a.cfg.Server.AgentURL,
			"platforms", a.cfg.Platforms.Targets,
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// Close releases the extractor's connection pool.
func (a *Application) Close() error {
	return a.extractor.Close()
}
