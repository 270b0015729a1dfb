package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"PostCraft/internal/domain"
	"PostCraft/internal/metrics"
	"PostCraft/internal/ports"
)

var platformEmoji = map[string]string{
	domain.PlatformTwitter:   "🐦",
	domain.PlatformLinkedIn:  "💼",
	domain.PlatformFacebook:  "👥",
	domain.PlatformInstagram: "📸",
}

const defaultEmoji = "📱"

// ProcessorDeps wires the driven adapters into the request processor.
type ProcessorDeps struct {
	Extractor ports.ContentExtractor
	Generator ports.PostGenerator
	// Targets is the resolved platform list; posts are generated for exactly these.
	Targets []string
	Logger  *slog.Logger
	Now     func() time.Time
}

// Processor runs one message/send request through interpret, extract, generate and format.
type Processor struct {
	interpreter *Interpreter
	extractor   ports.ContentExtractor
	generator   ports.PostGenerator
	targets     []string
	logger      *slog.Logger
	now         func() time.Time
}

var _ ports.MessageSender = (*Processor)(nil)

// NewProcessor constructs the orchestration component.
func NewProcessor(deps ProcessorDeps) *Processor {
	targets := deps.Targets
	if len(targets) == 0 {
		targets = domain.DefaultTargets()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Processor{
		interpreter: NewInterpreter(targets),
		extractor:   deps.Extractor,
		generator:   deps.Generator,
		targets:     targets,
		logger:      deps.Logger,
		now:         now,
	}
}

// Targets returns the platforms every request generates posts for.
func (p *Processor) Targets() []string {
	return append([]string(nil), p.targets...)
}

// HandleMessageSend always answers with a task result; pipeline failures become failed tasks.
func (p *Processor) HandleMessageSend(ctx context.Context, id json.RawMessage, params map[string]json.RawMessage) domain.RPCResponse {
	taskID := resolveTaskID(params)
	p.info("message/send received", "task_id", taskID)

	msg, digest, err := p.run(ctx, params)
	if err != nil {
		p.logError("task failed", "task_id", taskID, "error", err)
		metrics.TasksTotal.WithLabelValues(string(domain.TaskFailed)).Inc()
		return domain.NewResultResponse(id, p.failedTask(taskID, err))
	}

	metrics.TasksTotal.WithLabelValues(string(domain.TaskCompleted)).Inc()
	p.info("task completed", "task_id", taskID)

	return domain.NewResultResponse(id, domain.Task{
		ID:        taskID,
		ContextID: uuid.NewString(),
		Status:    domain.NewTaskStatus(domain.TaskCompleted, p.now()),
		Artifacts: []domain.Artifact{domain.NewTextArtifact(domain.ArtifactSocialPosts, digest)},
		History:   []domain.Message{msg, domain.NewAgentMessage(digest)},
		Kind:      "task",
		Metadata:  map[string]any{},
	})
}

// Process extracts the blog at url and generates posts for the configured targets.
func (p *Processor) Process(ctx context.Context, url string) ([]domain.SocialPost, error) {
	return p.process(ctx, url, p.targets)
}

func (p *Processor) run(ctx context.Context, params map[string]json.RawMessage) (domain.Message, string, error) {
	raw, ok := params["message"]
	if !ok || len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}

	var msg domain.Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return domain.Message{}, "", fmt.Errorf("decode message: %w", err)
	}

	url, platforms, err := p.interpreter.ExtractURLAndPlatforms(msg)
	if err != nil {
		return domain.Message{}, "", err
	}
	p.info("blog url resolved", "url", url, "platforms", platforms)

	posts, err := p.process(ctx, url, platforms)
	if err != nil {
		return domain.Message{}, "", err
	}

	return msg, FormatDigest(posts), nil
}

func (p *Processor) process(ctx context.Context, url string, platforms []string) ([]domain.SocialPost, error) {
	if p.extractor == nil || p.generator == nil {
		return nil, fmt.Errorf("processor is not fully wired")
	}

	start := time.Now()
	blog, err := p.extractor.Extract(ctx, url)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	return p.generator.GeneratePosts(ctx, blog, platforms), nil
}

func (p *Processor) failedTask(taskID string, cause error) domain.Task {
	text := fmt.Sprintf("Failed to process blog post: %v", cause)
	return domain.Task{
		ID:        taskID,
		ContextID: uuid.NewString(),
		Status:    domain.NewTaskStatus(domain.TaskFailed, p.now()),
		Artifacts: []domain.Artifact{domain.NewTextArtifact(domain.ArtifactError, text)},
		History:   []domain.Message{},
		Kind:      "task",
		Metadata:  map[string]any{},
	}
}

// resolveTaskID reuses a caller-supplied string or numeric params.id, else mints one.
func resolveTaskID(params map[string]json.RawMessage) string {
	raw, ok := params["id"]
	if !ok {
		return uuid.NewString()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return n.String()
		}
	}

	return uuid.NewString()
}

// FormatDigest renders posts as a markdown document, one section per post.
func FormatDigest(posts []domain.SocialPost) string {
	lines := []string{"# 🎉 Social Media Posts Generated\n"}
	for _, post := range posts {
		emoji, ok := platformEmoji[post.Platform]
		if !ok {
			emoji = defaultEmoji
		}
		lines = append(lines,
			fmt.Sprintf("## %s %s\n", emoji, titleCase(post.Platform)),
			post.Content+"\n",
			"---\n",
		)
	}
	return strings.Join(lines, "\n")
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if prevLetter {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

func (p *Processor) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Processor) logError(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
