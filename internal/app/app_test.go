package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"PostCraft/internal/config"
	"PostCraft/internal/logging"
)

// TestMain ensures the server goroutines are gone once Run returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func testConfig() config.Config {
	return config.Config{
		Server:     config.ServerConfig{AgentURL: "http://agent.test", Port: 0},
		Groq:       config.GroqConfig{APIKey: "gsk-test", Model: "llama-test", BaseURL: "http://127.0.0.1:1/"},
		Generation: config.GenerationConfig{Temperature: 0.7, MaxTokens: 500},
		Extractor:  config.ExtractorConfig{Timeout: 2 * time.Second},
		Platforms:  config.PlatformConfig{Supported: []string{"twitter", "linkedin"}, Targets: []string{"twitter"}},
	}
}

func TestNewWiresHealthAndTargets(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, []string{"twitter"}, application.Processor().Targets())

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, false, health["gemini_available"])
	assert.Equal(t, true, health["groq_available"])
}

func TestBuildProvidersOrder(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Gemini = config.GeminiConfig{APIKey: "gm-test", Model: "gemini-test"}

	providers := buildProviders(context.Background(), cfg, logging.Discard())
	require.Len(t, providers, 2)
	assert.Equal(t, "gemini", providers[0].Name())
	assert.Equal(t, "groq", providers[1].Name())
}

func TestBuildProvidersSkipsBrokenConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Groq.Model = ""

	assert.Empty(t, buildProviders(context.Background(), cfg, logging.Discard()))
}

func TestRunReportsListenError(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)
	defer application.Close()
	application.server.Addr = "256.0.0.1:bad"

	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), testConfig(), logging.Discard())
	require.NoError(t, err)
	defer application.Close()
	application.server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWriteTimeoutCoversWorkBudget(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Extractor.Timeout = 30 * time.Second
	cfg.Generation.Timeout = 60 * time.Second

	application, err := New(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, 105*time.Second, application.server.WriteTimeout)
	assert.Greater(t, application.server.WriteTimeout, cfg.Extractor.Timeout+cfg.Generation.Timeout)

	cfg.Generation.Timeout = 0
	assert.Zero(t, writeTimeout(cfg))
}
