package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"linkedin", "twitter"}, cfg.Platforms.Targets)
	assert.Equal(t, float32(0.7), cfg.Generation.Temperature)
	assert.Equal(t, 500, cfg.Generation.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Extractor.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, 200, cfg.Extractor.ExcerptLength)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(agentURLEnv, "https://agent.example.com")
	t.Setenv(portEnv, "9090")
	t.Setenv(geminiAPIKeyEnv, "gem-key")
	t.Setenv(groqAPIKeyEnv, "groq-key")
	t.Setenv(groqModelEnv, "mixtral")
	t.Setenv(logLevelEnv, "debug")

	cfg := defaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "https://agent.example.com", cfg.Server.AgentURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gem-key", cfg.Gemini.APIKey)
	assert.Equal(t, "groq-key", cfg.Groq.APIKey)
	assert.Equal(t, "mixtral", cfg.Groq.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.GeminiAvailable())
	assert.True(t, cfg.GroqAvailable())
}

func TestApplyEnvOverridesKeepsPortOnGarbage(t *testing.T) {
	t.Setenv(portEnv, "not-a-port")

	cfg := defaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadMergesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "postcraft.yaml")
	raw := []byte(`
server:
  port: 7000
groq:
  apiKey: from-file
generation:
  maxTokens: 800
  timeout: 45s
extractor:
  timeout: 5s
platforms:
  targets: [" Twitter "]
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	t.Setenv(configPathEnv, path)
	t.Setenv(portEnv, "")
	t.Setenv(groqAPIKeyEnv, "")

	cfg := Load()

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Groq.APIKey)
	assert.Equal(t, 800, cfg.Generation.MaxTokens)
	assert.Equal(t, float32(0.7), cfg.Generation.Temperature)
	assert.Equal(t, 5*time.Second, cfg.Extractor.Timeout)
	assert.Equal(t, 45*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, []string{"twitter"}, cfg.Platforms.Targets)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
}

func TestLoadFromMissingFileKeepsDefaults(t *testing.T) {
	t.Setenv(portEnv, "")
	t.Setenv(agentURLEnv, "")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Server.AgentURL)
	assert.Equal(t, []string{"linkedin", "twitter"}, cfg.Platforms.Targets)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("requires a provider key", func(t *testing.T) {
		cfg := defaultConfig()
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one AI API key")
	})

	t.Run("groq alone is enough", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Groq.APIKey = "k"
		require.NoError(t, cfg.Validate())
	})

	t.Run("targets must be supported", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Gemini.APIKey = "k"
		cfg.Platforms.Targets = []string{"linkedin", "mastodon"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mastodon")
	})

	t.Run("rejects empty targets", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Gemini.APIKey = "k"
		cfg.Platforms.Targets = nil
		require.Error(t, cfg.Validate())
	})
}
