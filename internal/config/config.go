package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"PostCraft/internal/domain"
)

const (
	configPathEnv   = "POSTCRAFT_CONFIG"
	agentURLEnv     = "AGENT_URL"
	portEnv         = "PORT"
	geminiAPIKeyEnv = "GEMINI_API_KEY"
	geminiModelEnv  = "GEMINI_MODEL"
	groqAPIKeyEnv   = "GROQ_API_KEY"
	groqModelEnv    = "GROQ_MODEL"
	groqBaseURLEnv  = "GROQ_BASE_URL"
	logLevelEnv     = "LOG_LEVEL"
	logFormatEnv    = "LOG_FORMAT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Groq       GroqConfig       `yaml:"groq"`
	Generation GenerationConfig `yaml:"generation"`
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Platforms  PlatformConfig   `yaml:"platforms"`
}

// ServerConfig describes where the agent listens and how it advertises itself.
type ServerConfig struct {
	AgentURL string `yaml:"agentUrl"`
	Port     int    `yaml:"port"`
}

// Addr is the listen address for net/http.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// LoggingConfig selects slog level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// GeminiConfig is the primary provider.
type GeminiConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"baseUrl"`
}

// GroqConfig is the secondary provider, reached through its OpenAI-compatible API.
type GroqConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"baseUrl"`
}

// GenerationConfig carries sampling settings shared by all providers.
type GenerationConfig struct {
	Temperature float32       `yaml:"temperature"`
	MaxTokens   int           `yaml:"maxTokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ExtractorConfig tunes the blog fetcher.
type ExtractorConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"userAgent"`
	ExcerptLength int           `yaml:"excerptLength"`
}

// PlatformConfig separates the advertised allow-list from the platforms posts are generated for.
type PlatformConfig struct {
	Supported []string `yaml:"supported"`
	Targets   []string `yaml:"targets"`
}

// GeminiAvailable reports whether a Gemini credential is configured.
func (c Config) GeminiAvailable() bool {
	return c.Gemini.APIKey != ""
}

// GroqAvailable reports whether a Groq credential is configured.
func (c Config) GroqAvailable() bool {
	return c.Groq.APIKey != ""
}

// Load reads .env and the YAML file named by POSTCRAFT_CONFIG (if any) and applies environment overrides.
func Load() Config {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom is Load with an explicit YAML path; an empty path skips the file.
func LoadFrom(path string) Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: cannot read .env: %v", err)
	}

	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Validate rejects configurations the agent cannot serve with.
func (c Config) Validate() error {
	if !c.GeminiAvailable() && !c.GroqAvailable() {
		return fmt.Errorf("at least one AI API key (%s or %s) must be set", geminiAPIKeyEnv, groqAPIKeyEnv)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if len(c.Platforms.Targets) == 0 {
		return fmt.Errorf("no target platforms configured")
	}

	supported := make(map[string]bool, len(c.Platforms.Supported))
	for _, p := range c.Platforms.Supported {
		supported[p] = true
	}
	for _, p := range c.Platforms.Targets {
		if !supported[p] {
			return fmt.Errorf("target platform %s is not in the supported list", p)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(agentURLEnv); v != "" {
		c.Server.AgentURL = v
	}

	if v := os.Getenv(portEnv); v != "" {
		if port, err := strconv.Atoi(v); err != nil {
			log.Printf("config: invalid %s=%q, keeping %d", portEnv, v, c.Server.Port)
		} else {
			c.Server.Port = port
		}
	}

	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(geminiModelEnv); v != "" {
		c.Gemini.Model = v
	}

	if v := os.Getenv(groqAPIKeyEnv); v != "" {
		c.Groq.APIKey = v
	}
	if v := os.Getenv(groqModelEnv); v != "" {
		c.Groq.Model = v
	}
	if v := os.Getenv(groqBaseURLEnv); v != "" {
		c.Groq.BaseURL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.AgentURL != "" {
		base.Server.AgentURL = override.Server.AgentURL
	}
	if override.Server.Port != 0 {
		base.Server.Port = override.Server.Port
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}
	if override.Gemini.BaseURL != "" {
		base.Gemini.BaseURL = override.Gemini.BaseURL
	}

	if override.Groq.APIKey != "" {
		base.Groq.APIKey = override.Groq.APIKey
	}
	if override.Groq.Model != "" {
		base.Groq.Model = override.Groq.Model
	}
	if override.Groq.BaseURL != "" {
		base.Groq.BaseURL = override.Groq.BaseURL
	}

	if override.Generation.Temperature != 0 {
		base.Generation.Temperature = override.Generation.Temperature
	}
	if override.Generation.MaxTokens != 0 {
		base.Generation.MaxTokens = override.Generation.MaxTokens
	}
	if override.Generation.Timeout != 0 {
		base.Generation.Timeout = override.Generation.Timeout
	}

	if override.Extractor.Timeout != 0 {
		base.Extractor.Timeout = override.Extractor.Timeout
	}
	if override.Extractor.UserAgent != "" {
		base.Extractor.UserAgent = override.Extractor.UserAgent
	}
	if override.Extractor.ExcerptLength != 0 {
		base.Extractor.ExcerptLength = override.Extractor.ExcerptLength
	}

	if len(override.Platforms.Supported) > 0 {
		base.Platforms.Supported = normalizePlatforms(override.Platforms.Supported)
	}
	if len(override.Platforms.Targets) > 0 {
		base.Platforms.Targets = normalizePlatforms(override.Platforms.Targets)
	}

	return base
}

func normalizePlatforms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() Config {
	return Config{
		Server:  ServerConfig{AgentURL: "http://localhost:8000", Port: 8000},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Gemini:  GeminiConfig{Model: "gemini-2.0-flash-exp"},
		Groq: GroqConfig{
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://api.groq.com/openai/v1/",
		},
		Generation: GenerationConfig{Temperature: 0.7, MaxTokens: 500, Timeout: 60 * time.Second},
		Extractor: ExtractorConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "PostCraftAgent/1.0",
			ExcerptLength: 200,
		},
		Platforms: PlatformConfig{
			Supported: []string{
				domain.PlatformTwitter,
				domain.PlatformLinkedIn,
				domain.PlatformFacebook,
				domain.PlatformInstagram,
			},
			Targets: domain.DefaultTargets(),
		},
	}
}
