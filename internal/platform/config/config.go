// Package config loads application configuration from environment
// variables. All variables use the LWAI_ prefix and are resolved once at
// startup; nothing else in the codebase reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	AI          AIConfig
	Image       ImageConfig
	Auth        AuthConfig
	Log         LogConfig
	CatalogPath string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL runs
// the service with the in-memory content store.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis/Dragonfly connection settings. An empty URL
// runs the service with the in-process progress tracker.
type CacheConfig struct {
	URL string
}

// AIConfig holds configuration for both text-generation providers.
type AIConfig struct {
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
}

// GeminiConfig holds primary-provider settings. Each generation feature
// may carry its own API key; features without one use the shared key.
type GeminiConfig struct {
	APIKey         string
	SummaryAPIKey  string
	MindMapAPIKey  string
	QuizAPIKey     string
	LessonAPIKey   string
	ActivityAPIKey string
	Model          string
}

// KeyFor resolves the API key for a feature name, falling back to the
// shared key.
func (g GeminiConfig) KeyFor(feature string) string {
	var key string
	switch feature {
	case "summary":
		key = g.SummaryAPIKey
	case "mindmap":
		key = g.MindMapAPIKey
	case "quiz":
		key = g.QuizAPIKey
	case "lesson":
		key = g.LessonAPIKey
	case "activity":
		key = g.ActivityAPIKey
	}
	if key == "" {
		key = g.APIKey
	}
	return key
}

// OpenRouterConfig holds fallback-provider settings. An empty APIKey
// disables the fallback entirely.
type OpenRouterConfig struct {
	APIKey string
	Model  string
}

// ImageConfig holds slide image generation settings.
type ImageConfig struct {
	BaseURL      string
	Width        int
	Height       int
	DelaySeconds int
}

// AuthConfig holds API authentication settings. TokenHash is the bcrypt
// hash of the accepted bearer token; empty disables authentication.
type AuthConfig struct {
	TokenHash string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with LWAI_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("LWAI_SERVER_PORT", 8080),
			Host: envStr("LWAI_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("LWAI_DATABASE_URL", ""),
			MaxConns: envInt("LWAI_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("LWAI_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL: envStr("LWAI_CACHE_URL", ""),
		},
		AI: AIConfig{
			Gemini: GeminiConfig{
				APIKey:         envStr("LWAI_AI_GEMINI_API_KEY", ""),
				SummaryAPIKey:  envStr("LWAI_AI_GEMINI_SUMMARY_API_KEY", ""),
				MindMapAPIKey:  envStr("LWAI_AI_GEMINI_MINDMAP_API_KEY", ""),
				QuizAPIKey:     envStr("LWAI_AI_GEMINI_QUIZ_API_KEY", ""),
				LessonAPIKey:   envStr("LWAI_AI_GEMINI_LESSON_API_KEY", ""),
				ActivityAPIKey: envStr("LWAI_AI_GEMINI_ACTIVITY_API_KEY", ""),
				Model:          envStr("LWAI_AI_GEMINI_MODEL", "gemini-2.5-flash"),
			},
			OpenRouter: OpenRouterConfig{
				APIKey: envStr("LWAI_AI_OPENROUTER_API_KEY", ""),
				Model:  envStr("LWAI_AI_OPENROUTER_MODEL", ""),
			},
		},
		Image: ImageConfig{
			BaseURL:      envStr("LWAI_IMAGE_BASE_URL", "https://image.pollinations.ai"),
			Width:        envInt("LWAI_IMAGE_WIDTH", 1280),
			Height:       envInt("LWAI_IMAGE_HEIGHT", 720),
			DelaySeconds: envInt("LWAI_IMAGE_DELAY_SECONDS", 2),
		},
		Auth: AuthConfig{
			TokenHash: envStr("LWAI_AUTH_TOKEN_HASH", ""),
		},
		Log: LogConfig{
			Level:  envStr("LWAI_LOG_LEVEL", "info"),
			Format: envStr("LWAI_LOG_FORMAT", "json"),
		},
		CatalogPath: envStr("LWAI_CATALOG_PATH", "./catalog"),
	}

	return cfg, nil
}

// Validate checks that required configuration is present. A missing
// provider key is fatal at startup, never discovered mid-request.
func (c *Config) Validate() error {
	g := c.AI.Gemini
	if g.APIKey == "" {
		missing := g.SummaryAPIKey == "" || g.MindMapAPIKey == "" ||
			g.QuizAPIKey == "" || g.LessonAPIKey == "" || g.ActivityAPIKey == ""
		if missing {
			return fmt.Errorf("LWAI_AI_GEMINI_API_KEY is required (or a key per feature)")
		}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("LWAI_SERVER_PORT must be a valid port, got %d", c.Server.Port)
	}
	return nil
}

// HasFallback reports whether the fallback provider is configured.
func (c *Config) HasFallback() bool {
	return c.AI.OpenRouter.APIKey != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
