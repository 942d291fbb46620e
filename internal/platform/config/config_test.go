package config

import (
	"os"
	"testing"
)

var allVars = []string{
	"LWAI_SERVER_PORT",
	"LWAI_SERVER_HOST",
	"LWAI_DATABASE_URL",
	"LWAI_DATABASE_MAX_CONNS",
	"LWAI_DATABASE_MIN_CONNS",
	"LWAI_CACHE_URL",
	"LWAI_AI_GEMINI_API_KEY",
	"LWAI_AI_GEMINI_SUMMARY_API_KEY",
	"LWAI_AI_GEMINI_MINDMAP_API_KEY",
	"LWAI_AI_GEMINI_QUIZ_API_KEY",
	"LWAI_AI_GEMINI_LESSON_API_KEY",
	"LWAI_AI_GEMINI_ACTIVITY_API_KEY",
	"LWAI_AI_GEMINI_MODEL",
	"LWAI_AI_OPENROUTER_API_KEY",
	"LWAI_AI_OPENROUTER_MODEL",
	"LWAI_IMAGE_BASE_URL",
	"LWAI_IMAGE_WIDTH",
	"LWAI_IMAGE_HEIGHT",
	"LWAI_IMAGE_DELAY_SECONDS",
	"LWAI_AUTH_TOKEN_HASH",
	"LWAI_LOG_LEVEL",
	"LWAI_LOG_FORMAT",
	"LWAI_CATALOG_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range allVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty", cfg.Database.URL)
	}
	if cfg.AI.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-2.5-flash", cfg.AI.Gemini.Model)
	}
	if cfg.Image.Width != 1280 || cfg.Image.Height != 720 {
		t.Errorf("Image dimensions = %dx%d, want 1280x720", cfg.Image.Width, cfg.Image.Height)
	}
	if cfg.CatalogPath != "./catalog" {
		t.Errorf("CatalogPath = %q, want ./catalog", cfg.CatalogPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LWAI_SERVER_PORT", "9090")
	t.Setenv("LWAI_AI_GEMINI_API_KEY", "key-1")
	t.Setenv("LWAI_AI_OPENROUTER_API_KEY", "key-2")
	t.Setenv("LWAI_DATABASE_URL", "postgres://localhost/lwai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if !cfg.HasFallback() {
		t.Error("HasFallback() = false, want true")
	}
	if cfg.Database.URL != "postgres://localhost/lwai" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "shared gemini key",
			mutate: func(c *Config) { c.AI.Gemini.APIKey = "k" },
		},
		{
			name: "per-feature keys only",
			mutate: func(c *Config) {
				c.AI.Gemini.SummaryAPIKey = "a"
				c.AI.Gemini.MindMapAPIKey = "b"
				c.AI.Gemini.QuizAPIKey = "c"
				c.AI.Gemini.LessonAPIKey = "d"
				c.AI.Gemini.ActivityAPIKey = "e"
			},
		},
		{
			name:    "no keys at all",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "partial per-feature keys",
			mutate: func(c *Config) {
				c.AI.Gemini.SummaryAPIKey = "a"
			},
			wantErr: true,
		},
		{
			name: "bad port",
			mutate: func(c *Config) {
				c.AI.Gemini.APIKey = "k"
				c.Server.Port = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKeyFor(t *testing.T) {
	g := GeminiConfig{APIKey: "shared", QuizAPIKey: "quiz-key"}

	if got := g.KeyFor("quiz"); got != "quiz-key" {
		t.Errorf("KeyFor(quiz) = %q, want quiz-key", got)
	}
	if got := g.KeyFor("summary"); got != "shared" {
		t.Errorf("KeyFor(summary) = %q, want shared", got)
	}
	if got := g.KeyFor("unknown"); got != "shared" {
		t.Errorf("KeyFor(unknown) = %q, want shared", got)
	}
}
