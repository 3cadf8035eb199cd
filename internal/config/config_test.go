package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Particles != 60 || cfg.LinkDistance != 130 {
		t.Errorf("unexpected particle defaults %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	data := "PORTFOLIO_PARTICLES=12\nPORTFOLIO_TITLE=From File\nPORTFOLIO_SEED=5\n"
	if err := os.WriteFile(env, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_PARTICLES", "20")
	t.Setenv("PORTFOLIO_SOUND", "false")
	t.Setenv("PORTFOLIO_HOST", "terminal")
	// godotenv.Load sets variables for the whole process.
	t.Setenv("PORTFOLIO_TITLE", "")
	t.Setenv("PORTFOLIO_SEED", "")
	os.Unsetenv("PORTFOLIO_TITLE")
	os.Unsetenv("PORTFOLIO_SEED")

	cfg, err := Load(env, []string{"-width", "640"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Particles != 20 {
		t.Errorf("environment should win over .env, got %v particles", cfg.Particles)
	}
	if cfg.Title != "From File" || cfg.Seed != 5 {
		t.Errorf(".env values not applied: %+v", cfg)
	}
	if cfg.Sound {
		t.Errorf("PORTFOLIO_SOUND=false not applied")
	}
	if cfg.Host != HostTerminal {
		t.Errorf("expected terminal host, got %q", cfg.Host)
	}
	if cfg.Width != 640 {
		t.Errorf("flag not applied, width %v", cfg.Width)
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_WIDTH", "wide")
	if _, err := Load("", nil); err == nil {
		t.Errorf("expected error for non-numeric width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"width", func(c *Config) { c.Width = 0 }},
		{"height", func(c *Config) { c.Height = -1 }},
		{"particles", func(c *Config) { c.Particles = -3 }},
		{"distance", func(c *Config) { c.LinkDistance = 0 }},
		{"host", func(c *Config) { c.Host = "browser" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}
