package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/render"
)

// isolate runs the test from an empty directory with an empty home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadReturnsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Render.Format != "png" {
		t.Errorf("Render.Format: got %q, want %q", cfg.Render.Format, "png")
	}
	if cfg.Render.Width != 320 || cfg.Render.Height != 160 {
		t.Errorf("Render size: got %dx%d, want 320x160", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Output.Pretty {
		t.Error("Output.Pretty should be false by default")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Level() != zerolog.WarnLevel {
		t.Errorf("Level(): got %v, want warn", cfg.Level())
	}
}

func TestLoadReadsWorkingDirectoryFile(t *testing.T) {
	dir := isolate(t)

	content := "render:\n  format: svg\n  width: 640\noutput:\n  pretty: true\n"
	if err := os.WriteFile(filepath.Join(dir, "jsonchart.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("Render.Format: got %q, want svg", cfg.Render.Format)
	}
	if cfg.Render.Width != 640 {
		t.Errorf("Render.Width: got %d, want 640", cfg.Render.Width)
	}
	if cfg.Render.Height != 160 {
		t.Errorf("Render.Height: got %d, want default 160", cfg.Render.Height)
	}
	if !cfg.Output.Pretty {
		t.Error("Output.Pretty should be read from file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("JSONCHART_RENDER_FORMAT", "xlsx")
	t.Setenv("JSONCHART_RENDER_HEIGHT", "90")
	t.Setenv("JSONCHART_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Format != "xlsx" {
		t.Errorf("Render.Format: got %q, want xlsx", cfg.Render.Format)
	}
	if cfg.Render.Height != 90 {
		t.Errorf("Render.Height: got %d, want 90", cfg.Render.Height)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level(): got %v, want debug", cfg.Level())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("render:\n  dpi: 144\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Render.DPI != 144 {
		t.Errorf("Render.DPI: got %f, want 144", cfg.Render.DPI)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFromFile() should fail for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown format", func(c *Config) { c.Render.Format = "gif" }, true},
		{"negative width", func(c *Config) { c.Render.Width = -1 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Render:  RenderConfig{Format: "png", Width: 320, Height: 160},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := Config{Render: RenderConfig{Format: "svg", Width: 10, Height: 20, DPI: 72}}
	opts := cfg.Options()

	if opts.Format != render.FormatSVG {
		t.Errorf("Format: got %q, want svg", opts.Format)
	}
	if opts.Width != 10 || opts.Height != 20 || opts.DPI != 72 {
		t.Errorf("Options() = %+v", opts)
	}
}
