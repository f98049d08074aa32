package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ClockInterval != 6*time.Second {
		t.Errorf("Expected ClockInterval 6s, got %v", cfg.ClockInterval)
	}
	if cfg.RefreshDelay != 2*time.Second {
		t.Errorf("Expected RefreshDelay 2s, got %v", cfg.RefreshDelay)
	}
	if cfg.Source != SourceStatic {
		t.Errorf("Expected static source, got %q", cfg.Source)
	}
	if cfg.Location != "Lokalizacja" || cfg.Temperature != 8 || cfg.Low != 6 || cfg.High != 10 {
		t.Errorf("Unexpected default reading %+v", cfg.Reading())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{name: "valid default config", mutate: func(*Config) {}},
		{name: "zero clock interval", mutate: func(c *Config) { c.ClockInterval = 0 }, field: "ClockInterval", wantErr: true},
		{name: "negative refresh delay", mutate: func(c *Config) { c.RefreshDelay = -time.Second }, field: "RefreshDelay", wantErr: true},
		{name: "zero settle delay", mutate: func(c *Config) { c.SettleDelay = 0 }, field: "SettleDelay", wantErr: true},
		{name: "zero scroll step", mutate: func(c *Config) { c.ScrollStep = 0 }, field: "ScrollStep", wantErr: true},
		{name: "zero damping", mutate: func(c *Config) { c.SpringDamping = 0 }, field: "Spring", wantErr: true},
		{name: "empty location", mutate: func(c *Config) { c.Location = "" }, field: "Location", wantErr: true},
		{name: "file source without path", mutate: func(c *Config) { c.Source = SourceFile }, field: "ReadingsFile", wantErr: true},
		{name: "unknown source", mutate: func(c *Config) { c.Source = "radio" }, field: "Source", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("expected ConfigError on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestConfig_WithMethods(t *testing.T) {
	cfg := DefaultConfig()

	newCfg := cfg.WithReadingsFile("/tmp/readings.yml")
	if newCfg.Source != SourceFile || newCfg.ReadingsFile != "/tmp/readings.yml" {
		t.Errorf("WithReadingsFile failed, got %+v", newCfg)
	}
	if cfg.Source != SourceStatic {
		t.Error("WithReadingsFile mutated original config")
	}

	if got := cfg.WithRefreshDelay(time.Second).RefreshDelay; got != time.Second {
		t.Errorf("WithRefreshDelay failed, got %v", got)
	}
	if got := cfg.WithClockInterval(time.Minute).ClockInterval; got != time.Minute {
		t.Errorf("WithClockInterval failed, got %v", got)
	}
	if got := cfg.WithLogFile("debug.log").LogFile; got != "debug.log" {
		t.Errorf("WithLogFile failed, got %q", got)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "TestField", Message: "test message"}

	expected := "config error: TestField test message"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestNewSource(t *testing.T) {
	src, err := DefaultConfig().NewSource()
	if err != nil || src.Name() != "static" {
		t.Errorf("expected static source, got %v, %v", src, err)
	}

	src, err = DefaultConfig().WithReadingsFile("r.yml").NewSource()
	if err != nil || src.Name() != "file" {
		t.Errorf("expected file source, got %v, %v", src, err)
	}

	cfg := DefaultConfig()
	cfg.Source = "radio"
	if _, err := cfg.NewSource(); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `clock-interval: 3s
refresh-delay: 500ms
location: Kraków
temperature: 14
unit: C
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WEATHERDECK_SCROLL_STEP", "15")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ClockInterval != 3*time.Second {
		t.Errorf("ClockInterval = %v; want 3s", cfg.ClockInterval)
	}
	if cfg.RefreshDelay != 500*time.Millisecond {
		t.Errorf("RefreshDelay = %v; want 500ms", cfg.RefreshDelay)
	}
	if cfg.Location != "Kraków" || cfg.Temperature != 14 || cfg.Unit != "C" {
		t.Errorf("unexpected reading %+v", cfg.Reading())
	}
	if cfg.ScrollStep != 15 {
		t.Errorf("ScrollStep = %v; want 15 from env", cfg.ScrollStep)
	}
	if cfg.Low != 6 || cfg.High != 10 {
		t.Errorf("unset keys should keep defaults, got low %v high %v", cfg.Low, cfg.High)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("source: radio\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("location: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
