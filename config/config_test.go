package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want console", cfg.LogFormat)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "verbose", LogFormat: "console", OutputDir: "."}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := &Config{LogLevel: "info", LogFormat: "xml", OutputDir: "."}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestValidateRejectsEmptyOutputDir(t *testing.T) {
	cfg := &Config{LogLevel: "info", LogFormat: "console", OutputDir: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty output dir")
	}
}

func TestValidateNormalizesCase(t *testing.T) {
	cfg := &Config{LogLevel: "DEBUG", LogFormat: "JSON", OutputDir: "."}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("expected normalized lowercase fields, got %+v", cfg)
	}
}
