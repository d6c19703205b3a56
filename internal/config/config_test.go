package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

// TestParse_Defaults verifies an empty document yields the same values
// as Default().
func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want %q", cfg.APIBaseURL, DefaultAPIBaseURL)
	}
	if cfg.RequestTimeout.Duration() != DefaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout.Duration(), DefaultRequestTimeout)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

// TestParse_FullConfig verifies every field round-trips from YAML.
func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
api_base_url: https://github.example.com/api/v3
request_timeout: 3s
log_level: debug
log_file: /tmp/decklight.log
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.APIBaseURL != "https://github.example.com/api/v3" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout.Duration() != 3*time.Second {
		t.Errorf("RequestTimeout = %v, want 3s", cfg.RequestTimeout.Duration())
	}
	if cfg.LogFile != "/tmp/decklight.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		t.Fatalf("SlogLevel failed: %v", err)
	}
	if level != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", level)
	}
}

// TestParse_Invalid covers the validation failures.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad_yaml", "api_base_url: [", "parse YAML"},
		{"bad_duration", "request_timeout: soon", "invalid duration"},
		{"relative_url", "api_base_url: api.github.com", "not a valid absolute URL"},
		{"bad_level", "log_level: loud", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestDefault_IsValid guards against defaults drifting out of the
// validated range.
func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}
