package main

import (
	"strings"
	"testing"
)

// TestParseStartupArgs_Complete verifies the host's invocation line
// parses into the expected parameters.
func TestParseStartupArgs_Complete(t *testing.T) {
	p, err := parseStartupArgs([]string{
		"-port", "28196",
		"-pluginUUID", "ABCDEF",
		"-registerEvent", "registerPlugin",
		"-info", `{"application":{"version":"6.0"}}`,
	})
	if err != nil {
		t.Fatalf("parseStartupArgs failed: %v", err)
	}

	if p.Port != 28196 {
		t.Errorf("Port = %d, want 28196", p.Port)
	}
	if p.PluginUUID != "ABCDEF" {
		t.Errorf("PluginUUID = %q", p.PluginUUID)
	}
	if p.RegisterEvent != "registerPlugin" {
		t.Errorf("RegisterEvent = %q", p.RegisterEvent)
	}
	if p.Info == "" {
		t.Error("Info blob was dropped")
	}
}

// TestParseStartupArgs_MissingRequired verifies each of the three
// required parameters is individually fatal. The info blob is not.
func TestParseStartupArgs_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			"no_port",
			[]string{"-pluginUUID", "x", "-registerEvent", "y"},
			"-port",
		},
		{
			"no_plugin_uuid",
			[]string{"-port", "1234", "-registerEvent", "y"},
			"-pluginUUID",
		},
		{
			"no_register_event",
			[]string{"-port", "1234", "-pluginUUID", "x"},
			"-registerEvent",
		},
		{
			"nothing",
			nil,
			"-port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStartupArgs(tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}

// TestParseStartupArgs_InfoOptional verifies the plugin starts without
// an info blob.
func TestParseStartupArgs_InfoOptional(t *testing.T) {
	p, err := parseStartupArgs([]string{
		"-port", "1234", "-pluginUUID", "x", "-registerEvent", "y",
	})
	if err != nil {
		t.Fatalf("parseStartupArgs failed: %v", err)
	}
	if p.Info != "" {
		t.Errorf("Info = %q, want empty", p.Info)
	}
}

// TestLoadConfig_NoFile verifies defaults apply when nothing is
// configured.
func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("DECKLIGHT_CONFIG", "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.APIBaseURL == "" {
		t.Error("expected default API base URL")
	}
}

// TestLoadConfig_MissingFile verifies an explicitly named but absent
// file is an error rather than a silent fallback.
func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig("/nonexistent/decklight.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
