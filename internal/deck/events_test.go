package deck

import (
	"encoding/json"
	"testing"
	"time"
)

// TestSettings_IntervalFormats verifies that the interval survives both
// JSON encodings the property inspector produces.
func TestSettings_IntervalFormats(t *testing.T) {
	tests := []struct {
		name string
		json string
		want time.Duration
	}{
		{"number", `{"interval": 30}`, 30 * time.Second},
		{"string", `{"interval": "30"}`, 30 * time.Second},
		{"string_with_spaces", `{"interval": " 120 "}`, 120 * time.Second},
		{"empty_string", `{"interval": ""}`, 60 * time.Second},
		{"absent", `{}`, 60 * time.Second},
		{"zero", `{"interval": 0}`, 60 * time.Second},
		{"negative", `{"interval": -5}`, 60 * time.Second},
		{"one_second_floor", `{"interval": 1}`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Settings
			if err := json.Unmarshal([]byte(tt.json), &s); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := s.RefreshInterval(); got != tt.want {
				t.Errorf("RefreshInterval = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSettings_IntervalRejectsGarbage verifies non-numeric strings fail
// loudly instead of silently becoming a default.
func TestSettings_IntervalRejectsGarbage(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"interval": "soon"}`), &s); err == nil {
		t.Error("expected an error for a non-numeric interval")
	}
}

// TestSettings_Complete verifies the needs-configuration predicate.
func TestSettings_Complete(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     bool
	}{
		{"all_present", Settings{Token: "t", Owner: "acme", Repo: "widgets"}, true},
		{"with_workflow", Settings{Token: "t", Owner: "acme", Repo: "widgets", Workflow: "ci.yml"}, true},
		{"missing_token", Settings{Owner: "acme", Repo: "widgets"}, false},
		{"missing_owner", Settings{Token: "t", Repo: "widgets"}, false},
		{"missing_repo", Settings{Token: "t", Owner: "acme"}, false},
		{"empty", Settings{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.Complete(); got != tt.want {
				t.Errorf("Complete = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEvent_Decode verifies an inbound frame decodes with its session
// context and nested settings.
func TestEvent_Decode(t *testing.T) {
	frame := `{
		"event": "willAppear",
		"action": "dev.decklight.status",
		"context": "ABC123",
		"payload": {
			"settings": {
				"token": "ghp_x",
				"owner": "acme",
				"repo": "widgets",
				"interval": "30"
			}
		}
	}`

	var ev Event
	if err := json.Unmarshal([]byte(frame), &ev); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ev.Event != EventWillAppear {
		t.Errorf("Event = %q, want %q", ev.Event, EventWillAppear)
	}
	if ev.Context != "ABC123" {
		t.Errorf("Context = %q, want ABC123", ev.Context)
	}
	if !ev.Payload.Settings.Complete() {
		t.Error("expected complete settings")
	}
	if got := ev.Payload.Settings.RefreshInterval(); got != 30*time.Second {
		t.Errorf("RefreshInterval = %v, want 30s", got)
	}
}
