package deck

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Inbound event names in the host protocol.
const (
	EventWillAppear         = "willAppear"
	EventWillDisappear      = "willDisappear"
	EventKeyDown            = "keyDown"
	EventKeyUp              = "keyUp"
	EventDidReceiveSettings = "didReceiveSettings"
)

// Event is one inbound frame from the host.
type Event struct {
	// Event is the event name, one of the Event* constants (the host
	// sends others too; unrecognized names are ignored upstream).
	Event string `json:"event"`

	// Action identifies the plugin action the key is bound to.
	Action string `json:"action"`

	// Context is the opaque session key for the key instance, stable
	// for the key's visible lifetime.
	Context string `json:"context"`

	// Payload carries the event's settings where applicable.
	Payload Payload `json:"payload"`
}

// Payload is the settings-bearing part of an inbound frame.
type Payload struct {
	Settings Settings `json:"settings"`
}

// defaultRefreshInterval applies when the property inspector left the
// interval unset.
const defaultRefreshInterval = 60 * time.Second

// Settings is the per-key configuration stored by the property
// inspector.
type Settings struct {
	// Token is the provider credential.
	Token string `json:"token"`

	// Owner and Repo identify the repository to watch.
	Owner string `json:"owner"`
	Repo  string `json:"repo"`

	// Workflow optionally narrows monitoring to one workflow.
	Workflow string `json:"workflow"`

	// Interval is the refresh cadence in seconds. Zero means unset.
	Interval IntervalSec `json:"interval"`
}

// Complete reports whether enough is configured to query the provider.
// Incomplete settings put the key in the needs-configuration state.
func (s Settings) Complete() bool {
	return s.Token != "" && s.Owner != "" && s.Repo != ""
}

// RefreshInterval returns the configured cadence, defaulting to 60s
// when unset and clamping to a 1s floor.
func (s Settings) RefreshInterval() time.Duration {
	if s.Interval <= 0 {
		return defaultRefreshInterval
	}
	return time.Duration(s.Interval) * time.Second
}

// IntervalSec is a seconds count that accepts both JSON numbers and
// numeric strings; the property inspector serialises text inputs as
// strings.
type IntervalSec int

// UnmarshalJSON implements json.Unmarshaler for IntervalSec.
func (i *IntervalSec) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*i = IntervalSec(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("interval must be a number or numeric string: %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", s, err)
	}
	*i = IntervalSec(n)
	return nil
}
