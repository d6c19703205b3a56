package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// errConnClosed is returned by outbound commands after Close.
var errConnClosed = errors.New("host connection closed")

// registration is the handshake frame: the host supplies the event
// name and plugin identity on the command line and expects them echoed
// back immediately after connecting.
type registration struct {
	Event string `json:"event"`
	UUID  string `json:"uuid"`
}

// command is an outbound frame. Payload keys depend on the event.
type command struct {
	Event   string         `json:"event"`
	Context string         `json:"context,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Conn is the plugin's registered connection to the panel host.
//
// A reader goroutine decodes inbound frames onto the channel returned
// by [Conn.Events]. Outbound commands are funnelled through a buffered
// channel to a single writer goroutine, since the websocket permits
// only one concurrent writer. Command methods are therefore safe to
// call from any goroutine.
type Conn struct {
	ws     *websocket.Conn
	events chan Event
	outbox chan command
	logger *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// Connect dials the host on the loopback interface, sends the
// registration frame, and starts the reader and writer goroutines.
func Connect(port int, pluginUUID, registerEvent string, logger *slog.Logger) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(fmt.Sprintf("ws://127.0.0.1:%d", port), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial host on port %d: %w", port, err)
	}

	if err := ws.WriteJSON(registration{Event: registerEvent, UUID: pluginUUID}); err != nil {
		_ = ws.Close()
		return nil, fmt.Errorf("failed to register with host: %w", err)
	}

	c := &Conn{
		ws:     ws,
		events: make(chan Event, 32),
		outbox: make(chan command, 64),
		logger: logger,
		done:   make(chan struct{}),
	}

	go c.readLoop()
	go c.writeLoop()

	return c, nil
}

// Events returns the inbound event channel. The channel is closed when
// the host connection drops; a plugin cannot outlive its host, so
// consumers should treat closure as a shutdown signal.
func (c *Conn) Events() <-chan Event {
	return c.events
}

func (c *Conn) readLoop() {
	defer close(c.events)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				// expected during shutdown
			default:
				c.logger.Error("host connection read failed", "error", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			c.logger.Warn("ignoring malformed host frame", "error", err)
			continue
		}

		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

func (c *Conn) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.outbox:
			if err := c.ws.WriteJSON(msg); err != nil {
				c.logger.Error("host connection write failed", "event", msg.Event, "error", err)
			}
		}
	}
}

// send queues an outbound frame for the writer goroutine.
func (c *Conn) send(msg command) error {
	select {
	case c.outbox <- msg:
		return nil
	case <-c.done:
		return errConnClosed
	}
}

// SetTitle updates the text shown on a key.
func (c *Conn) SetTitle(sessionCtx, title string) error {
	return c.send(command{
		Event:   "setTitle",
		Context: sessionCtx,
		Payload: map[string]any{"title": title, "target": 0},
	})
}

// SetImage updates a key's image from a data URI.
func (c *Conn) SetImage(sessionCtx, image string) error {
	return c.send(command{
		Event:   "setImage",
		Context: sessionCtx,
		Payload: map[string]any{"image": image, "target": 0},
	})
}

// OpenURL asks the host to open a URL in the default browser.
func (c *Conn) OpenURL(url string) error {
	return c.send(command{
		Event:   "openUrl",
		Payload: map[string]any{"url": url},
	})
}

// LogMessage writes a line to the host's own plugin log.
func (c *Conn) LogMessage(message string) error {
	return c.send(command{
		Event:   "logMessage",
		Payload: map[string]any{"message": message},
	})
}

// Close tears the connection down. Safe to call multiple times.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.ws.Close()
}
