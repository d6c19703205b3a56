// Package deck speaks the panel host's wire protocol: JSON frames over
// a local websocket, established with a registration handshake using
// parameters the host passes on the plugin's command line.
//
// The main components are:
//
//   - [Conn]: the registered host connection with reader/writer goroutines
//   - [Event]: one inbound frame (appear, disappear, key up/down, settings)
//   - [Settings]: the per-key configuration the property inspector stores
//
// The protocol is consumed as fixed: this package translates frames to
// and from Go values and nothing more. All monitoring behavior lives in
// the scheduler package.
package deck
