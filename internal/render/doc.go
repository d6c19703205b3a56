// Package render turns a status classification into the square key
// image and title the panel host displays.
//
// Rendering is deterministic and side-effect free: the same
// classification and timestamp always produce byte-identical output.
// The packaging of images into outbound host messages lives in the deck
// package; nothing here touches the network.
package render
