package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"decklight/internal/gha"
)

// iconSize is the key image edge in pixels (the host's @2x key size).
const iconSize = 144

// timestampFormat is day/month hour:minute, rendered in the bottom
// right corner when a last-updated time is known.
const timestampFormat = "02/01 15:04"

var (
	colorSuccess    = color.RGBA{R: 0x2d, G: 0xa4, B: 0x4e, A: 0xff} // green
	colorFailure    = color.RGBA{R: 0xcf, G: 0x22, B: 0x2e, A: 0xff} // red
	colorPending    = color.RGBA{R: 0xd2, G: 0x99, B: 0x22, A: 0xff} // amber
	colorUnknown    = color.RGBA{R: 0x6e, G: 0x77, B: 0x81, A: 0xff} // grey
	colorBackground = color.RGBA{R: 0x1c, G: 0x21, B: 0x26, A: 0xff}
	colorTimestamp  = color.RGBA{R: 0xd0, G: 0xd7, B: 0xde, A: 0xff}
)

// statusColor returns the fixed color token for a classification.
func statusColor(c gha.Classification) color.RGBA {
	switch c {
	case gha.ClassificationSuccess:
		return colorSuccess
	case gha.ClassificationFailure:
		return colorFailure
	case gha.ClassificationPending:
		return colorPending
	default:
		return colorUnknown
	}
}

// Icon renders the key image for a classification as a PNG data URI.
//
// The glyph shape is fixed per classification: check for success, cross
// for failure, partial ring for pending, question mark for unknown.
// When updatedAt is non-zero it is composited into the bottom corner.
func Icon(c gha.Classification, updatedAt time.Time) (string, error) {
	dc := gg.NewContext(iconSize, iconSize)
	dc.SetColor(colorBackground)
	dc.Clear()

	dc.SetColor(statusColor(c))
	dc.SetLineWidth(12)
	dc.SetLineCap(gg.LineCapRound)

	switch c {
	case gha.ClassificationSuccess:
		drawCheck(dc)
	case gha.ClassificationFailure:
		drawCross(dc)
	case gha.ClassificationPending:
		drawRing(dc)
	default:
		drawQuestionMark(dc)
	}

	if !updatedAt.IsZero() {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(colorTimestamp)
		dc.DrawStringAnchored(updatedAt.Format(timestampFormat), iconSize-6, iconSize-10, 1, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode icon: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func drawCheck(dc *gg.Context) {
	dc.MoveTo(38, 76)
	dc.LineTo(62, 100)
	dc.LineTo(106, 46)
	dc.Stroke()
}

func drawCross(dc *gg.Context) {
	dc.MoveTo(46, 46)
	dc.LineTo(98, 98)
	dc.MoveTo(98, 46)
	dc.LineTo(46, 98)
	dc.Stroke()
}

// drawRing draws a three-quarter ring, open at the lower left.
func drawRing(dc *gg.Context) {
	dc.DrawArc(72, 72, 34, math.Pi*0.75, math.Pi*2.25)
	dc.Stroke()
}

// drawQuestionMark draws the hook, stem, and dot geometrically; the
// bundled bitmap font is far too small to scale up as a glyph.
func drawQuestionMark(dc *gg.Context) {
	// hook: left of the circle, over the top, down to its bottom
	dc.DrawArc(72, 52, 22, math.Pi, 2.5*math.Pi)
	dc.LineTo(72, 90)
	dc.Stroke()
	dc.DrawCircle(72, 110, 7)
	dc.Fill()
}
