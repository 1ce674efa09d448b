package imageproc

import (
	"unicode/utf8"

	"golang.org/x/image/font"
)

// Fallback cell used when a face reports no usable metrics at all.
const (
	estimateCharWidth  = 8
	estimateLineHeight = 12
)

// Measure returns the rendered pixel width and height of s under face. It
// prefers the exact glyph bounding box, falls back to advance-width metrics
// plus the face line height, and finally to a fixed per-character estimate.
// It never fails; the estimate is a degraded mode, not an error.
func Measure(face font.Face, s string) (int, int) {
	if face == nil {
		return utf8.RuneCountInString(s) * estimateCharWidth, estimateLineHeight
	}
	if bounds, _ := font.BoundString(face, s); !bounds.Empty() {
		return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
	}
	advance := font.MeasureString(face, s).Ceil()
	if lineHeight := face.Metrics().Height.Ceil(); lineHeight > 0 {
		return advance, lineHeight
	}
	return utf8.RuneCountInString(s) * estimateCharWidth, estimateLineHeight
}
