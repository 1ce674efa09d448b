package imageproc

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestMeasureWiderForLongerText(t *testing.T) {
	face := testFace(t, 30)
	shortW, shortH := Measure(face, "hi")
	longW, longH := Measure(face, "hi there, long line")
	if shortW <= 0 || shortH <= 0 {
		t.Errorf("Measure(short) = (%d, %d), want positive", shortW, shortH)
	}
	if longW <= shortW {
		t.Errorf("longer text measured %dpx, not wider than %dpx", longW, shortW)
	}
	if longH <= 0 {
		t.Errorf("Measure(long) height = %d, want positive", longH)
	}
}

func TestMeasureEmptyString(t *testing.T) {
	face := testFace(t, 30)
	w, h := Measure(face, "")
	if w != 0 {
		t.Errorf("empty string width = %d, want 0", w)
	}
	// Zero-width lines still occupy one line height downstream.
	if h <= 0 {
		t.Errorf("empty string height = %d, want positive", h)
	}
}

func TestMeasureBitmapFace(t *testing.T) {
	w, h := Measure(basicfont.Face7x13, "hello")
	if w <= 0 {
		t.Errorf("bitmap width = %d, want positive", w)
	}
	if h <= 0 || h > 13 {
		t.Errorf("bitmap height = %d, want within (0, 13]", h)
	}
}

func TestMeasureNilFaceEstimate(t *testing.T) {
	w, h := Measure(nil, "hello")
	if w != 5*estimateCharWidth || h != estimateLineHeight {
		t.Errorf("estimate = (%d, %d), want (%d, %d)", w, h, 5*estimateCharWidth, estimateLineHeight)
	}
}
