package imageproc

import (
	"strings"
	"testing"
)

func TestWrapScenarioQuote(t *testing.T) {
	face := testFace(t, 30)
	const maxWidth = 820
	lines := Wrap(face, "Success is not final, failure is not fatal.", maxWidth)
	if len(lines) < 1 || len(lines) > 2 {
		t.Fatalf("got %d lines, want 1 or 2", len(lines))
	}
	for _, line := range lines {
		if line.Width > maxWidth {
			t.Errorf("line %q measured %dpx, exceeds bound %dpx", line.Text, line.Width, maxWidth)
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	face := testFace(t, 24)
	const maxWidth = 300
	text := "the quick brown fox jumps over the lazy dog again and again until it tires"
	first := Wrap(face, text, maxWidth)

	parts := make([]string, len(first))
	for i, line := range first {
		parts[i] = line.Text
	}
	second := Wrap(face, strings.Join(parts, " "), maxWidth)

	if len(second) != len(first) {
		t.Fatalf("re-wrap produced %d lines, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Text != first[i].Text {
			t.Errorf("line %d: re-wrap gave %q, want %q", i, second[i].Text, first[i].Text)
		}
	}
}

func TestWrapEmptyInput(t *testing.T) {
	face := testFace(t, 30)
	lines := Wrap(face, "", 500)
	if len(lines) != 1 {
		t.Fatalf("empty input gave %d lines, want exactly 1", len(lines))
	}
	if lines[0].Text != "" || lines[0].Width != 0 {
		t.Errorf("empty input line = %+v, want empty text with zero width", lines[0])
	}
}

func TestWrapParagraphBreaks(t *testing.T) {
	face := testFace(t, 24)
	lines := Wrap(face, "one\n\ntwo", 500)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Text != "one" || lines[1].Text != "" || lines[2].Text != "two" {
		t.Errorf("lines = %q, %q, %q; blank paragraph must survive as an empty line",
			lines[0].Text, lines[1].Text, lines[2].Text)
	}
}

func TestWrapOverlongWordKeptWhole(t *testing.T) {
	face := testFace(t, 24)
	const maxWidth = 100
	long := strings.Repeat("W", 40)
	lines := Wrap(face, "aa "+long+" bb", maxWidth)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1].Text != long {
		t.Fatalf("middle line = %q, want the overlong word on its own", lines[1].Text)
	}
	if lines[1].Width <= maxWidth {
		t.Errorf("overlong word measured %dpx, expected it to exceed %dpx", lines[1].Width, maxWidth)
	}
}
