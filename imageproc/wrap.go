package imageproc

import (
	"strings"

	"golang.org/x/image/font"
)

// Line is one wrapped line of the text block with its measured pixel size.
type Line struct {
	Text   string
	Width  int
	Height int
}

// Wrap breaks text into lines no wider than maxWidth pixels. Explicit
// newlines are hard boundaries; within a paragraph, words accumulate
// greedily until the next word would push the measured width past the
// bound. A single word wider than maxWidth stays whole on its own line.
// The result always has at least one line, so empty input still yields a
// block one line tall.
func Wrap(face font.Face, text string, maxWidth int) []Line {
	var lines []Line
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(face, paragraph, maxWidth)...)
	}
	return lines
}

func wrapParagraph(face font.Face, paragraph string, maxWidth int) []Line {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []Line{makeLine(face, "")}
	}
	var lines []Line
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if w, _ := Measure(face, candidate); w <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, makeLine(face, current))
		current = word
	}
	return append(lines, makeLine(face, current))
}

func makeLine(face font.Face, s string) Line {
	w, h := Measure(face, s)
	return Line{Text: s, Width: w, Height: h}
}
