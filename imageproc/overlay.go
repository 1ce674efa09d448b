// Package imageproc renders short text legibly over arbitrary raster images:
// word-wrapped, centered, backed by a translucent backdrop, and upscaled
// when only a low-resolution fallback font is available.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultScale is the font size as a fraction of image width when the
// caller passes no scale.
const DefaultScale = 0.03

const (
	minFontSize   = 18   // requested sizes never go below this
	minLineHeight = 14   // legibility floor; smaller rendered lines get upscaled
	maxWidthFrac  = 0.82 // wrapped lines fit within this fraction of the width
	padXFrac      = 0.06 // backdrop inset from the left and right edges
	backdropAlpha = 180
)

// Sentinel errors for the two fatal failure modes. Font-load failures are
// never surfaced; they fall through the candidate chain instead.
var (
	ErrDecode = errors.New("decode base image")
	ErrEncode = errors.New("encode output image")
)

var (
	backdropFill = image.NewUniform(color.NRGBA{A: backdropAlpha})
	textFill     = image.NewUniform(color.White)
)

// renderParams are derived once per call from the image width and scale.
type renderParams struct {
	fontSize int
	maxWidth int
	padX     int
	padY     int
	gap      int // vertical space between consecutive lines
}

func paramsFor(width int, scale float64) renderParams {
	if scale <= 0 {
		scale = DefaultScale
	}
	size := int(float64(width) * scale)
	if size < minFontSize {
		size = minFontSize
	}
	return renderParams{
		fontSize: size,
		maxWidth: int(float64(width) * maxWidthFrac),
		padX:     int(float64(width) * padXFrac),
		padY:     size * 6 / 10,
		gap:      size / 5,
	}
}

// renderPlan is the path chosen after measuring a representative line:
// draw at native size, or draw small and enlarge past the legibility floor.
type renderPlan struct {
	upscale bool
	factor  int
}

func planFor(sampleHeight int) renderPlan {
	if sampleHeight >= minLineHeight {
		return renderPlan{}
	}
	return renderPlan{upscale: true, factor: upscaleFactor(sampleHeight)}
}

func upscaleFactor(sampleHeight int) int {
	if sampleHeight < 1 {
		sampleHeight = 1
	}
	factor := int(math.Ceil(float64(minLineHeight) / float64(sampleHeight)))
	if factor < 1 {
		factor = 1
	}
	return factor
}

// Overlay composites text over the encoded image and returns the result as
// an opaque PNG with the same dimensions. scale sets the font size as a
// fraction of the image width; zero or negative means DefaultScale.
// Malformed input bytes report ErrDecode, serialization failures ErrEncode.
func Overlay(imageBytes []byte, text string, scale float64) ([]byte, error) {
	return OverlayWithFonts(imageBytes, text, scale, DefaultFontCandidates())
}

// OverlayWithFonts is Overlay with an explicit font resolution chain. An
// empty chain forces the bitmap fallback face.
func OverlayWithFonts(imageBytes []byte, text string, scale float64, fonts []FontSource) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	params := paramsFor(width, scale)
	face := ResolveFace(params.fontSize, fonts)

	lines := Wrap(face, text, params.maxWidth)
	blockHeight := 0
	for i, line := range lines {
		if i > 0 {
			blockHeight += params.gap
		}
		blockHeight += line.Height
	}

	layer := image.NewRGBA(image.Rect(0, 0, width, height))
	if plan := planFor(lines[0].Height); plan.upscale {
		block := renderSmallBlock(face, lines, width, blockHeight, params)
		scaled := enlarge(block, plan.factor)
		top := (height - scaled.Bounds().Dy()) / 2
		left := (width - scaled.Bounds().Dx()) / 2
		draw.Draw(layer, scaled.Bounds().Add(image.Pt(left, top)), scaled, image.Point{}, draw.Src)
	} else {
		top := (height - blockHeight) / 2
		backdrop := image.Rect(params.padX, top-params.padY, width-params.padX, top+blockHeight+params.padY)
		draw.Draw(layer, backdrop, backdropFill, image.Point{}, draw.Src)
		drawLines(layer, face, lines, top, width, params.gap)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), src, bounds.Min, draw.Src)
	draw.Draw(out, out.Bounds(), layer, image.Point{}, draw.Over)
	flatten(out)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// drawLines draws each line horizontally centered, advancing the pen by the
// line's own measured height plus the inter-line gap.
func drawLines(dst draw.Image, face font.Face, lines []Line, top, width, gap int) {
	ascent := face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{Dst: dst, Src: textFill, Face: face}
	y := top
	for _, line := range lines {
		drawer.Dot = fixed.P((width-line.Width)/2, y+ascent)
		drawer.DrawString(line.Text)
		y += line.Height + gap
	}
}

// renderSmallBlock draws the backdrop and all lines at native size into a
// buffer sized for later enlargement. The backdrop spans the full buffer
// height; the extra margin keeps the enlarged text clear of its edges.
func renderSmallBlock(face font.Face, lines []Line, width, blockHeight int, p renderParams) *image.RGBA {
	h := blockHeight + p.fontSize*6/5
	block := image.NewRGBA(image.Rect(0, 0, width, h))
	draw.Draw(block, image.Rect(p.padX, 0, width-p.padX, h), backdropFill, image.Point{}, draw.Src)
	drawLines(block, face, lines, p.padY*3/10, width, p.gap)
	return block
}

// enlarge scales the block by an integer factor with nearest-neighbor
// sampling. Blocky output stays legible at these sizes where smoothing
// would blur the glyphs away.
func enlarge(block *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return block
	}
	b := block.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), block, b, xdraw.Src, nil)
	return dst
}

// flatten forces every pixel opaque so the encoder emits no alpha channel.
func flatten(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
