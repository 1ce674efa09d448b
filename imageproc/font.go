package imageproc

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is one candidate in the font resolution chain. Load returns a
// face at the requested pixel size; an error moves the resolver on to the
// next candidate.
type FontSource interface {
	Load(px int) (font.Face, error)
}

// FontFile loads a TrueType/OpenType font from an explicit path.
type FontFile string

func (p FontFile) Load(px int) (font.Face, error) {
	data, err := os.ReadFile(string(p))
	if err != nil {
		return nil, err
	}
	return FontBytes(data).Load(px)
}

// FontBytes loads a font from in-memory TTF/OTF data.
type FontBytes []byte

func (b FontBytes) Load(px int) (font.Face, error) {
	parsed, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("can't parse font: %w", err)
	}
	return newFace(parsed, px)
}

// FontName searches the standard font directories for a file with the given
// basename, so common fonts resolve without an explicit path.
type FontName string

var fontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts/truetype/freefont",
	"/usr/share/fonts/truetype/ubuntu",
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
	"/Library/Fonts",
}

func (n FontName) Load(px int) (font.Face, error) {
	for _, dir := range fontDirs {
		path := filepath.Join(dir, string(n))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return FontFile(path).Load(px)
	}
	return nil, fmt.Errorf("font %q not found in known font directories", string(n))
}

func newFace(f *sfnt.Font, px int) (font.Face, error) {
	// At 72 DPI the point size equals the pixel size.
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// DefaultFontCandidates returns the preference order used by the service:
// bundled sans-serif font files first, bold preferred, then bare names
// searched across the font directories.
func DefaultFontCandidates() []FontSource {
	return []FontSource{
		FontFile("/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"),
		FontFile("/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"),
		FontFile("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
		FontFile("/usr/share/fonts/truetype/freefont/FreeSans.ttf"),
		FontFile("/usr/share/fonts/truetype/ubuntu/Ubuntu-B.ttf"),
		FontName("DejaVuSans-Bold.ttf"),
		FontName("DejaVuSans.ttf"),
		FontName("LiberationSans-Bold.ttf"),
		FontName("LiberationSans-Regular.ttf"),
		FontName("FreeSans.ttf"),
		FontName("Arial.ttf"),
	}
}

// ResolveFace returns a face for the target pixel size. Candidates are tried
// in order and load failures are skipped silently; when none loads, the
// fixed-size bitmap face is returned, so resolution never fails. Callers
// detect the bitmap fallback by its rendered height, not by an error.
func ResolveFace(px int, candidates []FontSource) font.Face {
	for _, c := range candidates {
		face, err := c.Load(px)
		if err != nil {
			continue
		}
		return face
	}
	return basicfont.Face7x13
}
