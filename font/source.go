package font

import "image"

import "github.com/pkg/errors"
import "github.com/tinne26/fontstash/fract"

// Identifier of a glyph within a single [Source]. Glyph ids of
// different sources are unrelated.
type GlyphID uint32

// Vertical metrics of a font at a given size, in pixels. Y grows
// downwards, so Descent is normally negative.
type Metrics struct {
	Ascent int
	Descent int
	LineHeight int
}

// Metrics of a single glyph at a given size.
type GlyphMetrics struct {
	// Horizontal advance, with subpixel precision.
	Advance fract.Unit

	// Pixel box of the rasterized glyph relative to the pen
	// position on the baseline.
	Bounds image.Rectangle
}

// Source is the capability fontstash requires from a loaded font.
// Sources are used from a single goroutine.
type Source interface {
	// Returns the glyph for the given codepoint, or false if the
	// font doesn't have one.
	GlyphID(codepoint rune) (GlyphID, bool)

	// Returns the vertical metrics at the given pixel size.
	Metrics(size fract.Unit) (Metrics, error)

	// Returns the metrics of the given glyph at the given pixel size.
	GlyphMetrics(id GlyphID, size fract.Unit) (GlyphMetrics, error)

	// Returns the kerning between two glyphs, in order.
	KernAdvance(first, second GlyphID, size fract.Unit) (fract.Unit, error)

	// Writes the RGBA8 coverage of the given glyph into dst. The buffer
	// covers the glyph's [GlyphMetrics] Bounds, possibly widened, with
	// the given stride in bytes.
	Rasterize(id GlyphID, size fract.Unit, dst []byte, width, height, stride int) error

	// Whether the font is a real bold face.
	HasBold() bool
}

// Synthetic style parameters for [FauxSource] rasterization.
type Faux struct {
	// Faux bold widening, in pixels.
	ExtraWidth float32

	// Oblique skew factor in [-1, 1], where 1 leans 45 degrees right.
	Skew float32
}

// Faux parameters used for fonts lacking bold or italic faces.
const (
	FauxBoldWidth   = 1
	FauxObliqueSkew = 0.2
)

// Whether the faux parameters have no effect.
func (self Faux) IsZero() bool { return self.ExtraWidth <= 0 && self.Skew == 0 }

// FauxSource is implemented by outline based sources that can
// synthesize oblique and bold glyphs while rasterizing.
type FauxSource interface {
	Source

	// Whether the font is a real italic or oblique face.
	HasItalic() bool

	// Like [Source.GlyphMetrics](), with the bounds of the glyph
	// once skewed and widened.
	FauxGlyphMetrics(id GlyphID, size fract.Unit, faux Faux) (GlyphMetrics, error)

	// Like [Source.Rasterize](), for buffers covering the bounds
	// returned by FauxGlyphMetrics.
	RasterizeFaux(id GlyphID, size fract.Unit, faux Faux, dst []byte, width, height, stride int) error
}

// Returned when font bytes can't be parsed.
var ErrInvalidFontData = errors.New("font: invalid font data")
