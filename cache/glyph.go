package cache

import "image"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

// Glyph is the record for a codepoint resolved at a given size. It's
// created on first lookup and updated once when placed on an atlas.
type Glyph struct {
	Codepoint rune
	ID font.GlyphID
	SourceIndex int // index of the source that produced the glyph

	// Render size key: the font size times the resolution factor.
	Size fract.Unit

	// Offset from the pen position on the baseline to the top-left
	// corner of the bitmap, in pixels.
	RenderOffset image.Point

	// Bitmap size in pixels. Zero for glyphs without visible pixels.
	PixelSize image.Point

	XAdvance fract.Unit

	// Texture and region where the bitmap was placed. Texture stays
	// nil until the glyph is placed.
	Texture atlas.Texture
	TextureRect image.Rectangle
}

// Returns the bitmap rect relative to the pen position.
func (self *Glyph) RenderRect() image.Rectangle {
	return image.Rectangle{
		Min: self.RenderOffset,
		Max: self.RenderOffset.Add(self.PixelSize),
	}
}

// Whether the glyph has no pixels to draw (e.g. spaces).
func (self *Glyph) IsEmpty() bool {
	return self.PixelSize.X <= 0 || self.PixelSize.Y <= 0
}

// Whether the glyph has already been assigned a texture region.
func (self *Glyph) Placed() bool {
	return self.Texture != nil
}
