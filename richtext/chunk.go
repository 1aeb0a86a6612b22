package richtext

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash"

// Chunk is a piece of a [Line] with uniform style: a [*TextChunk],
// an [*ImageChunk] or a [*SpaceChunk].
type Chunk interface {
	// Size of the chunk in pixels.
	Size() image.Point

	// Position of the chunk's top-left corner, relative to the
	// top-left corner of the layout.
	Position() image.Point

	// Vertical offset requested with /v.
	VerticalOffset() int

	// Color set with /c, or false if the chunk uses the draw color.
	Color() (color.RGBA, bool)

	draw(renderer fontstash.Renderer, position mgl32.Vec2, clr color.RGBA, opts *fontstash.TextOptions) error
	base() *chunkBase
}

type chunkBase struct {
	position image.Point
	size image.Point
	voffset int
	color *color.RGBA
}

func (self *chunkBase) Size() image.Point { return self.size }
func (self *chunkBase) Position() image.Point { return self.position }
func (self *chunkBase) VerticalOffset() int { return self.voffset }
func (self *chunkBase) base() *chunkBase { return self }

func (self *chunkBase) Color() (color.RGBA, bool) {
	if self.color == nil { return color.RGBA{}, false }
	return *self.color, true
}

func (self *chunkBase) colorOr(clr color.RGBA) color.RGBA {
	if self.color == nil { return clr }
	return *self.color
}

// A run of text drawn with a single font.
type TextChunk struct {
	chunkBase
	text string
	font fontstash.Font
	style fontstash.TextStyle
	glyphs []TextChunkGlyph
}

// Returns the text of the chunk.
func (self *TextChunk) Text() string { return self.text }

// Returns the font of the chunk. The font is nil when it couldn't
// be resolved, in which case the chunk is empty.
func (self *TextChunk) Font() fontstash.Font { return self.font }

// Returns the text style set with /tu, /ts or /td.
func (self *TextChunk) TextStyle() fontstash.TextStyle { return self.style }

// Returns the positioned glyphs of the chunk. Only available when
// the layout has glyph calculation enabled.
func (self *TextChunk) Glyphs() []TextChunkGlyph { return self.glyphs }

func (self *TextChunk) draw(renderer fontstash.Renderer, position mgl32.Vec2, clr color.RGBA, opts *fontstash.TextOptions) error {
	if self.font == nil { return nil }
	options := *opts
	options.TextStyle = self.style
	_, err := self.font.DrawText(renderer, self.text, position, self.colorOr(clr), &options)
	return err
}

// An inline [Renderable].
type ImageChunk struct {
	chunkBase
	renderable Renderable
}

// Returns the element, or nil if it couldn't be resolved.
func (self *ImageChunk) Renderable() Renderable { return self.renderable }

func (self *ImageChunk) draw(renderer fontstash.Renderer, position mgl32.Vec2, clr color.RGBA, _ *fontstash.TextOptions) error {
	if self.renderable == nil { return nil }
	self.renderable.Draw(renderer, position, self.colorOr(clr))
	return nil
}

// Empty horizontal space inserted with /s.
type SpaceChunk struct {
	chunkBase
}

func (self *SpaceChunk) draw(fontstash.Renderer, mgl32.Vec2, color.RGBA, *fontstash.TextOptions) error {
	return nil
}

// A glyph of a [TextChunk], with its bounds relative to the top-left
// corner of the layout.
type TextChunkGlyph struct {
	Index int // rune index within the layout text, line breaks included
	Codepoint rune
	Bounds image.Rectangle
	XAdvance int
	LineTop int
	Chunk *TextChunk
}
