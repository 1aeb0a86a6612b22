package fontstash

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/cache"
import "github.com/tinne26/fontstash/fract"

// Font is the common interface of [DynamicFont] and [StaticFont].
//
// Fonts are not safe for concurrent use.
type Font interface {
	// Returns the size requested for the font, in pixels.
	FontSize() float32

	// Returns the distance between consecutive baselines, in pixels.
	LineHeight() int

	// Returns the vertical metrics used to lay out the given text:
	// the ascent and line height of the first glyph that can be
	// resolved, or zeros if none can. Values are in pixels.
	TextMetrics(text string) (ascent, lineHeight int)

	// Returns the glyph record for the given codepoint, applying the
	// default character when needed, or nil if it can't be resolved.
	// The glyph may not be placed on an atlas yet.
	Glyph(codepoint rune) *cache.Glyph

	// Returns the kerning to apply between the two glyphs.
	Kerning(prev, glyph *cache.Glyph) fract.Unit

	// Returns the bounds of the given text when drawn at the given
	// position. A nil opts uses the default options.
	TextBounds(text string, position mgl32.Vec2, opts *TextOptions) Bounds

	// Returns the size of the given text. Equivalent to the X2 and Y2
	// values of the text bounds at position (0, 0).
	MeasureString(text string, opts *TextOptions) mgl32.Vec2

	// Returns the positioned glyphs of the given text, including
	// entries for line breaks and unresolved codepoints.
	Glyphs(text string, position mgl32.Vec2, opts *TextOptions) []GlyphInfo

	// Draws the given text at the given position. The returned value
	// is the x coordinate where the pen ended.
	DrawText(renderer Renderer, text string, position mgl32.Vec2, clr color.RGBA, opts *TextOptions) (float32, error)
}

// Optional parameters for text operations. A nil *TextOptions is
// equivalent to the zero value, with a scale of (1, 1).
type TextOptions struct {
	// A zero scale is treated as (1, 1).
	Scale mgl32.Vec2

	// Rotation in radians around Origin.
	Rotation float32

	// Pivot for scaling and rotation, relative to the text position.
	Origin mgl32.Vec2

	CharacterSpacing float32
	LineSpacing float32
	TextStyle TextStyle
}

func (self *TextOptions) scale() mgl32.Vec2 {
	if self == nil || self.Scale == (mgl32.Vec2{}) { return mgl32.Vec2{1, 1} }
	return self.Scale
}

func (self *TextOptions) orDefault() TextOptions {
	if self == nil { return TextOptions{ Scale: mgl32.Vec2{1, 1} } }
	opts := *self
	opts.Scale = self.scale()
	return opts
}

// Axis-aligned text bounds.
type Bounds struct {
	X, Y, X2, Y2 float32
}

func (self Bounds) Width() float32 { return self.X2 - self.X }
func (self Bounds) Height() float32 { return self.Y2 - self.Y }

// Returns the bounds with all coordinates multiplied by the given scale.
func (self Bounds) Scale(scale mgl32.Vec2) Bounds {
	return Bounds{
		X: self.X*scale.X(), Y: self.Y*scale.Y(),
		X2: self.X2*scale.X(), Y2: self.Y2*scale.Y(),
	}
}

// Returns the bounds moved by the given offset.
func (self Bounds) Translate(offset mgl32.Vec2) Bounds {
	return Bounds{
		X: self.X + offset.X(), Y: self.Y + offset.Y(),
		X2: self.X2 + offset.X(), Y2: self.Y2 + offset.Y(),
	}
}

// A positioned glyph as returned by [Font].Glyphs().
type GlyphInfo struct {
	Index int // index of the codepoint in the text
	Codepoint rune
	Bounds image.Rectangle
	XAdvance int
}

// Renderer is the drawing capability provided by rendering backends.
type Renderer interface {
	// Returns the manager used to create and update atlas textures.
	TextureManager() atlas.TextureManager

	// Draws the src region of the texture. The transform maps
	// coordinates local to the region, from (0, 0) to (src.Dx(),
	// src.Dy()), to destination coordinates. The color is a tint
	// multiplied with the texture pixels.
	Draw(texture atlas.Texture, src image.Rectangle, transform mgl32.Mat3, clr color.RGBA)
}

// Builds the matrix p' = R(S(p - origin)) + position.
func buildTransform(position mgl32.Vec2, rotation float32, origin, scale mgl32.Vec2) mgl32.Mat3 {
	return mgl32.Translate2D(position.X(), position.Y()).
		Mul3(mgl32.HomogRotate2D(rotation)).
		Mul3(mgl32.Scale2D(scale.X(), scale.Y())).
		Mul3(mgl32.Translate2D(-origin.X(), -origin.Y()))
}

func transformPoint(transform mgl32.Mat3, x, y float32) mgl32.Vec2 {
	return transform.Mul3x1(mgl32.Vec2{x, y}.Vec3(1)).Vec2()
}
