package fontstash

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/cache"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

var _ Font = (*StaticFont)(nil)

// A StaticFont draws glyphs from a prebuilt texture, like the ones
// generated by bitmap font tools. Glyph offsets are relative to the
// top of the line. See [LoadBMFont]().
type StaticFont struct {
	size float32
	lineHeight int
	base int
	texture atlas.Texture
	glyphs *cache.GlyphCache
	defaultChar rune
	useKerning bool
	styleThickness int
	white whiteTexture
}

// Creates an empty static font. Glyphs added without an explicit
// texture use the given one.
func NewStaticFont(size float32, lineHeight int, texture atlas.Texture) *StaticFont {
	return &StaticFont{
		size: size,
		lineHeight: lineHeight,
		base: lineHeight,
		texture: texture,
		glyphs: cache.NewGlyphCache(),
		defaultChar: NoDefaultCharacter,
		useKerning: true,
		styleThickness: DefaultConfig().TextStyleLineHeight,
	}
}

// Adds a glyph located at the given region of the font texture. The
// offset goes from the pen position at the top of the line to the
// top-left corner of the glyph.
func (self *StaticFont) AddGlyph(codepoint rune, region image.Rectangle, offset image.Point, xAdvance int) {
	self.AddGlyphOn(self.texture, codepoint, region, offset, xAdvance)
}

// Like [StaticFont.AddGlyph](), but for glyphs placed on a texture
// other than the main one.
func (self *StaticFont) AddGlyphOn(texture atlas.Texture, codepoint rune, region image.Rectangle, offset image.Point, xAdvance int) {
	self.glyphs.Store(codepoint, &cache.Glyph{
		Codepoint: codepoint,
		ID: font.GlyphID(codepoint),
		Size: fract.FromFloat64Up(float64(self.size)),
		RenderOffset: offset,
		PixelSize: region.Size(),
		XAdvance: fract.FromInt(xAdvance),
		Texture: texture,
		TextureRect: region,
	})
}

// Sets the kerning between two codepoints, in pixels.
func (self *StaticFont) SetKerning(first, second rune, amount int) {
	self.glyphs.StoreKerning(font.GlyphID(first), font.GlyphID(second), fract.FromInt(amount))
}

func (self *StaticFont) SetUseKerning(useKerning bool) { self.useKerning = useKerning }

// Sets the codepoint used for codepoints without a glyph, or
// [NoDefaultCharacter], which is the default.
func (self *StaticFont) SetDefaultCharacter(codepoint rune) { self.defaultChar = codepoint }

// Sets the thickness of underline and strikethrough bars.
func (self *StaticFont) SetTextStyleLineHeight(thickness int) { self.styleThickness = thickness }

// Sets the distance from the top of the line to the baseline, used
// to place underlines. Defaults to the line height.
func (self *StaticFont) SetBase(base int) { self.base = base }

// Returns the main texture of the font.
func (self *StaticFont) Texture() atlas.Texture { return self.texture }

// Satisfies the [Font] interface.
func (self *StaticFont) FontSize() float32 { return self.size }

// Satisfies the [Font] interface.
func (self *StaticFont) LineHeight() int { return self.lineHeight }

// Satisfies the [Font] interface. Static fonts measure from the top of
// the line, so the ascent is always zero.
func (self *StaticFont) TextMetrics(text string) (ascent, lineHeight int) {
	return 0, self.lineHeight
}

// Satisfies the [Font] interface.
func (self *StaticFont) Glyph(codepoint rune) *cache.Glyph {
	glyph, _ := self.glyphFor(nil, codepoint)
	return glyph
}

// Satisfies the [Font] interface.
func (self *StaticFont) Kerning(prev, glyph *cache.Glyph) fract.Unit {
	if !self.useKerning || prev == nil || glyph == nil { return 0 }
	value, _ := self.glyphs.Kerning(prev.ID, glyph.ID)
	return value
}

// Satisfies the [Font] interface.
func (self *StaticFont) TextBounds(text string, position mgl32.Vec2, opts *TextOptions) Bounds {
	return textBounds(self, text, position, opts)
}

// Satisfies the [Font] interface.
func (self *StaticFont) MeasureString(text string, opts *TextOptions) mgl32.Vec2 {
	bounds := textBounds(self, text, mgl32.Vec2{}, opts)
	return mgl32.Vec2{bounds.X2, bounds.Y2}
}

// Satisfies the [Font] interface.
func (self *StaticFont) Glyphs(text string, position mgl32.Vec2, opts *TextOptions) []GlyphInfo {
	return layoutGlyphs(self, text, position, opts)
}

// Satisfies the [Font] interface.
func (self *StaticFont) DrawText(renderer Renderer, text string, position mgl32.Vec2, clr color.RGBA, opts *TextOptions) (float32, error) {
	return drawText(self, renderer, text, position, clr, opts)
}

// --- glyphProvider implementation ---

func (self *StaticFont) glyphFor(_ atlas.TextureManager, codepoint rune) (*cache.Glyph, error) {
	glyph, _ := self.glyphs.Lookup(codepoint)
	if glyph != nil || self.defaultChar == NoDefaultCharacter { return glyph, nil }
	glyph, _ = self.glyphs.Lookup(self.defaultChar)
	return glyph, nil
}

func (self *StaticFont) renderMetrics(string) (ascent, lineHeight int) {
	return 0, self.lineHeight
}

func (self *StaticFont) renderLineHeight() int { return self.lineHeight }
func (self *StaticFont) resolutionFactor() float32 { return 1 }
func (self *StaticFont) baselineOffset(int) int { return self.base }
func (self *StaticFont) textStyleThickness() int { return self.styleThickness }

func (self *StaticFont) whiteTexture(manager atlas.TextureManager) (atlas.Texture, error) {
	return self.white.get(manager)
}
