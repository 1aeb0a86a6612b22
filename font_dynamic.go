package fontstash

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/cache"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

var _ Font = (*DynamicFont)(nil)

// A DynamicFont renders glyphs on demand from the sources of its
// [FontSystem] at a single size and style. Obtain dynamic fonts
// through [FontSystem.Font]() or [FontSystem.StyledFont]().
type DynamicFont struct {
	system *FontSystem
	size   fract.Unit
	renderSize fract.Unit // size times the resolution factor
	style  FontStyle
	lineHeight int
	glyphs *cache.GlyphCache
	metrics []font.Metrics // per source, at render size
}

func newDynamicFont(system *FontSystem, key fontKey, lineHeight int) *DynamicFont {
	factor := float64(system.config.resolutionFactor())
	return &DynamicFont{
		system: system,
		size: key.size,
		renderSize: fract.FromFloat64Up(key.size.ToFloat64()*factor),
		style: key.style,
		lineHeight: lineHeight,
		glyphs: cache.NewGlyphCache(),
	}
}

// Returns the system the font belongs to.
func (self *DynamicFont) System() *FontSystem { return self.system }

func (self *DynamicFont) Style() FontStyle { return self.style }

// Returns the quantized font size.
func (self *DynamicFont) Size() fract.Unit { return self.size }

// Satisfies the [Font] interface.
func (self *DynamicFont) FontSize() float32 { return self.size.ToFloat32() }

// Satisfies the [Font] interface. The line height is taken from the
// first source.
func (self *DynamicFont) LineHeight() int { return self.lineHeight }

// Returns the glyph cache of the font. Mostly useful for debugging.
func (self *DynamicFont) Cache() *cache.GlyphCache { return self.glyphs }

// Satisfies the [Font] interface.
func (self *DynamicFont) Glyph(codepoint rune) *cache.Glyph {
	glyph, _ := self.glyphFor(nil, codepoint)
	return glyph
}

// Satisfies the [Font] interface. Kerning is zero when disabled on the
// system or when the glyphs come from different sources.
func (self *DynamicFont) Kerning(prev, glyph *cache.Glyph) fract.Unit {
	if !self.system.useKerning || prev == nil || glyph == nil { return 0 }
	if prev.SourceIndex != glyph.SourceIndex { return 0 }

	value, found := self.glyphs.Kerning(prev.ID, glyph.ID)
	if found { return value }
	source := self.system.sources[glyph.SourceIndex]
	value, err := source.KernAdvance(prev.ID, glyph.ID, glyph.Size)
	if err != nil {
		tracer().Errorf("kerning %q-%q: %s", prev.Codepoint, glyph.Codepoint, err)
		value = 0
	}
	self.glyphs.StoreKerning(prev.ID, glyph.ID, value)
	return value
}

// Satisfies the [Font] interface.
func (self *DynamicFont) TextMetrics(text string) (ascent, lineHeight int) {
	ascent, lineHeight = self.renderMetrics(text)
	factor := self.resolutionFactor()
	if factor == 1 { return ascent, lineHeight }
	return int(float32(ascent)/factor), int(float32(lineHeight)/factor)
}

// Satisfies the [Font] interface.
func (self *DynamicFont) TextBounds(text string, position mgl32.Vec2, opts *TextOptions) Bounds {
	return textBounds(self, text, position, opts)
}

// Satisfies the [Font] interface.
func (self *DynamicFont) MeasureString(text string, opts *TextOptions) mgl32.Vec2 {
	bounds := textBounds(self, text, mgl32.Vec2{}, opts)
	return mgl32.Vec2{bounds.X2, bounds.Y2}
}

// Satisfies the [Font] interface.
func (self *DynamicFont) Glyphs(text string, position mgl32.Vec2, opts *TextOptions) []GlyphInfo {
	return layoutGlyphs(self, text, position, opts)
}

// Satisfies the [Font] interface. Glyphs not yet on an atlas are
// rasterized through the renderer's texture manager.
func (self *DynamicFont) DrawText(renderer Renderer, text string, position mgl32.Vec2, clr color.RGBA, opts *TextOptions) (float32, error) {
	return drawText(self, renderer, text, position, clr, opts)
}

// --- glyphProvider implementation ---

func (self *DynamicFont) glyphFor(manager atlas.TextureManager, codepoint rune) (*cache.Glyph, error) {
	glyph, err := self.renderedGlyph(manager, codepoint)
	if glyph != nil || err != nil { return glyph, err }
	defaultChar := self.system.defaultChar
	if defaultChar == NoDefaultCharacter || defaultChar == codepoint { return nil, nil }
	return self.renderedGlyph(manager, defaultChar)
}

func (self *DynamicFont) renderedGlyph(manager atlas.TextureManager, codepoint rune) (*cache.Glyph, error) {
	glyph := self.glyphWithoutBitmap(codepoint)
	if glyph == nil || manager == nil || glyph.Placed() { return glyph, nil }
	err := self.system.renderGlyph(manager, glyph, self.style)
	if err != nil { return nil, err }
	return glyph, nil
}

// Returns the glyph record for the codepoint, creating it if needed.
// Codepoints that can't be resolved are cached as misses.
func (self *DynamicFont) glyphWithoutBitmap(codepoint rune) *cache.Glyph {
	glyph, found := self.glyphs.Lookup(codepoint)
	if found { return glyph }

	id, sourceIndex, found := self.system.Resolve(codepoint)
	if !found {
		self.glyphs.Store(codepoint, nil)
		return nil
	}
	source := self.system.sources[sourceIndex]
	faux := fauxStyle(self.style, source)
	fauxSource, canFaux := source.(font.FauxSource)
	var metrics font.GlyphMetrics
	var err error
	if canFaux && !faux.IsZero() {
		metrics, err = fauxSource.FauxGlyphMetrics(id, self.renderSize, faux)
	} else {
		metrics, err = source.GlyphMetrics(id, self.renderSize)
	}
	if err != nil {
		tracer().Errorf("glyph metrics for %q on source #%d: %s", codepoint, sourceIndex, err)
		self.glyphs.Store(codepoint, nil)
		return nil
	}

	size := metrics.Bounds.Size()
	if !canFaux && faux.ExtraWidth > 0 { size.X += font.FauxBoldWidth }
	glyph = &cache.Glyph{
		Codepoint: codepoint,
		ID: id,
		SourceIndex: sourceIndex,
		Size: self.renderSize,
		RenderOffset: metrics.Bounds.Min,
		PixelSize: size,
		XAdvance: metrics.Advance,
	}
	self.glyphs.Store(codepoint, glyph)
	tracer().Debugf("glyph %q resolved on source #%d (size %s, box %v)", codepoint, sourceIndex, self.renderSize, glyph.RenderRect())
	return glyph
}

// Returns the vertical metrics of the given source at render size.
func (self *DynamicFont) sourceMetrics(sourceIndex int) font.Metrics {
	if len(self.metrics) != len(self.system.sources) {
		self.metrics = make([]font.Metrics, len(self.system.sources))
		for i, source := range self.system.sources {
			metrics, err := source.Metrics(self.renderSize)
			if err != nil {
				tracer().Errorf("metrics for source #%d: %s", i, err)
				continue
			}
			self.metrics[i] = metrics
		}
	}
	return self.metrics[sourceIndex]
}

func (self *DynamicFont) renderMetrics(text string) (ascent, lineHeight int) {
	for _, codepoint := range text {
		glyph, _ := self.glyphFor(nil, codepoint)
		if glyph == nil { continue }
		metrics := self.sourceMetrics(glyph.SourceIndex)
		return metrics.Ascent, metrics.LineHeight
	}
	return 0, 0
}

func (self *DynamicFont) renderLineHeight() int {
	return int(float32(self.lineHeight)*self.resolutionFactor())
}

func (self *DynamicFont) resolutionFactor() float32 {
	return self.system.config.resolutionFactor()
}

func (self *DynamicFont) baselineOffset(ascent int) int { return ascent }

func (self *DynamicFont) textStyleThickness() int {
	return self.system.config.TextStyleLineHeight
}

func (self *DynamicFont) whiteTexture(manager atlas.TextureManager) (atlas.Texture, error) {
	return self.system.white.get(manager)
}

// Returns the texture region where the glyph for the given codepoint
// is placed, rasterizing it if needed. Mostly useful for debugging.
func (self *DynamicFont) GlyphRegion(manager atlas.TextureManager, codepoint rune) (atlas.Texture, image.Rectangle, error) {
	glyph, err := self.glyphFor(manager, codepoint)
	if err != nil || glyph == nil || !glyph.Placed() { return nil, image.Rectangle{}, err }
	return glyph.Texture, glyph.TextureRect, nil
}
