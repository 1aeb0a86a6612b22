package fontstash

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/cache"
import "github.com/tinne26/fontstash/fract"

// Operations shared by dynamic and static fonts. Coordinates used while
// traversing are render coordinates: pixels at the font size times the
// resolution factor. Results are scaled down by the resolution factor.
type glyphProvider interface {
	// Returns the glyph for the codepoint, rasterized through the manager
	// unless the manager is nil. Only rendering problems are errors.
	glyphFor(manager atlas.TextureManager, codepoint rune) (*cache.Glyph, error)
	Kerning(prev, glyph *cache.Glyph) fract.Unit
	renderMetrics(text string) (ascent, lineHeight int)
	renderLineHeight() int
	resolutionFactor() float32
	// distance from the top of the line to the baseline, given the
	// ascent used for the current text
	baselineOffset(ascent int) int
	textStyleThickness() int
	whiteTexture(manager atlas.TextureManager) (atlas.Texture, error)
}

func renderSpacing(provider glyphProvider, spacing float32) fract.Unit {
	return fract.FromFloat64Up(float64(spacing*provider.resolutionFactor()))
}

func textBounds(provider glyphProvider, text string, position mgl32.Vec2, opts *TextOptions) Bounds {
	if text == "" { return Bounds{ X: position.X(), Y: position.Y(), X2: position.X(), Y2: position.Y() } }
	options := opts.orDefault()
	charSpacing := renderSpacing(provider, options.CharacterSpacing)
	lineSpacing := renderSpacing(provider, options.LineSpacing)
	ascent, lineHeight := provider.renderMetrics(text)

	var x, y fract.Unit = 0, fract.FromInt(ascent)
	minX, maxX, minY, maxY := x, x, y, y
	var prev *cache.Glyph
	for _, codepoint := range text {
		if codepoint == '\n' {
			x  = 0
			y += fract.FromInt(lineHeight) + lineSpacing
			prev = nil
			continue
		}

		glyph, _ := provider.glyphFor(nil, codepoint)
		if glyph == nil { continue }
		if prev != nil {
			x += charSpacing + provider.Kerning(prev, glyph)
		}

		minX = minX.Min(x + fract.FromInt(glyph.RenderOffset.X))
		x += glyph.XAdvance
		maxX = maxX.Max(x)
		y0 := y + fract.FromInt(glyph.RenderOffset.Y)
		minY = minY.Min(y0)
		maxY = maxY.Max(y0 + fract.FromInt(glyph.PixelSize.Y))
		prev = glyph
	}

	bounds := Bounds{ X: minX.ToFloat32(), Y: minY.ToFloat32(), X2: maxX.ToFloat32(), Y2: maxY.ToFloat32() }
	factor := provider.resolutionFactor()
	scale := options.Scale.Mul(1/factor)
	return bounds.Scale(scale).Translate(position)
}

func layoutGlyphs(provider glyphProvider, text string, position mgl32.Vec2, opts *TextOptions) []GlyphInfo {
	if text == "" { return nil }
	options := opts.orDefault()
	factor := provider.resolutionFactor()
	scale := options.Scale.Mul(1/factor)
	transform := buildTransform(position, options.Rotation, options.Origin.Mul(factor), scale)
	charSpacing := renderSpacing(provider, options.CharacterSpacing)
	lineSpacing := renderSpacing(provider, options.LineSpacing)
	ascent, lineHeight := provider.renderMetrics(text)
	fontLineHeight := provider.renderLineHeight()

	result := make([]GlyphInfo, 0, len(text))
	var x, y fract.Unit = 0, fract.FromInt(ascent)
	var prev *cache.Glyph
	index := 0
	for _, codepoint := range text {
		rect := image.Rect(x.ToIntFloor(), y.ToIntFloor() - fontLineHeight, x.ToIntFloor(), y.ToIntFloor())
		var xAdvance fract.Unit
		if codepoint == '\n' {
			x  = 0
			y += fract.FromInt(lineHeight) + lineSpacing
			prev = nil
		} else {
			glyph, _ := provider.glyphFor(nil, codepoint)
			if glyph != nil {
				if prev != nil {
					x += charSpacing + provider.Kerning(prev, glyph)
				}
				rect = glyph.RenderRect().Add(image.Pt(x.ToIntFloor(), y.ToIntFloor()))
				xAdvance = glyph.XAdvance
				x += xAdvance
				prev = glyph
			}
		}

		topLeft := transformPoint(transform, float32(rect.Min.X), float32(rect.Min.Y))
		width  := float32(rect.Dx())*scale.X()
		height := float32(rect.Dy())*scale.Y()
		minX, minY := int(topLeft.X()), int(topLeft.Y())
		result = append(result, GlyphInfo{
			Index: index,
			Codepoint: codepoint,
			Bounds: image.Rect(minX, minY, minX + int(width), minY + int(height)),
			XAdvance: int(xAdvance.ToFloat32()*scale.X()),
		})
		index += 1
	}
	return result
}

func drawText(provider glyphProvider, renderer Renderer, text string, position mgl32.Vec2, clr color.RGBA, opts *TextOptions) (float32, error) {
	if text == "" { return position.X(), nil }
	options := opts.orDefault()
	factor := provider.resolutionFactor()
	scale := options.Scale.Mul(1/factor)
	transform := buildTransform(position, options.Rotation, options.Origin.Mul(factor), scale)
	charSpacing := renderSpacing(provider, options.CharacterSpacing)
	lineSpacing := renderSpacing(provider, options.LineSpacing)
	ascent, lineHeight := provider.renderMetrics(text)
	manager := renderer.TextureManager()

	var x, y fract.Unit = 0, fract.FromInt(ascent)
	var prev *cache.Glyph
	for _, codepoint := range text {
		if codepoint == '\n' {
			err := drawStyleBar(provider, renderer, transform, options.TextStyle, x, y, ascent, lineHeight, clr)
			if err != nil { return 0, err }
			x  = 0
			y += fract.FromInt(lineHeight) + lineSpacing
			prev = nil
			continue
		}

		glyph, err := provider.glyphFor(manager, codepoint)
		if err != nil { return 0, err }
		if glyph == nil { continue }
		if prev != nil {
			x += charSpacing + provider.Kerning(prev, glyph)
		}
		if glyph.Placed() {
			offsetX := x.ToFloat32() + float32(glyph.RenderOffset.X)
			offsetY := y.ToFloat32() + float32(glyph.RenderOffset.Y)
			glyphTransform := transform.Mul3(mgl32.Translate2D(offsetX, offsetY))
			renderer.Draw(glyph.Texture, glyph.TextureRect, glyphTransform, clr)
		}
		x += glyph.XAdvance
		prev = glyph
	}

	err := drawStyleBar(provider, renderer, transform, options.TextStyle, x, y, ascent, lineHeight, clr)
	if err != nil { return 0, err }
	return position.X() + x.ToFloat32()*scale.X(), nil
}

// Draws the underline or strikethrough bar for a line going from
// x = 0 to the given x, with the given baseline.
func drawStyleBar(provider glyphProvider, renderer Renderer, transform mgl32.Mat3, style TextStyle, x, baseline fract.Unit, ascent, lineHeight int, clr color.RGBA) error {
	if style == NoTextStyle || x <= 0 { return nil }
	thickness := float32(provider.textStyleThickness())*provider.resolutionFactor()
	if thickness <= 0 { return nil }

	lineTop := baseline.ToFloat32() - float32(ascent)
	var barY float32
	switch style {
	case Underline:
		barY = lineTop + float32(provider.baselineOffset(ascent)) + provider.resolutionFactor()
	case Strikethrough:
		barY = lineTop + float32(lineHeight)/2 - thickness/2
	default:
		return nil
	}

	white, err := provider.whiteTexture(renderer.TextureManager())
	if err != nil { return err }
	barTransform := transform.Mul3(mgl32.Translate2D(0, barY)).Mul3(mgl32.Scale2D(x.ToFloat32(), thickness))
	renderer.Draw(white, image.Rect(0, 0, 1, 1), barTransform, clr)
	return nil
}
