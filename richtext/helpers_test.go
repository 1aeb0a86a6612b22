package richtext

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

// Monospace source with every glyph advancing 12px at size 32, lines
// 32px high and a 24px ascent.
type monoSource struct{}

func scaled(value int, size fract.Unit) int {
	return int(float64(value)*size.ToFloat64()/32.0)
}

func (monoSource) GlyphID(codepoint rune) (font.GlyphID, bool) {
	return font.GlyphID(codepoint), true
}

func (monoSource) Metrics(size fract.Unit) (font.Metrics, error) {
	return font.Metrics{ Ascent: scaled(24, size), Descent: -scaled(8, size), LineHeight: scaled(32, size) }, nil
}

func (monoSource) GlyphMetrics(id font.GlyphID, size fract.Unit) (font.GlyphMetrics, error) {
	metrics := font.GlyphMetrics{ Advance: fract.FromInt(scaled(12, size)) }
	if rune(id) != ' ' {
		metrics.Bounds = image.Rect(1, -scaled(20, size), 1 + scaled(10, size), 0)
	}
	return metrics, nil
}

func (monoSource) KernAdvance(font.GlyphID, font.GlyphID, fract.Unit) (fract.Unit, error) {
	return 0, nil
}

func (monoSource) Rasterize(_ font.GlyphID, _ fract.Unit, dst []byte, width, height, stride int) error {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			copy(dst[y*stride + x*4:], []byte{255, 255, 255, 255})
		}
	}
	return nil
}

func (monoSource) HasBold() bool { return false }

func newTestSystem() *fontstash.FontSystem {
	system, err := fontstash.NewFontSystem(fontstash.DefaultConfig())
	if err != nil { panic(err) }
	system.AddSource(monoSource{})
	return system
}

func newTestFont(size float32) fontstash.Font {
	dynFont, err := newTestSystem().Font(size)
	if err != nil { panic(err) }
	return dynFont
}

type testManager struct{}

func (testManager) CreateTexture(width, height int) (atlas.Texture, error) {
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func (testManager) UploadRegion(atlas.Texture, image.Rectangle, []byte) error { return nil }

type drawCall struct {
	texture atlas.Texture
	src image.Rectangle
	transform mgl32.Mat3
	clr color.RGBA
}

type testRenderer struct {
	draws []drawCall
}

func (self *testRenderer) TextureManager() atlas.TextureManager { return testManager{} }

func (self *testRenderer) Draw(texture atlas.Texture, src image.Rectangle, transform mgl32.Mat3, clr color.RGBA) {
	self.draws = append(self.draws, drawCall{ texture, src, transform, clr })
}

// position where a draw call places the top-left corner of its source
func (self drawCall) origin() mgl32.Vec2 {
	return self.transform.Mul3x1(mgl32.Vec3{0, 0, 1}).Vec2()
}

type testImage struct {
	size image.Point
	drawnAt []mgl32.Vec2
}

func (self *testImage) Size() image.Point { return self.size }

func (self *testImage) Draw(_ fontstash.Renderer, position mgl32.Vec2, _ color.RGBA) {
	self.drawnAt = append(self.drawnAt, position)
}
