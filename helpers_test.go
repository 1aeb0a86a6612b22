package fontstash

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

// A monospace source where every glyph advances 12px at size 32 and
// lines are 32px high. Glyph boxes are 10x20, sitting on the baseline
// one pixel after the pen. Spaces have no box.
type fakeSource struct {
	runes string // available codepoints, all if empty
	bold bool
	kerning map[[2]rune]int // in pixels at size 32

	lookups int
	kernCalls int
	rasterized int
}

func (self *fakeSource) has(codepoint rune) bool {
	if self.runes == "" { return true }
	for _, r := range self.runes {
		if r == codepoint { return true }
	}
	return false
}

func (self *fakeSource) GlyphID(codepoint rune) (font.GlyphID, bool) {
	self.lookups += 1
	if !self.has(codepoint) { return 0, false }
	return font.GlyphID(codepoint), true
}

func scaled(value int, size fract.Unit) int {
	return int(float64(value)*size.ToFloat64()/32.0)
}

func (self *fakeSource) Metrics(size fract.Unit) (font.Metrics, error) {
	return font.Metrics{
		Ascent: scaled(24, size),
		Descent: -scaled(8, size),
		LineHeight: scaled(32, size),
	}, nil
}

func (self *fakeSource) GlyphMetrics(id font.GlyphID, size fract.Unit) (font.GlyphMetrics, error) {
	metrics := font.GlyphMetrics{ Advance: fract.FromInt(scaled(12, size)) }
	if rune(id) != ' ' {
		metrics.Bounds = image.Rect(1, -scaled(20, size), 1 + scaled(10, size), 0)
	}
	return metrics, nil
}

func (self *fakeSource) KernAdvance(first, second font.GlyphID, size fract.Unit) (fract.Unit, error) {
	self.kernCalls += 1
	return fract.FromInt(scaled(self.kerning[[2]rune{rune(first), rune(second)}], size)), nil
}

func (self *fakeSource) Rasterize(id font.GlyphID, size fract.Unit, dst []byte, width, height, stride int) error {
	self.rasterized += 1
	for y := 0; y < height; y++ {
		for x := 0; x < width - 1; x++ { // last column stays empty
			copy(dst[y*stride + x*4:], []byte{255, 255, 255, 255})
		}
	}
	return nil
}

func (self *fakeSource) HasBold() bool { return self.bold }

type testManager struct {
	created int
}

func (self *testManager) CreateTexture(width, height int) (atlas.Texture, error) {
	self.created += 1
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func (self *testManager) UploadRegion(texture atlas.Texture, region image.Rectangle, pixels []byte) error {
	rgba := texture.(*image.RGBA)
	stride := region.Dx()*4
	for y := 0; y < region.Dy(); y++ {
		copy(rgba.Pix[rgba.PixOffset(region.Min.X, region.Min.Y + y):], pixels[y*stride : (y + 1)*stride])
	}
	return nil
}

type drawCall struct {
	texture atlas.Texture
	src image.Rectangle
	transform mgl32.Mat3
	clr color.RGBA
}

type testRenderer struct {
	manager testManager
	draws []drawCall
}

func (self *testRenderer) TextureManager() atlas.TextureManager { return &self.manager }

func (self *testRenderer) Draw(texture atlas.Texture, src image.Rectangle, transform mgl32.Mat3, clr color.RGBA) {
	self.draws = append(self.draws, drawCall{ texture, src, transform, clr })
}

func newTestSystem(config Config, sources ...font.Source) *FontSystem {
	system, err := NewFontSystem(config)
	if err != nil { panic(err) }
	for _, source := range sources { system.AddSource(source) }
	return system
}
