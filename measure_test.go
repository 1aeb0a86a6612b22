package fontstash

import "image"
import "image/color"
import "math"
import "strings"
import "testing"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"

func TestMeasureString(t *testing.T) {
	system := newTestSystem(DefaultConfig(), &fakeSource{})
	font, _ := system.Font(32)

	size := font.MeasureString("First line.\nSecond line.", nil)
	if size != (mgl32.Vec2{144, 56}) { t.Fatalf("expected (144, 56), got %v", size) }

	size = font.MeasureString("abc", &TextOptions{ CharacterSpacing: 2 })
	if size.X() != 40 { t.Fatalf("expected width 40 with spacing, got %f", size.X()) }

	size = font.MeasureString("a\nb", &TextOptions{ LineSpacing: 8 })
	if size.Y() != 64 { t.Fatalf("expected height 64 with line spacing, got %f", size.Y()) }

	size = font.MeasureString("abc", &TextOptions{ Scale: mgl32.Vec2{2, 0.5} })
	if size != (mgl32.Vec2{72, 12}) { t.Fatalf("expected (72, 12) when scaled, got %v", size) }

	if font.MeasureString("", nil) != (mgl32.Vec2{}) { t.Fatal("expected zero size for empty text") }

	ascent, lineHeight := font.TextMetrics("abc")
	if ascent != 24 || lineHeight != 32 { t.Fatalf("unexpected metrics %d, %d", ascent, lineHeight) }
}

func TestTextBounds(t *testing.T) {
	system := newTestSystem(DefaultConfig(), &fakeSource{})
	font, _ := system.Font(32)

	bounds := font.TextBounds("ab", mgl32.Vec2{10, 5}, nil)
	expected := Bounds{ X: 10, Y: 9, X2: 34, Y2: 29 }
	if bounds != expected { t.Fatalf("expected %+v, got %+v", expected, bounds) }
	if bounds.Width() != 24 || bounds.Height() != 20 { t.Fatalf("unexpected size %fx%f", bounds.Width(), bounds.Height()) }
}

func TestResolutionFactor(t *testing.T) {
	config := DefaultConfig()
	config.ResolutionFactor = 2
	system := newTestSystem(config, &fakeSource{})
	font, _ := system.Font(32)

	glyph := font.Glyph('a')
	if glyph.PixelSize != image.Pt(20, 40) { t.Fatalf("expected glyph rendered at double size, got %v", glyph.PixelSize) }
	size := font.MeasureString("ab", nil)
	if size.X() != 24 { t.Fatalf("expected width 24 at 1x, got %f", size.X()) }
	ascent, lineHeight := font.TextMetrics("ab")
	if ascent != 24 || lineHeight != 32 { t.Fatalf("unexpected metrics %d, %d", ascent, lineHeight) }
}

func TestGlyphs(t *testing.T) {
	system := newTestSystem(DefaultConfig(), &fakeSource{})
	font, _ := system.Font(32)

	glyphs := font.Glyphs("ab\nc", mgl32.Vec2{}, nil)
	if len(glyphs) != 4 { t.Fatalf("expected 4 glyphs, got %d", len(glyphs)) }
	expected := []image.Rectangle{
		image.Rect(1, 4, 11, 24),
		image.Rect(13, 4, 23, 24),
		image.Rect(24, -8, 24, 24), // line break
		image.Rect(1, 36, 11, 56),
	}
	for i, glyph := range glyphs {
		if glyph.Index != i { t.Fatalf("glyph #%d has index %d", i, glyph.Index) }
		if glyph.Bounds != expected[i] { t.Fatalf("glyph #%d: expected %v, got %v", i, expected[i], glyph.Bounds) }
	}
	if glyphs[2].Codepoint != '\n' || glyphs[2].XAdvance != 0 { t.Fatal("unexpected line break entry") }
	if glyphs[0].XAdvance != 12 { t.Fatalf("expected advance 12, got %d", glyphs[0].XAdvance) }

	scaled := font.Glyphs("a", mgl32.Vec2{100, 100}, &TextOptions{ Scale: mgl32.Vec2{2, 2} })
	if scaled[0].Bounds != image.Rect(102, 108, 122, 148) { t.Fatalf("unexpected scaled bounds %v", scaled[0].Bounds) }
	if scaled[0].XAdvance != 24 { t.Fatalf("expected scaled advance 24, got %d", scaled[0].XAdvance) }

	rotated := font.Glyphs("a", mgl32.Vec2{}, &TextOptions{ Rotation: math.Pi/2 })
	topLeft := rotated[0].Bounds.Min
	if topLeft.X > -3 || topLeft.X < -5 || topLeft.Y < 0 || topLeft.Y > 2 {
		t.Fatalf("unexpected rotated position %v", topLeft)
	}
}

func TestDrawText(t *testing.T) {
	system := newTestSystem(DefaultConfig(), &fakeSource{})
	font, _ := system.Font(32)
	renderer := &testRenderer{}
	tint := color.RGBA{255, 0, 0, 255}

	endX, err := font.DrawText(renderer, "a b", mgl32.Vec2{10, 20}, tint, nil)
	if err != nil { t.Fatal(err) }
	if endX != 46 { t.Fatalf("expected pen to end at 46, got %f", endX) }
	if len(renderer.draws) != 2 { t.Fatalf("expected 2 draws (spaces are skipped), got %d", len(renderer.draws)) }

	draw := renderer.draws[1]
	if draw.clr != tint { t.Fatal("unexpected draw color") }
	origin := transformPoint(draw.transform, 0, 0)
	if origin != (mgl32.Vec2{10 + 24 + 1, 20 + 24 - 20}) { t.Fatalf("unexpected glyph origin %v", origin) }
	if draw.src.Size() != image.Pt(10, 20) { t.Fatalf("unexpected source size %v", draw.src.Size()) }

	// underline adds a bar drawn with the white texture
	renderer.draws = renderer.draws[:0]
	_, err = font.DrawText(renderer, "ab\ncd", mgl32.Vec2{}, tint, &TextOptions{ TextStyle: Underline })
	if err != nil { t.Fatal(err) }
	if len(renderer.draws) != 6 { t.Fatalf("expected 4 glyphs and 2 bars, got %d draws", len(renderer.draws)) }
	bar := renderer.draws[2]
	white := bar.texture.(*image.RGBA)
	if white.Bounds().Size() != image.Pt(1, 1) || white.RGBAAt(0, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Fatal("expected bar drawn with the white texture")
	}
	barStart := transformPoint(bar.transform, 0, 0)
	barEnd := transformPoint(bar.transform, 1, 1)
	if barStart != (mgl32.Vec2{0, 25}) || barEnd != (mgl32.Vec2{24, 27}) {
		t.Fatalf("unexpected bar from %v to %v", barStart, barEnd)
	}
	if renderer.manager.created != 2 { t.Fatalf("expected atlas and white textures, got %d", renderer.manager.created) }
}

func TestStaticFont(t *testing.T) {
	texture := image.NewRGBA(image.Rect(0, 0, 64, 64))
	font := NewStaticFont(16, 20, texture)
	font.AddGlyph('a', image.Rect(0, 0, 8, 12), image.Pt(0, 4), 9)
	font.AddGlyph('b', image.Rect(8, 0, 16, 14), image.Pt(0, 2), 9)
	font.SetKerning('a', 'b', -1)

	size := font.MeasureString("ab", nil)
	if size != (mgl32.Vec2{17, 16}) { t.Fatalf("expected (17, 16), got %v", size) }
	if font.Glyph('z') != nil { t.Fatal("expected no glyph for 'z'") }
	font.SetDefaultCharacter('a')
	if font.Glyph('z') == nil { t.Fatal("expected default glyph for 'z'") }

	renderer := &testRenderer{}
	_, err := font.DrawText(renderer, "ab", mgl32.Vec2{}, color.RGBA{255, 255, 255, 255}, nil)
	if err != nil { t.Fatal(err) }
	if len(renderer.draws) != 2 || renderer.draws[1].texture != atlas.Texture(texture) {
		t.Fatal("expected draws from the static texture")
	}
	if renderer.draws[1].src != image.Rect(8, 0, 16, 14) { t.Fatalf("unexpected source rect %v", renderer.draws[1].src) }
}

const testBMFont = `info face="Test Font" size=-16 bold=0 italic=0
common lineHeight=20 base=16 scaleW=64 scaleH=64 pages=2 packed=0
page id=0 file="test_0.png"
page id=1 file="test_1.png"
chars count=3
char id=32   x=0  y=0  width=0  height=0  xoffset=0  yoffset=16 xadvance=5 page=0 chnl=15
char id=65   x=0  y=0  width=10 height=14 xoffset=0  yoffset=2  xadvance=11 page=0 chnl=15
char id=86   x=10 y=0  width=10 height=14 xoffset=0  yoffset=2  xadvance=11 page=1 chnl=15
kernings count=1
kerning first=65 second=86 amount=-2
`

func TestLoadBMFont(t *testing.T) {
	pages := make(map[string]*image.RGBA)
	loader := func(file string) (atlas.Texture, error) {
		pages[file] = image.NewRGBA(image.Rect(0, 0, 64, 64))
		return pages[file], nil
	}
	font, err := LoadBMFont(strings.NewReader(testBMFont), loader)
	if err != nil { t.Fatal(err) }
	if font.FontSize() != 16 || font.LineHeight() != 20 { t.Fatalf("unexpected size %f / line height %d", font.FontSize(), font.LineHeight()) }
	if len(pages) != 2 { t.Fatalf("expected 2 pages, got %d", len(pages)) }

	size := font.MeasureString("AV A", nil)
	if size.X() != 36 { t.Fatalf("expected width 36, got %f", size.X()) }
	if font.Glyph('V').Texture != atlas.Texture(pages["test_1.png"]) { t.Fatal("expected 'V' on the second page") }

	_, err = LoadBMFont(strings.NewReader("info size=12\n"), loader)
	if err == nil { t.Fatal("expected error for descriptor without common line") }
	_, err = LoadBMFont(strings.NewReader("common lineHeight=x\n"), loader)
	if err == nil { t.Fatal("expected error for malformed attribute") }
}
