package gotext

import "testing"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"

import gtfont "github.com/go-text/typesetting/font"
import "github.com/go-text/typesetting/font/opentype/tables"

import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

func TestSourceMatchesSFNT(t *testing.T) {
	source, err := Parse(goregular.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }
	reference, err := font.NewSFNT(goregular.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }

	size := fract.FromInt(32)
	id, found := source.GlyphID('A')
	if !found { t.Fatal("expected glyph for 'A'") }
	refID, _ := reference.GlyphID('A')
	if id != refID { t.Fatalf("glyph ids differ: %d vs %d", id, refID) }

	metrics, err := source.GlyphMetrics(id, size)
	if err != nil { t.Fatal(err) }
	refMetrics, err := reference.GlyphMetrics(refID, size)
	if err != nil { t.Fatal(err) }
	if abs(int(metrics.Advance - refMetrics.Advance)) > 2 {
		t.Fatalf("advance %s vs %s", metrics.Advance, refMetrics.Advance)
	}
	if abs(metrics.Bounds.Dx() - refMetrics.Bounds.Dx()) > 1 || abs(metrics.Bounds.Dy() - refMetrics.Bounds.Dy()) > 1 {
		t.Fatalf("bounds %v vs %v", metrics.Bounds, refMetrics.Bounds)
	}

	vmetrics, err := source.Metrics(size)
	if err != nil { t.Fatal(err) }
	if vmetrics.Ascent <= 0 || vmetrics.Descent >= 0 || vmetrics.LineHeight < vmetrics.Ascent {
		t.Fatalf("unexpected metrics %+v", vmetrics)
	}

	kern, err := source.KernAdvance(id, id, size)
	if err != nil || kern != 0 { t.Fatalf("expected zero kerning, got %s (%v)", kern, err) }
}

func TestSourceKerning(t *testing.T) {
	source, err := Parse(goregular.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }
	size := fract.FromInt(32)
	a, _ := source.GlyphID('A')
	v, _ := source.GlyphID('V')

	// Go Regular has neither GPOS nor kern tables
	kern, err := source.KernAdvance(a, v, size)
	if err != nil || kern != 0 { t.Fatalf("expected zero kerning, got %s (%v)", kern, err) }

	source.face.Kern = gtfont.Kernx{
		{ Data: gtfont.Kern0{ { Left: tables.GlyphID(a), Right: tables.GlyphID(v), Value: -128 } } },
	}
	kern, err = source.KernAdvance(a, v, size)
	if err != nil { t.Fatal(err) }
	if kern != fract.FromInt(-2) { t.Fatalf("expected -128/2048 units at 32px to be -2px, got %s", kern) }
	kern, _ = source.KernAdvance(v, a, size)
	if kern != 0 { t.Fatalf("kerning must be order sensitive, got %s for VA", kern) }
}

func TestSourceFaux(t *testing.T) {
	source, err := Parse(goregular.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }
	if source.HasItalic() { t.Fatal("regular font reported as italic") }
	size := fract.FromInt(32)
	id, _ := source.GlyphID('l')
	plain, err := source.GlyphMetrics(id, size)
	if err != nil { t.Fatal(err) }

	bold, err := source.FauxGlyphMetrics(id, size, font.Faux{ ExtraWidth: font.FauxBoldWidth })
	if err != nil { t.Fatal(err) }
	if bold.Bounds.Dx() != plain.Bounds.Dx() + 1 || bold.Advance != plain.Advance {
		t.Fatalf("faux bold bounds %v vs %v", bold.Bounds, plain.Bounds)
	}

	oblique, err := source.FauxGlyphMetrics(id, size, font.Faux{ Skew: font.FauxObliqueSkew })
	if err != nil { t.Fatal(err) }
	if oblique.Bounds.Dx() < plain.Bounds.Dx() + 4 || oblique.Bounds.Dy() != plain.Bounds.Dy() {
		t.Fatalf("oblique bounds %v vs %v", oblique.Bounds, plain.Bounds)
	}

	width, height := oblique.Bounds.Dx(), oblique.Bounds.Dy()
	pixels := make([]byte, width*height*4)
	err = source.RasterizeFaux(id, size, font.Faux{ Skew: font.FauxObliqueSkew }, pixels, width, height, width*4)
	if err != nil { t.Fatal(err) }
	topRight := (width - 1)*4 + 3
	bottomRight := (height - 1)*width*4 + (width - 1)*4 + 3
	if pixels[topRight] == 0 && pixels[topRight - 4] == 0 { t.Fatal("expected the top of 'l' to lean right") }
	if pixels[bottomRight] != 0 { t.Fatal("expected the bottom right corner to stay empty") }
}

func TestSourceRasterize(t *testing.T) {
	source, err := Parse(goregular.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }
	size := fract.FromInt(24)
	id, _ := source.GlyphID('H')
	metrics, err := source.GlyphMetrics(id, size)
	if err != nil { t.Fatal(err) }

	width, height := metrics.Bounds.Dx(), metrics.Bounds.Dy()
	pixels := make([]byte, width*height*4)
	err = source.Rasterize(id, size, pixels, width, height, width*4)
	if err != nil { t.Fatal(err) }
	var covered int
	for i := 3; i < len(pixels); i += 4 {
		if pixels[i] > 0 { covered += 1 }
	}
	if covered == 0 { t.Fatal("expected some coverage for 'H'") }

	space, _ := source.GlyphID(' ')
	metrics, err = source.GlyphMetrics(space, size)
	if err != nil { t.Fatal(err) }
	if !metrics.Bounds.Empty() { t.Fatalf("expected empty bounds for space, got %v", metrics.Bounds) }
}

func TestSourceBold(t *testing.T) {
	regular, err := Parse(goregular.TTF)
	if err != nil { t.Fatal(err) }
	bold, err := Parse(gobold.TTF)
	if err != nil { t.Fatal(err) }
	if regular.HasBold() { t.Fatal("regular font reported as bold") }
	if !bold.HasBold() { t.Fatal("bold font not reported as bold") }
	if regular.Family() == "" { t.Fatal("expected family name") }

	_, err = Parse([]byte("not a font"))
	if err == nil { t.Fatal("expected parse error") }
}

func abs(x int) int {
	if x < 0 { return -x }
	return x
}
