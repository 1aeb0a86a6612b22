// Package gotext provides a [font.Source] backed by the
// github.com/go-text/typesetting font parser.
//
// Kerning comes from the pair adjustments of the GPOS 'kern' feature
// when the font has one, and from the legacy 'kern' table otherwise.
// Contextual kerning, which requires shaping, is not applied.
package gotext

import "bytes"
import "image"
import "math"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/pkg/errors"
import gtfont "github.com/go-text/typesetting/font"
import ot "github.com/go-text/typesetting/font/opentype"
import "github.com/go-text/typesetting/font/opentype/tables"

import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"
import "github.com/tinne26/fontstash/mask"

var _ font.FauxSource = (*Source)(nil)

var kernTag = ot.MustNewTag("kern")

// A [font.Source] backed by a go-text face.
type Source struct {
	face *gtfont.Face
	upem float64
	rasterizer mask.Rasterizer
	faux mask.FauxRasterizer
	family string
	bold bool
	italic bool
	pairLookups []tables.PairPos
	segments sfnt.Segments // reused between calls
}

// Parses an OpenType font (.ttf or .otf). Parse failures are
// reported as [font.ErrInvalidFontData].
func Parse(data []byte) (*Source, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(font.ErrInvalidFontData, err.Error())
	}
	upem := face.Upem()
	if upem == 0 { upem = 1000 }
	desc := face.Describe()
	return &Source{
		face: face,
		upem: float64(upem),
		rasterizer: &mask.DefaultRasterizer{},
		family: desc.Family,
		bold: desc.Aspect.Weight >= gtfont.WeightBold,
		italic: desc.Aspect.Style == gtfont.StyleItalic,
		pairLookups: kernPairLookups(face.GPOS),
	}, nil
}

// Collects the pair adjustment subtables of the GPOS 'kern' feature,
// in lookup list order.
func kernPairLookups(gpos gtfont.GPOS) []tables.PairPos {
	var lookups []tables.PairPos
	seen := make(map[uint16]bool)
	for _, feature := range gpos.Features {
		if feature.Tag != kernTag { continue }
		for _, index := range feature.LookupListIndices {
			if seen[index] || int(index) >= len(gpos.Lookups) { continue }
			seen[index] = true
			for _, subtable := range gpos.Lookups[index].Subtables {
				pairPos, isPairPos := subtable.(tables.PairPos)
				if isPairPos { lookups = append(lookups, pairPos) }
			}
		}
	}
	return lookups
}

// Returns the family name of the font.
func (self *Source) Family() string { return self.family }

// Satisfies the [font.Source] interface.
func (self *Source) HasBold() bool { return self.bold }

// Satisfies the [font.FauxSource] interface.
func (self *Source) HasItalic() bool { return self.italic }

// Satisfies the [font.Source] interface.
func (self *Source) GlyphID(codepoint rune) (font.GlyphID, bool) {
	gid, found := self.face.NominalGlyph(codepoint)
	if !found || gid == 0 { return 0, false }
	return font.GlyphID(gid), true
}

// Satisfies the [font.Source] interface.
func (self *Source) Metrics(size fract.Unit) (font.Metrics, error) {
	extents, found := self.face.FontHExtents()
	if !found { return font.Metrics{}, errors.New("gotext: missing horizontal extents") }
	scale := self.scale(size)
	ascent  := fract.FromFloat64Up(float64(extents.Ascender)*scale)
	descent := fract.FromFloat64Up(float64(-extents.Descender)*scale)
	lineGap := fract.FromFloat64Up(float64(extents.LineGap)*scale)
	return font.Metrics{
		Ascent: ascent.ToIntCeil(),
		Descent: -descent.ToIntCeil(),
		LineHeight: (ascent + descent + lineGap).ToInt(),
	}, nil
}

// Satisfies the [font.Source] interface.
func (self *Source) GlyphMetrics(id font.GlyphID, size fract.Unit) (font.GlyphMetrics, error) {
	advance := float64(self.face.HorizontalAdvance(gtfont.GID(id)))*self.scale(size)
	segments, err := self.outline(id, size)
	if err != nil { return font.GlyphMetrics{}, err }
	return font.GlyphMetrics{
		Advance: fract.FromFloat64Up(advance),
		Bounds: pixelBox(segments),
	}, nil
}

// Satisfies the [font.Source] interface.
func (self *Source) KernAdvance(first, second font.GlyphID, size fract.Unit) (fract.Unit, error) {
	units := self.kernUnits(gtfont.GID(first), gtfont.GID(second))
	if units == 0 { return 0, nil }
	return fract.FromFloat64Up(float64(units)*self.scale(size)), nil
}

// Kerning between two glyphs in font units.
func (self *Source) kernUnits(first, second gtfont.GID) int16 {
	if len(self.pairLookups) > 0 {
		if first > 0xFFFF || second > 0xFFFF { return 0 }
		for _, lookup := range self.pairLookups {
			value, found := pairAdjustment(lookup, tables.GlyphID(first), tables.GlyphID(second))
			if found { return value }
		}
		return 0
	}

	var total int16
	for _, subtable := range self.face.Kern {
		if !subtable.IsHorizontal() || subtable.IsCrossStream() || subtable.IsVariation() { continue }
		pairs, isSimple := subtable.Data.(gtfont.SimpleKerns)
		if isSimple { total += pairs.KernPair(first, second) }
	}
	return total
}

// Returns the advance adjustment of the first glyph of the pair, and
// whether the lookup covers the pair.
func pairAdjustment(lookup tables.PairPos, first, second tables.GlyphID) (int16, bool) {
	index, covered := lookup.Cov().Index(first)
	if !covered { return 0, false }
	switch data := lookup.Data.(type) {
	case tables.PairPosData1:
		if index >= len(data.PairSets) { return 0, false }
		record, found := data.PairSets[index].FindGlyph(second)
		if !found { return 0, false }
		return record.ValueRecord1.XAdvance, true
	case tables.PairPosData2:
		class1, _ := data.ClassDef1.Class(first)
		class2, _ := data.ClassDef2.Class(second)
		return data.Record(class1, class2).ValueRecord1.XAdvance, true
	default:
		return 0, false
	}
}

// Satisfies the [font.Source] interface.
func (self *Source) Rasterize(id font.GlyphID, size fract.Unit, dst []byte, width, height, stride int) error {
	segments, err := self.outline(id, size)
	if err != nil { return err }
	alpha, err := mask.Rasterize(segments, self.rasterizer, fract.Point{})
	if err != nil {
		return errors.Wrapf(err, "gotext: rasterizing glyph %d", id)
	}
	mask.CopyCoverage(alpha, pixelBox(segments).Min, dst, width, height, stride)
	return nil
}

// Satisfies the [font.FauxSource] interface.
func (self *Source) FauxGlyphMetrics(id font.GlyphID, size fract.Unit, faux font.Faux) (font.GlyphMetrics, error) {
	metrics, err := self.GlyphMetrics(id, size)
	if err != nil || metrics.Bounds.Empty() || faux.IsZero() { return metrics, err }
	segments, err := self.outline(id, size)
	if err != nil { return font.GlyphMetrics{}, err }
	metrics.Bounds = self.fauxBox(segments, faux)
	return metrics, nil
}

// Satisfies the [font.FauxSource] interface.
func (self *Source) RasterizeFaux(id font.GlyphID, size fract.Unit, faux font.Faux, dst []byte, width, height, stride int) error {
	if faux.IsZero() { return self.Rasterize(id, size, dst, width, height, stride) }
	segments, err := self.outline(id, size)
	if err != nil { return err }
	box := self.fauxBox(segments, faux)
	alpha, err := mask.Rasterize(segments, &self.faux, fract.Point{})
	if err != nil {
		return errors.Wrapf(err, "gotext: rasterizing faux glyph %d", id)
	}
	mask.CopyCoverage(alpha, box.Min, dst, width, height, stride)
	return nil
}

func (self *Source) fauxBox(segments sfnt.Segments, faux font.Faux) image.Rectangle {
	self.faux.SetSkewFactor(faux.Skew)
	self.faux.SetExtraWidth(faux.ExtraWidth)
	if pixelBox(segments).Empty() { return image.Rectangle{} }
	return self.faux.Bounds(segments).ImageRect()
}

func (self *Source) scale(size fract.Unit) float64 {
	return size.ToFloat64()/self.upem
}

// Converts the glyph outline to pixel units with y growing
// downwards. The result is only valid until the next call.
func (self *Source) outline(id font.GlyphID, size fract.Unit) (sfnt.Segments, error) {
	self.segments = self.segments[:0]
	data := self.face.GlyphData(gtfont.GID(id))
	outline, isOutline := data.(gtfont.GlyphOutline)
	if !isOutline {
		if data == nil { return self.segments, nil }
		return nil, errors.Errorf("gotext: glyph %d is not a vector outline", id)
	}

	scale := self.scale(size)
	for _, segment := range outline.Segments {
		var converted sfnt.Segment
		switch segment.Op {
		case ot.SegmentOpMoveTo: converted.Op = sfnt.SegmentOpMoveTo
		case ot.SegmentOpLineTo: converted.Op = sfnt.SegmentOpLineTo
		case ot.SegmentOpQuadTo: converted.Op = sfnt.SegmentOpQuadTo
		case ot.SegmentOpCubeTo: converted.Op = sfnt.SegmentOpCubeTo
		default:
			return nil, errors.Errorf("gotext: unexpected segment op %d", segment.Op)
		}
		for i, arg := range segment.ArgsSlice() {
			converted.Args[i] = fixed.Point26_6{
				X: toFixed(float64(arg.X)*scale),
				Y: toFixed(-float64(arg.Y)*scale),
			}
		}
		self.segments = append(self.segments, converted)
	}
	return self.segments, nil
}

func toFixed(value float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(value*64))
}

func pixelBox(segments sfnt.Segments) image.Rectangle {
	if len(segments) == 0 { return image.Rectangle{} }
	bounds := segments.Bounds()
	box := image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
	if box.Empty() { return image.Rectangle{} }
	return box
}
