package font

import "image"
import "strings"

import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"
import "github.com/tinne26/fontstash/fract"
import "github.com/tinne26/fontstash/mask"
import "github.com/tinne26/fontstash/sizer"

var _ FauxSource = (*SFNT)(nil)

// A [Source] backed by an [sfnt.Font]. Metrics come from a
// [sizer.Sizer] and glyphs are rasterized with a [mask.Rasterizer].
type SFNT struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	sizer sizer.Sizer
	sizerSize fract.Unit
	rasterizer mask.Rasterizer
	faux mask.FauxRasterizer
	name string
	bold bool
	italic bool
}

// Configuration option for [NewSFNT]().
type Option func(*SFNT)

// Replaces the default sizer.
func WithSizer(sz sizer.Sizer) Option {
	return func(source *SFNT) { source.sizer = sz }
}

// Replaces the default rasterizer.
func WithRasterizer(rasterizer mask.Rasterizer) Option {
	return func(source *SFNT) { source.rasterizer = rasterizer }
}

// Parses the given font bytes. The bytes must not be modified
// while the source is in use. Parse failures are reported as
// [ErrInvalidFontData].
func NewSFNT(data []byte, opts ...Option) (*SFNT, error) {
	font, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFontData, err.Error())
	}
	return NewSFNTFromFont(font, opts...), nil
}

// Creates a source from an already parsed font.
func NewSFNTFromFont(font *sfnt.Font, opts ...Option) *SFNT {
	source := &SFNT{
		font: font,
		sizer: &sizer.DefaultSizer{},
		sizerSize: -1,
		rasterizer: &mask.DefaultRasterizer{},
	}
	for _, opt := range opts { opt(source) }

	source.name, _ = GetName(font)
	subfamily, _ := GetSubfamily(font)
	subfamily = strings.ToLower(subfamily)
	source.bold = strings.Contains(subfamily, "bold")
	source.italic = strings.Contains(subfamily, "italic") || strings.Contains(subfamily, "oblique")
	return source
}

// Returns the underlying font.
func (self *SFNT) Font() *sfnt.Font { return self.font }

// Returns the full name of the font, which may be empty.
func (self *SFNT) Name() string { return self.name }

// Satisfies the [Source] interface.
func (self *SFNT) HasBold() bool { return self.bold }

// Satisfies the [FauxSource] interface.
func (self *SFNT) HasItalic() bool { return self.italic }

// Satisfies the [Source] interface.
func (self *SFNT) GlyphID(codepoint rune) (GlyphID, bool) {
	index, err := self.font.GlyphIndex(&self.buffer, codepoint)
	if err != nil || index == 0 { return 0, false }
	return GlyphID(index), true
}

// Satisfies the [Source] interface.
func (self *SFNT) Metrics(size fract.Unit) (Metrics, error) {
	err := self.notifySize(size)
	if err != nil { return Metrics{}, err }
	ascent := self.sizer.Ascent(self.font, &self.buffer, size)
	descent := self.sizer.Descent(self.font, &self.buffer, size)
	lineHeight := self.sizer.LineHeight(self.font, &self.buffer, size)
	return Metrics{
		Ascent: ascent.ToIntCeil(),
		Descent: -descent.ToIntCeil(),
		LineHeight: lineHeight.ToInt(),
	}, nil
}

// Satisfies the [Source] interface.
func (self *SFNT) GlyphMetrics(id GlyphID, size fract.Unit) (GlyphMetrics, error) {
	err := self.notifySize(size)
	if err != nil { return GlyphMetrics{}, err }

	index := sfnt.GlyphIndex(id)
	advance, err := self.sizer.GlyphAdvance(self.font, &self.buffer, size, index)
	if err != nil { return GlyphMetrics{}, err }
	segments, err := self.font.LoadGlyph(&self.buffer, index, size.ToFixed(), nil)
	if err != nil {
		return GlyphMetrics{}, errors.Wrapf(err, "font: loading glyph %d", id)
	}
	return GlyphMetrics{ Advance: advance, Bounds: pixelBox(segments) }, nil
}

// Satisfies the [Source] interface.
func (self *SFNT) KernAdvance(first, second GlyphID, size fract.Unit) (fract.Unit, error) {
	err := self.notifySize(size)
	if err != nil { return 0, err }
	return self.sizer.Kern(self.font, &self.buffer, size, sfnt.GlyphIndex(first), sfnt.GlyphIndex(second))
}

// Satisfies the [Source] interface.
func (self *SFNT) Rasterize(id GlyphID, size fract.Unit, dst []byte, width, height, stride int) error {
	segments, err := self.font.LoadGlyph(&self.buffer, sfnt.GlyphIndex(id), size.ToFixed(), nil)
	if err != nil {
		return errors.Wrapf(err, "font: loading glyph %d", id)
	}
	box := pixelBox(segments)
	alpha, err := mask.Rasterize(segments, self.rasterizer, fract.Point{})
	if err != nil {
		return errors.Wrapf(err, "font: rasterizing glyph %d", id)
	}
	mask.CopyCoverage(alpha, box.Min, dst, width, height, stride)
	return nil
}

// Satisfies the [FauxSource] interface.
func (self *SFNT) FauxGlyphMetrics(id GlyphID, size fract.Unit, faux Faux) (GlyphMetrics, error) {
	metrics, err := self.GlyphMetrics(id, size)
	if err != nil || metrics.Bounds.Empty() || faux.IsZero() { return metrics, err }
	segments, err := self.font.LoadGlyph(&self.buffer, sfnt.GlyphIndex(id), size.ToFixed(), nil)
	if err != nil {
		return GlyphMetrics{}, errors.Wrapf(err, "font: loading glyph %d", id)
	}
	metrics.Bounds = self.fauxBox(segments, faux)
	return metrics, nil
}

// Satisfies the [FauxSource] interface.
func (self *SFNT) RasterizeFaux(id GlyphID, size fract.Unit, faux Faux, dst []byte, width, height, stride int) error {
	if faux.IsZero() { return self.Rasterize(id, size, dst, width, height, stride) }
	segments, err := self.font.LoadGlyph(&self.buffer, sfnt.GlyphIndex(id), size.ToFixed(), nil)
	if err != nil {
		return errors.Wrapf(err, "font: loading glyph %d", id)
	}
	box := self.fauxBox(segments, faux)
	alpha, err := mask.Rasterize(segments, &self.faux, fract.Point{})
	if err != nil {
		return errors.Wrapf(err, "font: rasterizing faux glyph %d", id)
	}
	mask.CopyCoverage(alpha, box.Min, dst, width, height, stride)
	return nil
}

// Configures the faux rasterizer and returns the pixel box of
// the styled outline.
func (self *SFNT) fauxBox(segments sfnt.Segments, faux Faux) image.Rectangle {
	self.faux.SetSkewFactor(faux.Skew)
	self.faux.SetExtraWidth(faux.ExtraWidth)
	if pixelBox(segments).Empty() { return image.Rectangle{} }
	return self.faux.Bounds(segments).ImageRect()
}

func (self *SFNT) notifySize(size fract.Unit) error {
	if size == self.sizerSize { return nil }
	err := self.sizer.NotifyChange(self.font, &self.buffer, size)
	if err != nil { return err }
	self.sizerSize = size
	return nil
}

// Pixel box containing the outline, or the empty rectangle
// for outlines without any visible segment.
func pixelBox(segments sfnt.Segments) image.Rectangle {
	if len(segments) == 0 { return image.Rectangle{} }
	bounds := segments.Bounds()
	box := image.Rect(
		fract.FromFixed(bounds.Min.X).ToIntFloor(), fract.FromFixed(bounds.Min.Y).ToIntFloor(),
		fract.FromFixed(bounds.Max.X).ToIntCeil(), fract.FromFixed(bounds.Max.Y).ToIntCeil(),
	)
	if box.Empty() { return image.Rectangle{} }
	return box
}
