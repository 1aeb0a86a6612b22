package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "github.com/pkg/errors"
import "github.com/tinne26/fontstash/fract"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer], reporting the unhinted metrics of the font.
type DefaultSizer struct {
	cachedAscent  fract.Unit
	cachedDescent fract.Unit
	cachedLineHeight fract.Unit
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedAscent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedDescent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(font *Font, buffer *Buffer, size fract.Unit, g GlyphIndex) (fract.Unit, error) {
	advance, err := font.GlyphAdvance(buffer, g, size.ToFixed(), hintingNone)
	if err != nil { return 0, errors.Wrapf(err, "glyph advance for index %d", g) }
	return fract.FromFixed(advance), nil
}

// Satisfies the [Sizer] interface. Missing kerning pairs are reported
// as zero.
func (self *DefaultSizer) Kern(font *Font, buffer *Buffer, size fract.Unit, g1, g2 GlyphIndex) (fract.Unit, error) {
	kern, err := font.Kern(buffer, g1, g2, size.ToFixed(), hintingNone)
	if err == nil { return fract.FromFixed(kern), nil }
	if err == ErrNotFound { return 0, nil }
	return 0, errors.Wrapf(err, "kern for indices %d and %d", g1, g2)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(font *Font, buffer *Buffer, size fract.Unit) error {
	if font == nil || size == 0 {
		self.cachedAscent     = 0
		self.cachedDescent    = 0
		self.cachedLineHeight = 0
		return nil
	}

	metrics, err := font.Metrics(buffer, size.ToFixed(), hintingNone)
	if err != nil { return errors.Wrap(err, "font metrics") }
	self.cachedAscent  = fract.FromFixed(metrics.Ascent)
	self.cachedDescent = fract.FromFixed(metrics.Descent)
	self.cachedLineHeight = fract.FromFixed(metrics.Height)
	return nil
}

const hintingNone = font.HintingNone
