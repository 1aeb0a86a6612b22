// The sizer subpackage provides the font metrics used by the sfnt
// font source: vertical metrics, glyph advances and kerning.
//
// Sizers allow adjusting those values without touching the font,
// for example to add extra spacing between glyph pairs with a
// [PaddedKernSizer].
package sizer

import . "golang.org/x/image/font/sfnt"
import "github.com/tinne26/fontstash/fract"

// Sizers provide font metrics for a font at a given size.
//
// Sizers may cache values derived from the font and size passed
// to NotifyChange(), so the font and size given to the rest of
// methods must be consistent with the latest NotifyChange() call.
type Sizer interface {
	// Returns the ascent of the font as an absolute value.
	Ascent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the descent of the font as an absolute value.
	Descent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the distance between consecutive baselines.
	LineHeight(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the advance of the given glyph.
	GlyphAdvance(*Font, *Buffer, fract.Unit, GlyphIndex) (fract.Unit, error)

	// Returns the kerning between two glyphs, in order.
	Kern(*Font, *Buffer, fract.Unit, GlyphIndex, GlyphIndex) (fract.Unit, error)

	// Syncs the sizer with the given font and size.
	NotifyChange(*Font, *Buffer, fract.Unit) error
}
