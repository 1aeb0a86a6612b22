package fontstash

import "strings"

import "github.com/tinne26/fontstash/font"

// Style flags for dynamic fonts. Bold is synthesized when the source
// of a glyph isn't a bold face, and Italic is synthesized as an oblique
// skew when the source is a [font.FauxSource] without an italic face.
type FontStyle uint8
const (
	Bold   FontStyle = 1 << iota
	Italic
)

func (self FontStyle) String() string {
	if self == 0 { return "Regular" }
	var names []string
	if self & Bold != 0 { names = append(names, "Bold") }
	if self & Italic != 0 { names = append(names, "Italic") }
	return strings.Join(names, "|")
}

// Returns the synthetic styling needed to render the style with
// the given source.
func fauxStyle(style FontStyle, source font.Source) font.Faux {
	var faux font.Faux
	if style & Bold != 0 && !source.HasBold() { faux.ExtraWidth = font.FauxBoldWidth }
	if style & Italic != 0 {
		fauxSource, canFaux := source.(font.FauxSource)
		if canFaux && !fauxSource.HasItalic() { faux.Skew = font.FauxObliqueSkew }
	}
	return faux
}

// Decorations drawn along with the text.
type TextStyle uint8
const (
	NoTextStyle TextStyle = iota
	Underline
	Strikethrough
)

func (self TextStyle) String() string {
	switch self {
	case NoTextStyle: return "None"
	case Underline: return "Underline"
	case Strikethrough: return "Strikethrough"
	default:
		return "UnknownTextStyle"
	}
}
