// The font subpackage defines the [Source] capability that fontstash
// uses to obtain glyphs from a font, an [SFNT] implementation backed by
// [golang.org/x/image/font/sfnt], helper functions to parse fonts and
// obtain information from them (name, family, etc.), and a [Library]
// to keep font sources accessible by name.
package font
