// Package richtext lays out text with inline markup on top of
// fontstash fonts.
//
// The markup is made of commands starting with a slash:
//   /n               line break (a raw '\n' also works)
//   /c[red]          push a color, by name or as #rrggbb / #rrggbbaa
//   /cd              pop the last color
//   /f[name, size]   push a font obtained through the font resolver
//   /fd              pop the last font
//   /v[-8] or /v4    set the vertical offset in pixels
//   /vd              reset the vertical offset to 0
//   /i[id]           insert an image obtained through the image resolver
//   /s[px]           insert an empty space of the given width
//   /tu /ts /td      underline, strikethrough or no text style
//   //               a literal slash
//
// Unknown or malformed commands are kept as literal text. Each run of
// text between commands becomes its own chunk.
//
// A [Layout] splits the chunks into lines, wrapping words when a width
// is set and dropping the lines that don't fit when a height is set,
// optionally ending the last visible line with an ellipsis.
package richtext

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("fontstash.richtext")
}
