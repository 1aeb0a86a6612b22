// fontstash is a package for dynamic font rendering: glyphs are
// rasterized on demand from one or more font sources and packed into
// shared atlas textures owned by the rendering backend.
//
// Usage starts with a [FontSystem] and its sources:
//   system, err := fontstash.NewFontSystem(fontstash.DefaultConfig())
//   if err != nil { ... }
//   err = system.AddFont(fontBytes)
//   if err != nil { ... }
//
// Then you request fonts at the sizes you need and draw or measure
// text with them:
//   font, err := system.Font(32)
//   if err != nil { ... }
//   size, err := font.MeasureString("Hello world!", nil)
//   _, err = font.DrawText(renderer, "Hello world!", mgl32.Vec2{20, 20}, color.RGBA{255, 255, 255, 255}, nil)
//
// When a codepoint is missing from the first source, the rest of the
// sources are tried in the order they were added. Renderers are
// provided by the backend subpackages, and rich text with inline
// markup is handled by the richtext subpackage.
package fontstash

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("fontstash")
}
