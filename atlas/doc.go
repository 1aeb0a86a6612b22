// The atlas subpackage packs rasterized glyphs into shared textures.
//
// A [Skyline] assigns rectangular regions within a fixed size surface
// without owning any pixels. An [Atlas] pairs a skyline with a single
// destination [Texture], created and written through a [TextureManager]
// provided by the rendering backend.
//
// Placement never evicts: when an atlas can't fit a rectangle,
// [Atlas.Place] reports [Full] and the caller decides how to continue
// (normally by creating a new atlas).
package atlas

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("fontstash.atlas")
}
