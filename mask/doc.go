// The mask subpackage rasterizes glyph outlines into alpha masks and
// converts them into the RGBA8 coverage buffers written to atlases.
//
// The [Rasterizer] interface allows replacing the default
// [golang.org/x/image/vector] based rasterizer.
package mask
