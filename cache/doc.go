// The cache subpackage defines the glyph records produced by fontstash
// fonts and the per-size [GlyphCache] that stores them together with
// the kerning values between glyph pairs.
//
// Entries are created lazily on first lookup and are never evicted:
// glyph records point into atlas textures that only grow, so the only
// way to release them is a full [GlyphCache.Reset]. Codepoints that no
// source can render are cached as misses, so repeated lookups of the
// same missing codepoint don't trigger the fallback search again.
//
// Caches are not safe for concurrent use.
package cache
