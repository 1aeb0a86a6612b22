package cache

import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"

// Returns the order-sensitive kerning key for a pair of glyph ids.
// KerningKey(a, b) and KerningKey(b, a) differ unless a == b.
func KerningKey(first, second font.GlyphID) uint32 {
	a, b := uint32(first), uint32(second)
	return ((a << 16) | (a >> 16)) ^ b
}

// GlyphCache stores the glyph records and kerning values for a single
// font size and style.
type GlyphCache struct {
	glyphs  map[rune]*Glyph // nil values are cached misses
	kerning map[uint32]fract.Unit
	hits    uint64
	misses  uint64
}

// Creates a new, empty glyph cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{
		glyphs:  make(map[rune]*Glyph, 64),
		kerning: make(map[uint32]fract.Unit),
	}
}

// Returns the glyph stored for the given codepoint. The second value
// is false if the codepoint was never stored. A stored miss is
// reported as (nil, true).
func (self *GlyphCache) Lookup(codepoint rune) (*Glyph, bool) {
	glyph, found := self.glyphs[codepoint]
	if found {
		self.hits += 1
	} else {
		self.misses += 1
	}
	return glyph, found
}

// Stores the glyph for the given codepoint. A nil glyph records a
// miss. Storing over an existing entry replaces it.
func (self *GlyphCache) Store(codepoint rune, glyph *Glyph) {
	self.glyphs[codepoint] = glyph
}

// Returns the cached kerning between the two glyphs, in order.
func (self *GlyphCache) Kerning(first, second font.GlyphID) (fract.Unit, bool) {
	value, found := self.kerning[KerningKey(first, second)]
	return value, found
}

func (self *GlyphCache) StoreKerning(first, second font.GlyphID, value fract.Unit) {
	self.kerning[KerningKey(first, second)] = value
}

// Number of stored codepoints, misses included.
func (self *GlyphCache) Len() int { return len(self.glyphs) }

// Calls the given function for each stored glyph that's not a miss,
// in unspecified order. Returning false stops the iteration.
func (self *GlyphCache) Each(fn func(rune, *Glyph) bool) {
	for codepoint, glyph := range self.glyphs {
		if glyph == nil { continue }
		if !fn(codepoint, glyph) { return }
	}
}

// Returns the number of lookups that found and didn't find an entry.
func (self *GlyphCache) Stats() (hits, misses uint64) {
	return self.hits, self.misses
}

// Clears all glyphs, kerning values and stats.
func (self *GlyphCache) Reset() {
	clear(self.glyphs)
	clear(self.kerning)
	self.hits, self.misses = 0, 0
}
