package fontstash

import "github.com/pkg/errors"

// Returned when fonts are requested from a [FontSystem] without sources.
var ErrNoFontSources = errors.New("fontstash: font system has no font sources")

// Returned when a glyph doesn't fit even on a freshly created atlas.
var ErrGlyphTooLarge = errors.New("fontstash: glyph doesn't fit on an empty atlas")

// Returned by [Config.Validate]() and [NewFontSystem]().
var ErrInvalidConfig = errors.New("fontstash: invalid configuration")
