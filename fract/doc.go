// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, alongside the [Point] and [Rect] helper types.
//
// Units are used in two places within fontstash:
//  - Glyph advances and kerning values, so pen positions can be
//    accumulated with subpixel precision and only rounded when
//    integer pixel rectangles are produced.
//  - Font size keys. Floating point sizes are quantized to the
//    closest 64th of a pixel (ties rounding up) so they can be
//    compared and hashed consistently.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
