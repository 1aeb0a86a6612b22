package mask

import "image"

import "golang.org/x/image/math/fixed"
import "github.com/tinne26/fontstash/fract"

type fixedPoint = fixed.Point26_6

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin.
func figureOutBounds(bounds fract.Rect, origin fract.Point) (int, int, fract.Point, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	var maskCorrection image.Point
	maskCorrection.X = floorMinX.ToIntFloor()
	maskCorrection.Y = floorMinY.ToIntFloor()

	var normOffset fract.Point
	normOffset.X = -floorMinX + (origin.X & 0x3F)
	normOffset.Y = -floorMinY + (origin.Y & 0x3F)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width.ToIntFloor(), height.ToIntFloor(), normOffset, maskCorrection
}
