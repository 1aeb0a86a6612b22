package mask

import "image"

import "github.com/tinne26/fontstash/fract"

// Writes the coverage of the given alpha mask into an RGBA8 buffer of
// the given size. The buffer represents the pixel box starting at
// boxOrigin, in the same coordinate space as the mask bounds. Coverage
// goes to all four channels, producing premultiplied white.
//
// Parts of the mask outside the box are clipped, parts of the box
// not covered by the mask are left untouched.
func CopyCoverage(mask *image.Alpha, boxOrigin image.Point, dst []byte, width, height, stride int) {
	if mask == nil { return }
	box := image.Rect(boxOrigin.X, boxOrigin.Y, boxOrigin.X + width, boxOrigin.Y + height)
	area := mask.Rect.Intersect(box)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := (y - box.Min.Y)*stride
		for x := area.Min.X; x < area.Max.X; x++ {
			value := mask.Pix[mask.PixOffset(x, y)]
			offset := row + (x - box.Min.X)*4
			dst[offset + 0] = value
			dst[offset + 1] = value
			dst[offset + 2] = value
			dst[offset + 3] = value
		}
	}
}

// Widens the coverage in an RGBA8 buffer to the right by the given
// extra width, the same way [FauxRasterizer] does with its masks. Used
// for synthetic bold on sources that rasterize directly into RGBA8.
func Embolden(pixels []byte, width, height, stride int, extra fract.Unit) {
	widenRows(pixels, width, height, stride, 4, extra)
}
