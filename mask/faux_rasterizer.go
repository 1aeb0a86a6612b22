package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/fontstash/fract"

var _ Rasterizer = (*FauxRasterizer)(nil)

// A rasterizer to draw oblique and faux bold glyphs, for fonts that
// lack the italic or bold faces requested. Real faces look better
// whenever they are available.
//
// Oblique is applied by skewing the outline control points, while
// faux bold widens the rasterized mask to the right.
type FauxRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fract.Point
	skew float32 // in [-1, 1]
	extraWidth fract.Unit // in [0, 1024]
}

// Sets the oblique skew factor. Values outside [-1, 1] are clamped.
//
// A factor of 1 tilts glyphs 45 degrees to the right, -1 tilts them 45
// degrees to the left and 0 disables the effect. Italic faces usually
// lean between 6 and 9 degrees, which corresponds to factors in the
// [0.13, 0.2] range.
func (self *FauxRasterizer) SetSkewFactor(factor float32) {
	if factor >  1 { factor =  1 }
	if factor < -1 { factor = -1 }
	self.skew = factor
}

// Returns the oblique skew factor.
func (self *FauxRasterizer) SkewFactor() float32 { return self.skew }

// Sets the faux bold extra width in pixels. Values are clamped to
// [0, 1024] and quantized to 1/64ths of a pixel. Glyph masks become
// wider by the extra width rounded up.
func (self *FauxRasterizer) SetExtraWidth(extraWidth float32) {
	if extraWidth <= 0 {
		self.extraWidth = 0
		return
	}
	if extraWidth > 1024 { extraWidth = 1024 }
	self.extraWidth = fract.FromFloat64Down(float64(extraWidth))
	if self.extraWidth == 0 { self.extraWidth = 1 } // never round to zero
}

// Returns the faux bold extra width in pixels.
func (self *FauxRasterizer) ExtraWidth() float32 { return self.extraWidth.ToFloat32() }

// Returns the bounds of the outline once skewed and widened.
func (self *FauxRasterizer) Bounds(outline sfnt.Segments) fract.Rect {
	fbounds := outline.Bounds()
	bounds := fract.UnitsToRect(
		fract.FromFixed(fbounds.Min.X), fract.FromFixed(fbounds.Min.Y),
		fract.FromFixed(fbounds.Max.X), fract.FromFixed(fbounds.Max.Y),
	)

	// x' = x - y*skew, and y is negative above the baseline
	if self.skew != 0 {
		top := bounds.Min.Y.ToFloat64()*float64(self.skew)
		bottom := bounds.Max.Y.ToFloat64()*float64(self.skew)
		low, high := top, bottom
		if low > high { low, high = high, low }
		bounds.Min.X -= fract.FromFloat64Up(high)
		bounds.Max.X -= fract.FromFloat64Down(low)
	}
	if self.extraWidth > 0 {
		bounds.Max.X += self.extraWidth.Ceil()
	}
	return bounds
}

// Satisfies the [Rasterizer] interface.
func (self *FauxRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(self.Bounds(outline), origin)
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(rectOffset)

	if self.extraWidth > 0 {
		widenRows(mask.Pix, width, height, mask.Stride, 1, self.extraWidth)
	}
	return mask, nil
}

// The skew must be applied before normalizing y.
func (self *FauxRasterizer) transform(point fract.Point) (float32, float32) {
	x := (point.X + self.normOffset.X).ToFloat32() - point.Y.ToFloat32()*self.skew
	y := (point.Y + self.normOffset.Y).ToFloat32()
	return x, y
}

func (self *FauxRasterizer) MoveTo(point fract.Point) {
	self.rasterizer.MoveTo(self.transform(point))
}

func (self *FauxRasterizer) LineTo(point fract.Point) {
	self.rasterizer.LineTo(self.transform(point))
}

func (self *FauxRasterizer) QuadTo(control, target fract.Point) {
	cx, cy := self.transform(control)
	tx, ty := self.transform(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

func (self *FauxRasterizer) CubeTo(controlA, controlB, target fract.Point) {
	cax, cay := self.transform(controlA)
	cbx, cby := self.transform(controlB)
	tx , ty  := self.transform(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Widens the coverage to the right by the given extra width. Each
// value becomes the max of itself and the values up to the whole part
// of the extra width to its left, with the next value to the left
// weighted by the fractional part. Values of the same channel are
// step bytes apart.
func widenRows(pixels []byte, width, height, stride, step int, extra fract.Unit) {
	whole := extra.ToIntFloor()
	fractPart := uint32(extra - extra.Floor())
	source := make([]byte, width)
	for y := 0; y < height; y++ {
		for channel := 0; channel < step; channel++ {
			start := y*stride + channel
			for x := 0; x < width; x++ { source[x] = pixels[start + x*step] }
			for x := 0; x < width; x++ {
				value := source[x]
				for k := 1; k <= whole && k <= x; k++ {
					if source[x - k] > value { value = source[x - k] }
				}
				if fractPart > 0 && x > whole {
					partial := byte((uint32(source[x - whole - 1])*fractPart + 32) >> 6)
					if partial > value { value = partial }
				}
				pixels[start + x*step] = value
			}
		}
	}
}
