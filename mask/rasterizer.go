package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/fontstash/fract"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (only the fractional part
	// of the coordinates is considered). The returned mask bounds are
	// expressed relative to the glyph origin.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)
}

type vectorTracer interface {
	MoveTo(fract.Point)
	LineTo(fract.Point)
	QuadTo(fract.Point, fract.Point)
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level method to rasterize glyph masks.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

func toPoint(arg [3]fixedPoint, i int) fract.Point {
	return fract.Point{ X: fract.FromFixed(arg[i].X), Y: fract.FromFixed(arg[i].Y) }
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(toPoint(segment.Args, 0))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(toPoint(segment.Args, 0))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(toPoint(segment.Args, 0), toPoint(segment.Args, 1))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(toPoint(segment.Args, 0), toPoint(segment.Args, 1), toPoint(segment.Args, 2))
		default:
			panic("unexpected segment.Op case")
		}
	}
}
