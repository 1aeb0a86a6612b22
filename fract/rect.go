package fract

import "image"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return UnitsToRect(
		FromInt(rect.Min.X), FromInt(rect.Min.Y),
		FromInt(rect.Max.X), FromInt(rect.Max.Y),
	)
}

// Converts the rect to an [image.Rectangle] guaranteed to contain
// the original rect.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}

// Returns the rect coordinates as a set of four float32s.
func (self Rect) ToFloat32s() (minX, minY, maxX, maxY float32) {
	return self.Min.X.ToFloat32(), self.Min.Y.ToFloat32(), self.Max.X.ToFloat32(), self.Max.Y.ToFloat32()
}

func (self Rect) Width() Unit { return self.Max.X - self.Min.X }
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the result of translating the rect by the given values.
func (self Rect) AddUnits(x, y Unit) Rect {
	self.Min.X += x
	self.Min.Y += y
	self.Max.X += x
	self.Max.Y += y
	return self
}

// Returns the smallest rect containing both the current rect and
// the given point. Unlike [Rect.Union], empty rects are not ignored,
// which is what bound accumulators starting from a single point need.
func (self Rect) Expand(pt Point) Rect {
	self.Min.X = self.Min.X.Min(pt.X)
	self.Min.Y = self.Min.Y.Min(pt.Y)
	self.Max.X = self.Max.X.Max(pt.X)
	self.Max.Y = self.Max.Y.Max(pt.Y)
	return self
}

// Returns the smallest rect containing both rects. Empty rects
// are ignored.
func (self Rect) Union(other Rect) Rect {
	if other.Empty() { return self }
	if self.Empty() { return other }
	self.Min.X = self.Min.X.Min(other.Min.X)
	self.Min.Y = self.Min.Y.Min(other.Min.Y)
	self.Max.X = self.Max.X.Max(other.Max.X)
	self.Max.Y = self.Max.Y.Max(other.Max.Y)
	return self
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
