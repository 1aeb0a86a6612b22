package richtext

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/atlas"

// Renderable is an inline element of rich text, like an image.
type Renderable interface {
	// Size of the element on the layout, in pixels.
	Size() image.Point

	// Draws the element with its top-left corner at the given position.
	Draw(renderer fontstash.Renderer, position mgl32.Vec2, clr color.RGBA)
}

var _ Renderable = (*TextureFragment)(nil)

// A region of a texture, drawn untinted with an optional scale.
type TextureFragment struct {
	Texture atlas.Texture
	Region image.Rectangle
	Scale mgl32.Vec2
}

// Creates a fragment covering the whole texture, with scale (1, 1).
func NewTextureFragment(texture atlas.Texture) *TextureFragment {
	return &TextureFragment{ Texture: texture, Region: texture.Bounds(), Scale: mgl32.Vec2{1, 1} }
}

// Satisfies the [Renderable] interface. The size is the region size
// times the scale, rounded.
func (self *TextureFragment) Size() image.Point {
	return image.Pt(
		int(float32(self.Region.Dx())*self.Scale.X() + 0.5),
		int(float32(self.Region.Dy())*self.Scale.Y() + 0.5),
	)
}

// Satisfies the [Renderable] interface. The color is ignored.
func (self *TextureFragment) Draw(renderer fontstash.Renderer, position mgl32.Vec2, _ color.RGBA) {
	transform := mgl32.Translate2D(position.X(), position.Y()).Mul3(mgl32.Scale2D(self.Scale.X(), self.Scale.Y()))
	renderer.Draw(self.Texture, self.Region, transform, color.RGBA{255, 255, 255, 255})
}
