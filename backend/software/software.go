// Package software implements the fontstash rendering backend
// capabilities on top of [*image.RGBA] textures, for headless tools
// and tests.
package software

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"
import "github.com/pkg/errors"
import "golang.org/x/image/draw"
import "golang.org/x/image/math/f64"

import "github.com/tinne26/fontstash/atlas"

// Returned when a texture wasn't created by a [TextureManager].
var ErrForeignTexture = errors.New("software: texture is not an *image.RGBA")

var _ atlas.TextureManager = (*TextureManager)(nil)

// TextureManager creates [*image.RGBA] textures.
type TextureManager struct {
	created []*image.RGBA
}

// Satisfies the [atlas.TextureManager] interface.
func (self *TextureManager) CreateTexture(width, height int) (atlas.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("software: invalid texture size %dx%d", width, height)
	}
	texture := image.NewRGBA(image.Rect(0, 0, width, height))
	self.created = append(self.created, texture)
	return texture, nil
}

// Satisfies the [atlas.TextureManager] interface.
func (self *TextureManager) UploadRegion(texture atlas.Texture, region image.Rectangle, pixels []byte) error {
	rgba, isRGBA := texture.(*image.RGBA)
	if !isRGBA { return ErrForeignTexture }
	if !region.In(rgba.Bounds()) {
		return errors.Errorf("software: region %v outside texture bounds %v", region, rgba.Bounds())
	}
	stride := region.Dx()*4
	if len(pixels) < stride*region.Dy() {
		return errors.Errorf("software: %d bytes for region %v", len(pixels), region)
	}
	for y := 0; y < region.Dy(); y++ {
		offset := rgba.PixOffset(region.Min.X, region.Min.Y + y)
		copy(rgba.Pix[offset : offset + stride], pixels[y*stride : (y + 1)*stride])
	}
	return nil
}

// Returns the textures created so far, in creation order.
func (self *TextureManager) Textures() []*image.RGBA { return self.created }

// Renderer draws textured quads into a target image.
type Renderer struct {
	target draw.Image
	manager TextureManager

	// Interpolator used for transformed draws. Nil means
	// [draw.NearestNeighbor].
	Interpolator draw.Interpolator

	// Operator used to compose the draws. The zero value is [draw.Over].
	Op draw.Op

	scratch *image.RGBA
}

// Creates a renderer drawing into the given target.
func NewRenderer(target draw.Image) *Renderer {
	return &Renderer{ target: target }
}

func (self *Renderer) Target() draw.Image { return self.target }
func (self *Renderer) SetTarget(target draw.Image) { self.target = target }

// Satisfies the fontstash.Renderer interface.
func (self *Renderer) TextureManager() atlas.TextureManager { return &self.manager }

// Satisfies the fontstash.Renderer interface. The source region is
// tinted with the given color and drawn with the given transform,
// which maps the region's top-left corner at (0, 0) to the target.
// Textures that are not [*image.RGBA] are ignored.
func (self *Renderer) Draw(texture atlas.Texture, src image.Rectangle, transform mgl32.Mat3, clr color.RGBA) {
	rgba, isRGBA := texture.(*image.RGBA)
	if !isRGBA || src.Empty() { return }
	tinted := self.tint(rgba, src, clr)

	interpolator := self.Interpolator
	if interpolator == nil { interpolator = draw.NearestNeighbor }
	interpolator.Transform(self.target, ToAff3(transform), tinted, tinted.Bounds(), self.Op, nil)
}

// Copies the region into the scratch image, multiplying the
// premultiplied components by the color.
func (self *Renderer) tint(texture *image.RGBA, src image.Rectangle, clr color.RGBA) *image.RGBA {
	bounds := image.Rect(0, 0, src.Dx(), src.Dy())
	if self.scratch == nil || !bounds.In(self.scratch.Bounds()) {
		self.scratch = image.NewRGBA(bounds)
	}
	scratch := self.scratch.SubImage(bounds).(*image.RGBA)
	factors := [4]uint32{ uint32(clr.R), uint32(clr.G), uint32(clr.B), uint32(clr.A) }
	for y := 0; y < src.Dy(); y++ {
		from := texture.Pix[texture.PixOffset(src.Min.X, src.Min.Y + y):]
		to := scratch.Pix[scratch.PixOffset(0, y):]
		for i := 0; i < src.Dx()*4; i++ {
			to[i] = uint8((uint32(from[i])*factors[i & 3] + 127)/255)
		}
	}
	return scratch
}

// Converts a 2D homogeneous transform to the affine matrix used
// by [draw.Transformer].
func ToAff3(transform mgl32.Mat3) f64.Aff3 {
	return f64.Aff3{
		float64(transform[0]), float64(transform[3]), float64(transform[6]),
		float64(transform[1]), float64(transform[4]), float64(transform[7]),
	}
}
