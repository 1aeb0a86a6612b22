// Package ebitengine implements the fontstash rendering backend
// capabilities with [Ebitengine] images.
//
// [Ebitengine]: https://ebitengine.org
package ebitengine

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"
import "github.com/hajimehoshi/ebiten/v2"
import "github.com/pkg/errors"

import "github.com/tinne26/fontstash/atlas"

// Returned when a texture wasn't created by a [TextureManager].
var ErrForeignTexture = errors.New("ebitengine: texture is not an *ebiten.Image")

var _ atlas.TextureManager = TextureManager{}

// TextureManager creates [*ebiten.Image] textures.
type TextureManager struct{}

// Satisfies the [atlas.TextureManager] interface.
func (TextureManager) CreateTexture(width, height int) (atlas.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("ebitengine: invalid texture size %dx%d", width, height)
	}
	return ebiten.NewImage(width, height), nil
}

// Satisfies the [atlas.TextureManager] interface. Ebitengine expects
// premultiplied pixels, which is what fontstash uploads.
func (TextureManager) UploadRegion(texture atlas.Texture, region image.Rectangle, pixels []byte) error {
	img, isEbiten := texture.(*ebiten.Image)
	if !isEbiten { return ErrForeignTexture }
	if !region.In(img.Bounds()) {
		return errors.Errorf("ebitengine: region %v outside texture bounds %v", region, img.Bounds())
	}
	img.SubImage(region).(*ebiten.Image).WritePixels(pixels[ : region.Dx()*region.Dy()*4])
	return nil
}

// Renderer draws textured quads into a target [*ebiten.Image].
type Renderer struct {
	target *ebiten.Image

	// Filter used to sample the textures.
	Filter ebiten.Filter
}

// Creates a renderer drawing into the given target.
func NewRenderer(target *ebiten.Image) *Renderer {
	return &Renderer{ target: target }
}

func (self *Renderer) Target() *ebiten.Image { return self.target }

// Sets the target image. Usually called with the screen image at
// the start of each draw.
func (self *Renderer) SetTarget(target *ebiten.Image) { self.target = target }

// Satisfies the fontstash.Renderer interface.
func (self *Renderer) TextureManager() atlas.TextureManager { return TextureManager{} }

// Satisfies the fontstash.Renderer interface.
func (self *Renderer) Draw(texture atlas.Texture, src image.Rectangle, transform mgl32.Mat3, clr color.RGBA) {
	img, isEbiten := texture.(*ebiten.Image)
	if !isEbiten || src.Empty() { return }

	var opts ebiten.DrawImageOptions
	SetGeoM(&opts.GeoM, transform)
	opts.ColorScale.ScaleWithColor(clr)
	opts.Filter = self.Filter
	self.target.DrawImage(img.SubImage(src).(*ebiten.Image), &opts)
}

// Sets the given geometry matrix to the given 2D homogeneous transform.
func SetGeoM(geoM *ebiten.GeoM, transform mgl32.Mat3) {
	geoM.SetElement(0, 0, float64(transform[0]))
	geoM.SetElement(0, 1, float64(transform[3]))
	geoM.SetElement(0, 2, float64(transform[6]))
	geoM.SetElement(1, 0, float64(transform[1]))
	geoM.SetElement(1, 1, float64(transform[4]))
	geoM.SetElement(1, 2, float64(transform[7]))
}
