package atlas

import "image"

// Texture is an opaque handle to a surface owned by the rendering
// backend. *image.RGBA and *ebiten.Image both satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// TextureManager is the rendering backend capability used to create
// atlas surfaces and write glyph pixels into them.
type TextureManager interface {
	// Creates a new texture of the given size, fully transparent.
	CreateTexture(width, height int) (Texture, error)

	// Writes RGBA8 pixels into the given region of the texture. The
	// pixels slice is tightly packed, with a stride of region.Dx()*4.
	UploadRegion(texture Texture, region image.Rectangle, pixels []byte) error
}
