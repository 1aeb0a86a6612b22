// Package opengl implements the fontstash rendering backend
// capabilities with OpenGL 3.3 core textures.
//
// All functions must be called from the goroutine owning the GL
// context, after the GL bindings have been initialized with gl.Init().
package opengl

import "image"

import "github.com/go-gl/gl/v3.3-core/gl"
import "github.com/pkg/errors"

import "github.com/tinne26/fontstash/atlas"

// Returned when a texture wasn't created by this package.
var ErrForeignTexture = errors.New("opengl: texture is not an *opengl.Texture")

// An RGBA8 OpenGL texture.
type Texture struct {
	id uint32
	width int
	height int
}

// Wraps an existing texture object. Useful to give fontstash a
// texture created elsewhere through fontstash.Config.ExistingTexture.
func WrapTexture(id uint32, width, height int) *Texture {
	return &Texture{ id: id, width: width, height: height }
}

// Returns the OpenGL name of the texture.
func (self *Texture) ID() uint32 { return self.id }

// Satisfies the [atlas.Texture] interface.
func (self *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, self.width, self.height)
}

// Deletes the texture object.
func (self *Texture) Delete() {
	if self.id == 0 { return }
	gl.DeleteTextures(1, &self.id)
	self.id = 0
}

var _ atlas.TextureManager = (*TextureManager)(nil)

// TextureManager creates [*Texture] objects.
type TextureManager struct {
	// Use GL_LINEAR instead of GL_NEAREST filtering.
	Smooth bool
}

// Satisfies the [atlas.TextureManager] interface.
func (self *TextureManager) CreateTexture(width, height int) (atlas.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("opengl: invalid texture size %dx%d", width, height)
	}

	texture := &Texture{ width: width, height: height }
	gl.GenTextures(1, &texture.id)
	gl.BindTexture(gl.TEXTURE_2D, texture.id)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	pixels := make([]uint8, width*height*4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	filter := int32(gl.NEAREST)
	if self.Smooth { filter = gl.LINEAR }
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &texture.id)
		return nil, errors.Errorf("opengl: creating %dx%d texture failed with error 0x%X", width, height, code)
	}
	return texture, nil
}

// Satisfies the [atlas.TextureManager] interface.
func (self *TextureManager) UploadRegion(texture atlas.Texture, region image.Rectangle, pixels []byte) error {
	glTexture, isGL := texture.(*Texture)
	if !isGL { return ErrForeignTexture }
	if region.Empty() { return nil }
	if !region.In(glTexture.Bounds()) {
		return errors.Errorf("opengl: region %v outside texture bounds %v", region, glTexture.Bounds())
	}

	gl.BindTexture(gl.TEXTURE_2D, glTexture.id)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0,
		int32(region.Min.X), int32(region.Min.Y),
		int32(region.Dx()), int32(region.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels),
	)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("opengl: uploading region %v failed with error 0x%X", region, code)
	}
	return nil
}
