package opengl

import "image"
import "image/color"

import "github.com/go-gl/gl/v3.3-core/gl"
import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/fontstash/atlas"

// Number of float32 values per vertex: position (x, y), texture
// coordinates (u, v) and premultiplied color (r, g, b, a).
const VertexSize = 8

// Batch collects the quads drawn by fontstash, grouped by texture,
// so they can be rendered with a caller-owned shader. Each quad is
// stored as two triangles.
type Batch struct {
	manager TextureManager
	order []*Texture
	vertices map[*Texture][]float32
}

// Creates an empty batch.
func NewBatch() *Batch {
	return &Batch{ vertices: make(map[*Texture][]float32) }
}

// Satisfies the fontstash.Renderer interface.
func (self *Batch) TextureManager() atlas.TextureManager { return &self.manager }

// Satisfies the fontstash.Renderer interface.
func (self *Batch) Draw(texture atlas.Texture, src image.Rectangle, transform mgl32.Mat3, clr color.RGBA) {
	glTexture, isGL := texture.(*Texture)
	if !isGL || src.Empty() || glTexture.width == 0 || glTexture.height == 0 { return }

	vertices, found := self.vertices[glTexture]
	if !found { self.order = append(self.order, glTexture) }

	w, h := float32(src.Dx()), float32(src.Dy())
	invW, invH := 1/float32(glTexture.width), 1/float32(glTexture.height)
	u0, v0 := float32(src.Min.X)*invW, float32(src.Min.Y)*invH
	u1, v1 := float32(src.Max.X)*invW, float32(src.Max.Y)*invH
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	corner := func(x, y, u, v float32) {
		pt := transform.Mul3x1(mgl32.Vec3{x, y, 1})
		vertices = append(vertices, pt.X(), pt.Y(), u, v, r, g, b, a)
	}
	corner(0, 0, u0, v0)
	corner(w, 0, u1, v0)
	corner(w, h, u1, v1)
	corner(0, 0, u0, v0)
	corner(w, h, u1, v1)
	corner(0, h, u0, v1)
	self.vertices[glTexture] = vertices
}

// Returns the number of quads in the batch.
func (self *Batch) Quads() int {
	count := 0
	for _, vertices := range self.vertices {
		count += len(vertices)/(VertexSize*6)
	}
	return count
}

// Calls the given function for each texture in first use order with
// its vertices, then empties the batch.
func (self *Batch) Flush(fn func(texture *Texture, vertices []float32)) {
	for _, texture := range self.order {
		fn(texture, self.vertices[texture])
	}
	self.Reset()
}

// Empties the batch.
func (self *Batch) Reset() {
	self.order = self.order[ : 0]
	clear(self.vertices)
}

// Flushes the batch drawing triangles with the given vertex array and
// buffer. The vertex array must use the [VertexSize] layout and the
// shader must already be in use, with its sampler on texture unit 0.
func (self *Batch) Render(vao, vbo uint32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.ActiveTexture(gl.TEXTURE0)
	self.Flush(func(texture *Texture, vertices []float32) {
		gl.BindTexture(gl.TEXTURE_2D, texture.id)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/VertexSize))
	})
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
