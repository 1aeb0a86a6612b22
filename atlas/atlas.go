package atlas

import "image"

import "github.com/pkg/errors"

// Placement status.
type Status uint8
const (
	Placed Status = iota
	Full
)

func (self Status) String() string {
	if self == Placed { return "Placed" }
	return "Full"
}

// The result of [Atlas.Place]. Rect is only meaningful when the
// status is [Placed].
type Placement struct {
	Status Status
	Rect image.Rectangle
}

// An Atlas is a skyline packer paired with the texture that receives
// the rasterized glyphs. The texture is created lazily on the first
// [Atlas.RenderGlyph] call unless one is given at construction.
type Atlas struct {
	packer  *Skyline
	texture Texture
	pixels  []byte // glyph rasterization buffer
	zeros   []byte // padded area clearing buffer
}

// Creates a new atlas of the given size without a texture.
func New(width, height int) *Atlas {
	return &Atlas{ packer: NewSkyline(width, height) }
}

// Creates an atlas on top of an existing texture. The atlas takes the
// size of the texture, and the given used space is reserved so glyphs
// are never placed over it. An empty usedSpace reserves nothing.
func NewWithTexture(texture Texture, usedSpace image.Rectangle) (*Atlas, error) {
	bounds := texture.Bounds()
	atlas := New(bounds.Dx(), bounds.Dy())
	atlas.texture = texture
	err := atlas.packer.MarkUsed(usedSpace)
	if err != nil {
		return nil, errors.Wrap(err, "atlas: marking existing texture space")
	}
	return atlas, nil
}

func (self *Atlas) Width() int { return self.packer.Width() }
func (self *Atlas) Height() int { return self.packer.Height() }

// Returns the atlas texture, or nil if nothing has been rendered yet.
func (self *Atlas) Texture() Texture { return self.texture }

// Returns the fraction of the atlas area considered used.
func (self *Atlas) Utilization() float64 { return self.packer.Utilization() }

// Returns a copy of the underlying skyline nodes.
func (self *Atlas) Nodes() []Node { return self.packer.Nodes() }

// Reserves a region of the given size. The returned placement has
// status [Full] when the atlas has no room for it.
func (self *Atlas) Place(width, height int) Placement {
	x, y, ok := self.packer.Insert(width, height)
	if !ok {
		tracer().Debugf("atlas %dx%d full for %dx%d rect", self.Width(), self.Height(), width, height)
		return Placement{ Status: Full }
	}
	return Placement{ Status: Placed, Rect: image.Rect(x, y, x + width, y + height) }
}

// RenderGlyph clears the glyph rect enlarged by pad on each side
// (clamped to the atlas bounds), then calls rasterize with a zeroed
// RGBA8 buffer of rect's size and uploads the result to rect.
//
// The texture is created through the manager if the atlas doesn't
// have one yet.
func (self *Atlas) RenderGlyph(manager TextureManager, rect image.Rectangle, pad int, rasterize func(pixels []byte, stride int) error) error {
	if rect.Empty() { return nil }
	if self.texture == nil {
		texture, err := manager.CreateTexture(self.Width(), self.Height())
		if err != nil { return errors.Wrap(err, "atlas: creating texture") }
		tracer().Infof("created %dx%d atlas texture", self.Width(), self.Height())
		self.texture = texture
	}

	// erase the padded area
	bounds := image.Rect(0, 0, self.Width(), self.Height())
	eraseArea := rect.Inset(-pad).Intersect(bounds)
	self.zeros = growZeroed(self.zeros, eraseArea.Dx()*eraseArea.Dy()*4)
	err := manager.UploadRegion(self.texture, eraseArea, self.zeros)
	if err != nil { return errors.Wrap(err, "atlas: clearing glyph area") }

	// rasterize and upload
	stride := rect.Dx()*4
	self.pixels = growZeroed(self.pixels, stride*rect.Dy())
	err = rasterize(self.pixels, stride)
	if err != nil { return err }
	err = manager.UploadRegion(self.texture, rect, self.pixels)
	if err != nil { return errors.Wrap(err, "atlas: uploading glyph") }
	return nil
}

// Returns a zeroed buffer of the given size, reusing the given
// one when its capacity is enough.
func growZeroed(buffer []byte, size int) []byte {
	if cap(buffer) < size { return make([]byte, size) }
	buffer = buffer[:size]
	for i := range buffer { buffer[i] = 0 }
	return buffer
}
