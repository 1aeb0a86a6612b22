package richtext

import "image/color"

import "github.com/go-gl/mathgl/mgl32"
import "github.com/pkg/errors"

import "github.com/tinne26/fontstash"

// Horizontal alignment of the lines of a [Layout].
type Align uint8
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (self Align) String() string {
	switch self {
	case AlignLeft: return "Left"
	case AlignCenter: return "Center"
	case AlignRight: return "Right"
	default:
		return "UnknownAlign"
	}
}

// Optional parameters for [Layout.Draw]. A nil *DrawOptions aligns
// lines to the left.
type DrawOptions struct {
	Align Align
}

// Draws the layout with its top-left corner at the given position.
// Chunks without a color of their own are drawn with clr. Lines are
// aligned within the layout width when set, or within the widest
// line otherwise.
func (self *Layout) Draw(renderer fontstash.Renderer, position mgl32.Vec2, clr color.RGBA, opts *DrawOptions) error {
	lines := self.Lines()
	if len(lines) == 0 { return self.err }

	var align Align
	if opts != nil { align = opts.Align }
	layoutWidth := self.width
	if layoutWidth <= 0 { layoutWidth = self.size.X }

	textOpts := &fontstash.TextOptions{ CharacterSpacing: self.characterSpacing }
	for i, line := range lines {
		var offsetX int
		switch align {
		case AlignCenter: offsetX = (layoutWidth - line.size.X)/2
		case AlignRight: offsetX = layoutWidth - line.size.X
		}
		for _, chunk := range line.chunks {
			chunkPos := chunk.Position()
			pos := position.Add(mgl32.Vec2{ float32(chunkPos.X + offsetX), float32(chunkPos.Y) })
			err := chunk.draw(renderer, pos, clr, textOpts)
			if err != nil { return errors.Wrapf(err, "drawing line %d", i) }
		}
	}
	return nil
}
