package richtext

import "image"

// A line of a [Layout].
type Line struct {
	chunks []Chunk
	size image.Point
	top int
	count int
	textStart int
}

// Returns the chunks of the line, from left to right.
func (self *Line) Chunks() []Chunk { return self.chunks }

// Returns the size of the line in pixels.
func (self *Line) Size() image.Point { return self.size }

// Returns the y coordinate of the top of the line, relative to
// the top of the layout.
func (self *Line) Top() int { return self.top }

// Returns the number of runes shown on the line, not counting an
// ellipsis added by the layout.
func (self *Line) Count() int { return self.count }

// Returns the index of the first rune of the line within the
// layout text, where each line break counts as one rune.
func (self *Line) TextStartIndex() int { return self.textStart }

// Returns the text chunks of the line concatenated.
func (self *Line) Text() string {
	var text []byte
	for _, chunk := range self.chunks {
		if textChunk, isText := chunk.(*TextChunk); isText {
			text = append(text, textChunk.text...)
		}
	}
	return string(text)
}
