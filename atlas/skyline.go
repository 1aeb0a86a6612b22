package atlas

import "image"
import "strconv"

import "github.com/pkg/errors"

// A segment of the skyline: the horizontal span [X, X + Width) is
// occupied up to Y, and free from Y downwards.
type Node struct {
	X int
	Y int
	Width int
}

// ErrUsedSpaceOutOfBounds is returned by [Skyline.MarkUsed] when the
// given region doesn't lie within the skyline surface.
var ErrUsedSpaceOutOfBounds = errors.New("atlas: used space out of bounds")

// Skyline is an online 2D bin packer. It keeps the occupied height
// profile of the surface as a list of contiguous nodes ordered by x,
// always covering [0, width).
//
// Insertion is a linear scan over the nodes, choosing the placement
// with the lowest resulting top edge and breaking ties with the
// narrowest node.
type Skyline struct {
	width  int
	height int
	nodes  []Node
}

// Creates a new skyline for a surface of the given size.
// Non-positive sizes will panic.
func NewSkyline(width, height int) *Skyline {
	skyline := &Skyline{ nodes: make([]Node, 0, 256) }
	skyline.Reset(width, height)
	return skyline
}

func (self *Skyline) Width() int { return self.width }
func (self *Skyline) Height() int { return self.height }

// Returns a copy of the current skyline nodes.
func (self *Skyline) Nodes() []Node {
	nodes := make([]Node, len(self.nodes))
	copy(nodes, self.nodes)
	return nodes
}

// Clears the skyline and sets a new surface size.
func (self *Skyline) Reset(width, height int) {
	if width <= 0 || height <= 0 {
		panic("invalid skyline size " + strconv.Itoa(width) + "x" + strconv.Itoa(height))
	}
	self.width, self.height = width, height
	self.nodes = self.nodes[:0]
	self.nodes = append(self.nodes, Node{ X: 0, Y: 0, Width: width })
}

// Finds room for a rectangle of the given size. If no node admits the
// rectangle, ok will be false and the skyline remains unmodified.
// Zero area rectangles are positioned but leave the skyline untouched.
func (self *Skyline) Insert(width, height int) (x, y int, ok bool) {
	if width < 0 || height < 0 { panic("negative rect size") }

	bestIndex, bestX, bestY := -1, -1, -1
	bestTop, bestWidth := 0, 0
	for i, node := range self.nodes {
		y, fits := self.rectFits(i, width, height)
		if !fits { continue }
		top := y + height
		if bestIndex == -1 || top < bestTop || (top == bestTop && node.Width < bestWidth) {
			bestIndex = i
			bestWidth = node.Width
			bestTop = top
			bestX, bestY = node.X, y
		}
	}

	if bestIndex == -1 { return 0, 0, false }
	if width == 0 || height == 0 { return bestX, bestY, true }
	self.addLevel(bestIndex, bestX, bestY, width, height)
	return bestX, bestY, true
}

// Raises the skyline so the given region is considered occupied.
// Meant to be used on fresh skylines, to reserve the space already
// taken in a preexisting texture.
func (self *Skyline) MarkUsed(region image.Rectangle) error {
	bounds := image.Rect(0, 0, self.width, self.height)
	if region.Empty() { return nil }
	if !region.In(bounds) {
		return errors.Wrapf(ErrUsedSpaceOutOfBounds, "%v not in %v", region, bounds)
	}

	index := self.splitAt(region.Min.X)
	self.addLevel(index, region.Min.X, region.Min.Y, region.Dx(), region.Dy())
	return nil
}

// Returns the fraction of the surface area below the skyline.
// Space trapped under placed rectangles counts as used.
func (self *Skyline) Utilization() float64 {
	used := 0
	for _, node := range self.nodes {
		used += node.Y*node.Width
	}
	return float64(used)/float64(self.width*self.height)
}

// Returns the lowest y at which a rect of the given size starting at
// the x of the node at the given index would rest, or false if the
// rect would leave the surface.
func (self *Skyline) rectFits(index, width, height int) (int, bool) {
	x := self.nodes[index].X
	if x + width > self.width { return 0, false }

	y := self.nodes[index].Y
	spaceLeft := width
	for spaceLeft > 0 {
		if index == len(self.nodes) { return 0, false }
		if self.nodes[index].Y > y { y = self.nodes[index].Y }
		if y + height > self.height { return 0, false }
		spaceLeft -= self.nodes[index].Width
		index += 1
	}
	if y + height > self.height { return 0, false }
	return y, true
}

// Inserts a node for a rect placed at (x, y), shrinking or removing
// the following nodes it overlaps and merging nodes at equal heights.
func (self *Skyline) addLevel(index, x, y, width, height int) {
	self.insertNode(index, Node{ X: x, Y: y + height, Width: width })

	for i := index + 1; i < len(self.nodes); i++ {
		prev := self.nodes[i - 1]
		prevEnd := prev.X + prev.Width
		if self.nodes[i].X >= prevEnd { break }

		shrink := prevEnd - self.nodes[i].X
		self.nodes[i].X += shrink
		self.nodes[i].Width -= shrink
		if self.nodes[i].Width > 0 { break }

		// zero or negative width nodes are fully covered: the next
		// node might still overlap, so keep going
		self.removeNode(i)
		i -= 1
	}

	for i := 0; i < len(self.nodes) - 1; i++ {
		if self.nodes[i].Y != self.nodes[i + 1].Y { continue }
		self.nodes[i].Width += self.nodes[i + 1].Width
		self.removeNode(i + 1)
		i -= 1
	}
}

// Splits the node containing x so a node starts exactly at x,
// returning the index of that node.
func (self *Skyline) splitAt(x int) int {
	for i, node := range self.nodes {
		if node.X == x { return i }
		if x > node.X && x < node.X + node.Width {
			left := x - node.X
			self.nodes[i].Width = left
			self.insertNode(i + 1, Node{ X: x, Y: node.Y, Width: node.Width - left })
			return i + 1
		}
	}
	return len(self.nodes)
}

func (self *Skyline) insertNode(index int, node Node) {
	self.nodes = append(self.nodes, Node{})
	copy(self.nodes[index + 1:], self.nodes[index:])
	self.nodes[index] = node
}

func (self *Skyline) removeNode(index int) {
	copy(self.nodes[index:], self.nodes[index + 1:])
	self.nodes = self.nodes[:len(self.nodes) - 1]
}
