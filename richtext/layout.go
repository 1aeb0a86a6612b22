package richtext

import "image"
import "image/color"
import "math"
import "strings"
import "unicode"
import "unicode/utf8"

import "github.com/go-gl/mathgl/mgl32"
import "github.com/pkg/errors"
import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/fontstash"

// Determines how the last visible line of a [Layout] is shortened
// when lines are dropped because they don't fit the height.
type AutoEllipsisMethod uint8
const (
	EllipsisNone AutoEllipsisMethod = iota
	EllipsisCharacter // cut at any rune
	EllipsisWord // cut at whitespace
)

func (self AutoEllipsisMethod) String() string {
	switch self {
	case EllipsisNone: return "None"
	case EllipsisCharacter: return "Character"
	case EllipsisWord: return "Word"
	default:
		return "UnknownEllipsisMethod"
	}
}

// The string added at the end of truncated lines by default.
const DefaultEllipsis = "…"

// Layout arranges rich text markup into lines of chunks.
//
// The layout is recomputed lazily after any setter is called, and
// only when results are requested. A Layout is not safe for
// concurrent use.
type Layout struct {
	text string
	font fontstash.Font
	width int
	height int
	verticalSpacing int
	characterSpacing float32
	ellipsisMethod AutoEllipsisMethod
	ellipsis string
	shiftByTop bool
	calculateGlyphs bool
	fontResolver FontResolver
	imageResolver ImageResolver

	dirty bool
	lines []*Line
	size image.Point
	err error
}

// Creates a layout for the given markup with the given default font.
// Vertical offsets shift chunk tops by default, see [Layout.SetShiftByTop].
func NewLayout(text string, font fontstash.Font) *Layout {
	return &Layout{
		text: text,
		font: font,
		ellipsis: DefaultEllipsis,
		shiftByTop: true,
		dirty: true,
	}
}

func (self *Layout) Text() string { return self.text }
func (self *Layout) SetText(text string) {
	if text == self.text { return }
	self.text = text
	self.dirty = true
}

// Returns the font used for text outside /f commands.
func (self *Layout) Font() fontstash.Font { return self.font }
func (self *Layout) SetFont(font fontstash.Font) {
	self.font = font
	self.dirty = true
}

// Returns the maximum line width in pixels. Zero means unconstrained.
func (self *Layout) Width() int { return self.width }
func (self *Layout) SetWidth(width int) {
	if width < 0 { width = 0 }
	if width == self.width { return }
	self.width = width
	self.dirty = true
}

// Returns the maximum height in pixels. Zero means unconstrained.
func (self *Layout) Height() int { return self.height }
func (self *Layout) SetHeight(height int) {
	if height < 0 { height = 0 }
	if height == self.height { return }
	self.height = height
	self.dirty = true
}

// Returns the gap between consecutive lines, in pixels.
func (self *Layout) VerticalSpacing() int { return self.verticalSpacing }
func (self *Layout) SetVerticalSpacing(spacing int) {
	if spacing == self.verticalSpacing { return }
	self.verticalSpacing = spacing
	self.dirty = true
}

// Returns the extra space between consecutive glyphs, in pixels.
func (self *Layout) CharacterSpacing() float32 { return self.characterSpacing }
func (self *Layout) SetCharacterSpacing(spacing float32) {
	if spacing == self.characterSpacing { return }
	self.characterSpacing = spacing
	self.dirty = true
}

func (self *Layout) EllipsisMethod() AutoEllipsisMethod { return self.ellipsisMethod }
func (self *Layout) SetEllipsisMethod(method AutoEllipsisMethod) {
	if method == self.ellipsisMethod { return }
	self.ellipsisMethod = method
	self.dirty = true
}

// Returns the string added to truncated lines. Defaults to [DefaultEllipsis].
func (self *Layout) Ellipsis() string { return self.ellipsis }
func (self *Layout) SetEllipsis(ellipsis string) {
	if ellipsis == self.ellipsis { return }
	self.ellipsis = ellipsis
	self.dirty = true
}

// When true, chunks on a line are aligned by their tops and vertical
// offsets move them from there. When false, chunks are aligned by
// their baselines instead.
func (self *Layout) ShiftByTop() bool { return self.shiftByTop }
func (self *Layout) SetShiftByTop(shiftByTop bool) {
	if shiftByTop == self.shiftByTop { return }
	self.shiftByTop = shiftByTop
	self.dirty = true
}

// Whether [TextChunk.Glyphs] are computed.
func (self *Layout) CalculateGlyphs() bool { return self.calculateGlyphs }
func (self *Layout) SetCalculateGlyphs(calculate bool) {
	if calculate == self.calculateGlyphs { return }
	self.calculateGlyphs = calculate
	self.dirty = true
}

func (self *Layout) SetFontResolver(resolver FontResolver) {
	self.fontResolver = resolver
	self.dirty = true
}

func (self *Layout) SetImageResolver(resolver ImageResolver) {
	self.imageResolver = resolver
	self.dirty = true
}

// Returns the lines of the layout, recomputing them if needed.
// The returned lines must not be modified.
func (self *Layout) Lines() []*Line {
	self.update()
	return self.lines
}

// Returns the size of the layout in pixels.
func (self *Layout) Size() image.Point {
	self.update()
	return self.size
}

// Returns the first error found while resolving fonts and images
// during the last computation, or [ErrNoFont] if the layout has no
// default font. The layout remains usable on errors: chunks that
// couldn't be resolved are left empty.
func (self *Layout) Err() error {
	self.update()
	return self.err
}

func (self *Layout) update() {
	if !self.dirty { return }
	self.dirty = false
	self.lines = nil
	self.size = image.Point{}
	self.err = nil
	if self.font == nil {
		self.err = ErrNoFont
		return
	}

	items := self.buildItems(Parse(norm.NFC.String(self.text)))
	wrapped := self.wrap(items)
	lines := make([]*Line, len(wrapped))
	top := 0
	for i, segs := range wrapped {
		lines[i] = self.buildLine(items, segs, "")
		lines[i].top = top
		top += lines[i].size.Y + self.verticalSpacing
	}

	if self.height > 0 {
		keep := 1
		for keep < len(lines) && lines[keep].top + lines[keep].size.Y <= self.height {
			keep += 1
		}
		if keep < len(lines) {
			tracer().Debugf("layout: dropping %d of %d lines", len(lines) - keep, len(lines))
			lines = lines[ : keep]
			if self.ellipsisMethod != EllipsisNone {
				last := lines[keep - 1]
				truncated, ellipsis := self.truncate(items, wrapped[keep - 1])
				lines[keep - 1] = self.buildLine(items, truncated, ellipsis)
				lines[keep - 1].top = last.top
			}
		}
	}

	for _, line := range lines {
		self.size.X = max(self.size.X, line.size.X)
		for _, chunk := range line.chunks {
			chunk.base().position.Y += line.top
		}
		if self.calculateGlyphs { self.computeGlyphs(line) }
	}
	last := lines[len(lines) - 1]
	self.size.Y = last.top + last.size.Y
	self.lines = lines
	tracer().Debugf("layout: %d lines, size %v", len(lines), self.size)
}

func (self *Layout) fail(err error) {
	tracer().Errorf("richtext: %v", err)
	if self.err == nil { self.err = err }
}

// --- items ---

type itemKind uint8
const (
	itemText itemKind = iota
	itemImage
	itemSpace
	itemBreak
)

// A styled element of the markup. Commands that change the style are
// folded into the items that follow them.
type item struct {
	kind itemKind
	text string
	font fontstash.Font
	color *color.RGBA
	voffset int
	style fontstash.TextStyle
	renderable Renderable
	size image.Point
	runeStart int // index of the first rune within the layout text
}

func (self *Layout) buildItems(commands []Command) []item {
	var colors []*color.RGBA
	var fonts []fontstash.Font
	voffset := 0
	style := fontstash.NoTextStyle
	runeIndex := 0

	items := make([]item, 0, len(commands))
	current := func(kind itemKind) item {
		it := item{ kind: kind, font: self.font, voffset: voffset, style: style, runeStart: runeIndex }
		if len(colors) > 0 { it.color = colors[len(colors) - 1] }
		if len(fonts) > 0 { it.font = fonts[len(fonts) - 1] }
		return it
	}

	for _, cmd := range commands {
		switch cmd.Kind {
		case CmdText:
			it := current(itemText)
			it.text = cmd.Text
			items = append(items, it)
			runeIndex += utf8.RuneCountInString(cmd.Text)
		case CmdLineBreak:
			items = append(items, current(itemBreak))
			runeIndex += 1
		case CmdColor:
			clr := cmd.Color
			colors = append(colors, &clr)
		case CmdColorDefault:
			if len(colors) > 0 { colors = colors[ : len(colors) - 1] }
		case CmdFont:
			fonts = append(fonts, self.resolveFont(cmd.Text, cmd.Size))
		case CmdFontDefault:
			if len(fonts) > 0 { fonts = fonts[ : len(fonts) - 1] }
		case CmdVerticalOffset:
			voffset = cmd.Value
		case CmdVerticalOffsetDefault:
			voffset = 0
		case CmdImage:
			it := current(itemImage)
			it.renderable = self.resolveImage(cmd.Text)
			if it.renderable != nil { it.size = it.renderable.Size() }
			items = append(items, it)
		case CmdSpace:
			it := current(itemSpace)
			it.size = image.Pt(cmd.Value, 0)
			items = append(items, it)
		case CmdTextStyle:
			style = cmd.Style
		default:
			panic(cmd.Kind)
		}
	}
	return items
}

func (self *Layout) resolveFont(name string, size float32) fontstash.Font {
	if self.fontResolver == nil {
		self.fail(errors.Wrapf(ErrResolverMissing, "font %q", name))
		return nil
	}
	font, err := self.fontResolver(name, size)
	if err != nil {
		self.fail(errors.Wrapf(err, "resolving font %q", name))
		return nil
	}
	return font
}

func (self *Layout) resolveImage(id string) Renderable {
	if self.imageResolver == nil {
		self.fail(errors.Wrapf(ErrResolverMissing, "image %q", id))
		return nil
	}
	renderable, err := self.imageResolver(id)
	if err != nil {
		self.fail(errors.Wrapf(err, "resolving image %q", id))
		return nil
	}
	return renderable
}

// --- wrapping ---

// A part of an item on a line. For text items, start and end are
// byte offsets within the item text.
type segment struct {
	item int
	start, end int
}

type wrappedLine struct {
	segs []segment
	soft bool // ended by wrapping instead of a line break
	runeStart int
}

type wrapper struct {
	layout *Layout
	items []item
	lines []wrappedLine
	current wrappedLine
	closedWidth int // width of all segments but the last
}

func (self *Layout) wrap(items []item) []wrappedLine {
	w := wrapper{ layout: self, items: items }
	for i, it := range items {
		switch it.kind {
		case itemBreak:
			w.endLine(false, it.runeStart + 1)
		case itemText:
			for start := 0; start < len(it.text); {
				end := nextWord(it.text, start)
				w.addText(i, start, end)
				start = end
			}
		default:
			w.addBox(i)
		}
	}
	w.lines = append(w.lines, w.current)
	return w.lines
}

func (self *wrapper) fits(width int) bool {
	return self.layout.width <= 0 || width <= self.layout.width
}

func (self *wrapper) addText(index, start, end int) {
	it := &self.items[index]
	segs := self.current.segs
	if len(segs) > 0 && segs[len(segs) - 1].item == index && segs[len(segs) - 1].end == start {
		last := &segs[len(segs) - 1]
		text := strings.TrimRightFunc(it.text[last.start : end], unicode.IsSpace)
		if self.fits(self.closedWidth + self.layout.measure(it.font, text)) {
			last.end = end
			return
		}
	} else {
		text := strings.TrimRightFunc(it.text[start : end], unicode.IsSpace)
		width := self.closedWidth + self.lastWidth()
		if len(segs) == 0 || self.fits(width + self.layout.measure(it.font, text)) {
			self.push(segment{ index, start, end })
			return
		}
	}

	runeStart := it.runeStart + utf8.RuneCountInString(it.text[ : start])
	self.endLine(true, runeStart)
	self.push(segment{ index, start, end })
}

func (self *wrapper) addBox(index int) {
	width := self.closedWidth + self.lastWidth() + self.items[index].size.X
	if len(self.current.segs) > 0 && !self.fits(width) {
		self.endLine(true, self.items[index].runeStart)
	}
	self.push(segment{ item: index })
}

func (self *wrapper) push(seg segment) {
	self.closedWidth += self.lastWidth()
	self.current.segs = append(self.current.segs, seg)
}

func (self *wrapper) lastWidth() int {
	segs := self.current.segs
	if len(segs) == 0 { return 0 }
	return self.layout.segmentWidth(self.items, segs[len(segs) - 1])
}

func (self *wrapper) endLine(soft bool, nextRuneStart int) {
	self.current.soft = soft
	self.lines = append(self.lines, self.current)
	self.current = wrappedLine{ runeStart: nextRuneStart }
	self.closedWidth = 0
}

// Returns the end of the word starting at start, trailing whitespace
// included.
func nextWord(text string, start int) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i : ])
		if unicode.IsSpace(r) { break }
		i += size
	}
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i : ])
		if !unicode.IsSpace(r) { break }
		i += size
	}
	return i
}

func (self *Layout) measure(font fontstash.Font, text string) int {
	if font == nil || text == "" { return 0 }
	size := font.MeasureString(text, &fontstash.TextOptions{ CharacterSpacing: self.characterSpacing })
	return int(math.Ceil(float64(size.X())))
}

func (self *Layout) segmentWidth(items []item, seg segment) int {
	it := &items[seg.item]
	if it.kind == itemText { return self.measure(it.font, it.text[seg.start : seg.end]) }
	return it.size.X
}

// --- truncation ---

// Refills the given line from its start until the content followed
// by the ellipsis doesn't fit the width anymore. Returns the ellipsis
// to add, empty if not even the ellipsis fits.
func (self *Layout) truncate(items []item, line wrappedLine) (wrappedLine, string) {
	result := wrappedLine{ soft: self.ellipsisMethod == EllipsisWord, runeStart: line.runeStart }
	fits := func(segs []segment) bool {
		if self.width <= 0 { return true }
		candidate := wrappedLine{ segs: segs, soft: result.soft }
		return self.buildLine(items, candidate, self.ellipsis).size.X <= self.width
	}
	if !fits(nil) { return wrappedLine{ runeStart: line.runeStart }, "" }
	if len(line.segs) == 0 { return result, self.ellipsis }

	first := line.segs[0]
refill:
	for i := first.item; i < len(items); i++ {
		it := &items[i]
		switch it.kind {
		case itemBreak:
			break refill
		case itemText:
			start := 0
			if i == first.item { start = first.start }
			for start < len(it.text) {
				var end int
				if self.ellipsisMethod == EllipsisWord {
					end = nextWord(it.text, start)
				} else {
					_, size := utf8.DecodeRuneInString(it.text[start : ])
					end = start + size
				}
				candidate := extendSegments(result.segs, i, start, end)
				if !fits(candidate) { break refill }
				result.segs = candidate
				start = end
			}
		default:
			candidate := extendSegments(result.segs, i, 0, 0)
			if !fits(candidate) { break refill }
			result.segs = candidate
		}
	}
	return result, self.ellipsis
}

// Returns a copy of the segments with the given range added, merged
// into the last segment when contiguous.
func extendSegments(segs []segment, index, start, end int) []segment {
	result := make([]segment, len(segs), len(segs) + 1)
	copy(result, segs)
	if n := len(result); n > 0 && result[n - 1].item == index && result[n - 1].end == start && start != end {
		result[n - 1].end = end
		return result
	}
	return append(result, segment{ index, start, end })
}

// --- line building ---

// Creates the chunks for the given segments and positions them
// relative to the top-left corner of the line. A non-empty ellipsis
// is appended to the last text chunk, or as a chunk of its own with
// the default font.
func (self *Layout) buildLine(items []item, wrapped wrappedLine, ellipsis string) *Line {
	line := &Line{ textStart: wrapped.runeStart }
	lastSeg := len(wrapped.segs) - 1
	for i, seg := range wrapped.segs {
		it := &items[seg.item]
		base := chunkBase{ voffset: it.voffset, color: it.color }
		switch it.kind {
		case itemText:
			text := it.text[seg.start : seg.end]
			if wrapped.soft && i == lastSeg {
				text = strings.TrimRightFunc(text, unicode.IsSpace)
			}
			if text == "" { continue }
			line.count += utf8.RuneCountInString(text)
			line.chunks = append(line.chunks, &TextChunk{ chunkBase: base, text: text, font: it.font, style: it.style })
		case itemImage:
			base.size = it.size
			line.chunks = append(line.chunks, &ImageChunk{ chunkBase: base, renderable: it.renderable })
		case itemSpace:
			base.size = it.size
			line.chunks = append(line.chunks, &SpaceChunk{ chunkBase: base })
		}
	}

	if ellipsis != "" {
		var lastText *TextChunk
		if n := len(line.chunks); n > 0 {
			lastText, _ = line.chunks[n - 1].(*TextChunk)
		}
		if lastText != nil && lastText.font != nil {
			lastText.text += ellipsis
		} else {
			line.chunks = append(line.chunks, &TextChunk{ text: ellipsis, font: self.font })
		}
	}

	x := 0
	for _, chunk := range line.chunks {
		if textChunk, isText := chunk.(*TextChunk); isText && textChunk.font != nil {
			textChunk.size = image.Pt(self.measure(textChunk.font, textChunk.text), textChunk.font.LineHeight())
		}
		chunk.base().position.X = x
		x += chunk.Size().X
	}
	line.size.X = x
	self.placeVertically(line)
	return line
}

func (self *Layout) placeVertically(line *Line) {
	if self.shiftByTop {
		minOffset := 0
		for _, chunk := range line.chunks {
			minOffset = min(minOffset, chunk.VerticalOffset())
		}
		for _, chunk := range line.chunks {
			chunk.base().position.Y = chunk.VerticalOffset() - minOffset
		}
	} else {
		ascents := make([]int, len(line.chunks))
		baseline := math.MinInt
		for i, chunk := range line.chunks {
			ascents[i] = chunkAscent(chunk)
			baseline = max(baseline, ascents[i] - chunk.VerticalOffset())
		}
		for i, chunk := range line.chunks {
			chunk.base().position.Y = baseline - ascents[i] + chunk.VerticalOffset()
		}
	}

	for _, chunk := range line.chunks {
		line.size.Y = max(line.size.Y, chunk.Position().Y + chunk.Size().Y)
	}
	if line.size.Y == 0 { line.size.Y = self.font.LineHeight() }
}

func chunkAscent(chunk Chunk) int {
	switch typed := chunk.(type) {
	case *TextChunk:
		if typed.font == nil { return 0 }
		ascent, _ := typed.font.TextMetrics(typed.text)
		return ascent
	default:
		return chunk.Size().Y
	}
}

func (self *Layout) computeGlyphs(line *Line) {
	index := line.textStart
	for _, chunk := range line.chunks {
		textChunk, isText := chunk.(*TextChunk)
		if !isText || textChunk.font == nil { continue }
		opts := &fontstash.TextOptions{ CharacterSpacing: self.characterSpacing }
		position := mgl32.Vec2{ float32(textChunk.position.X), float32(textChunk.position.Y) }
		infos := textChunk.font.Glyphs(textChunk.text, position, opts)
		textChunk.glyphs = make([]TextChunkGlyph, len(infos))
		for i, info := range infos {
			textChunk.glyphs[i] = TextChunkGlyph{
				Index: index + i,
				Codepoint: info.Codepoint,
				Bounds: info.Bounds,
				XAdvance: info.XAdvance,
				LineTop: line.top,
				Chunk: textChunk,
			}
		}
		index += len(infos)
	}
}
