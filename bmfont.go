package fontstash

import "bufio"
import "image"
import "io"
import "strconv"
import "strings"
import "unicode"

import "github.com/pkg/errors"
import "github.com/tinne26/fontstash/atlas"

// Returned by [LoadBMFont]() for descriptors it can't understand.
var ErrInvalidBMFont = errors.New("fontstash: invalid BMFont descriptor")

// Loads a static font from a descriptor in the AngelCode BMFont text
// format. The texture loader is called once per page with the file
// name given in the descriptor.
func LoadBMFont(descriptor io.Reader, textureLoader func(file string) (atlas.Texture, error)) (*StaticFont, error) {
	var size float32
	pages := make(map[int]atlas.Texture)
	type pendingKerning struct { first, second rune; amount int }
	var kernings []pendingKerning
	type pendingGlyph struct { codepoint rune; page int; region image.Rectangle; offset image.Point; advance int }
	var glyphs []pendingGlyph
	lineHeight, base := -1, -1

	scanner := bufio.NewScanner(descriptor)
	lineNum := 0
	for scanner.Scan() {
		lineNum += 1
		tag, attrs, err := parseBMFontLine(scanner.Text())
		if err != nil { return nil, errors.Wrapf(err, "line %d", lineNum) }
		switch tag {
		case "info":
			value, _ := attrs.int("size")
			if value < 0 { value = -value }
			size = float32(value)
		case "common":
			lineHeight, err = attrs.int("lineHeight")
			if err != nil { return nil, errors.Wrapf(err, "line %d", lineNum) }
			base, _ = attrs.int("base")
		case "page":
			id, err := attrs.int("id")
			if err != nil { return nil, errors.Wrapf(err, "line %d", lineNum) }
			texture, err := textureLoader(attrs["file"])
			if err != nil {
				return nil, errors.Wrapf(err, "fontstash: loading BMFont page %q", attrs["file"])
			}
			pages[id] = texture
		case "char":
			var values [8]int
			for i, key := range [...]string{"id", "x", "y", "width", "height", "xoffset", "yoffset", "xadvance"} {
				values[i], err = attrs.int(key)
				if err != nil { return nil, errors.Wrapf(err, "line %d", lineNum) }
			}
			page, _ := attrs.int("page")
			glyphs = append(glyphs, pendingGlyph{
				codepoint: rune(values[0]),
				page: page,
				region: image.Rect(values[1], values[2], values[1] + values[3], values[2] + values[4]),
				offset: image.Pt(values[5], values[6]),
				advance: values[7],
			})
		case "kerning":
			var values [3]int
			for i, key := range [...]string{"first", "second", "amount"} {
				values[i], err = attrs.int(key)
				if err != nil { return nil, errors.Wrapf(err, "line %d", lineNum) }
			}
			kernings = append(kernings, pendingKerning{ rune(values[0]), rune(values[1]), values[2] })
		}
	}
	err := scanner.Err()
	if err != nil { return nil, errors.Wrap(err, "fontstash: reading BMFont descriptor") }
	if lineHeight < 0 { return nil, errors.Wrap(ErrInvalidBMFont, "missing 'common' line") }

	staticFont := NewStaticFont(size, lineHeight, pages[0])
	if base >= 0 { staticFont.SetBase(base) }
	for _, glyph := range glyphs {
		texture, found := pages[glyph.page]
		if !found {
			return nil, errors.Wrapf(ErrInvalidBMFont, "char %d references undefined page %d", glyph.codepoint, glyph.page)
		}
		staticFont.AddGlyphOn(texture, glyph.codepoint, glyph.region, glyph.offset, glyph.advance)
	}
	for _, kerning := range kernings {
		staticFont.SetKerning(kerning.first, kerning.second, kerning.amount)
	}
	tracer().Debugf("BMFont loaded: %d glyphs, %d kerning pairs, %d pages", len(glyphs), len(kernings), len(pages))
	return staticFont, nil
}

type bmfontAttrs map[string]string

func (self bmfontAttrs) int(key string) (int, error) {
	raw, found := self[key]
	if !found { return 0, errors.Wrapf(ErrInvalidBMFont, "missing attribute '%s'", key) }
	value, err := strconv.Atoi(raw)
	if err != nil { return 0, errors.Wrapf(ErrInvalidBMFont, "attribute '%s' is not an integer", key) }
	return value, nil
}

// Splits a descriptor line into its tag and key=value attributes.
// Values may be quoted.
func parseBMFontLine(line string) (string, bmfontAttrs, error) {
	line = strings.TrimSpace(line)
	if line == "" { return "", nil, nil }
	end := strings.IndexFunc(line, unicode.IsSpace)
	if end == -1 { return line, bmfontAttrs{}, nil }

	tag, rest := line[:end], line[end:]
	attrs := make(bmfontAttrs)
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" { return tag, attrs, nil }
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 { return "", nil, errors.Wrapf(ErrInvalidBMFont, "malformed attribute in %q", line) }
		key := rest[:eq]
		rest = rest[eq + 1:]
		var value string
		if strings.HasPrefix(rest, "\"") {
			closing := strings.IndexByte(rest[1:], '"')
			if closing == -1 { return "", nil, errors.Wrapf(ErrInvalidBMFont, "unterminated quote in %q", line) }
			value, rest = rest[1 : closing + 1], rest[closing + 2:]
		} else {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end == -1 { end = len(rest) }
			value, rest = rest[:end], rest[end:]
		}
		attrs[key] = value
	}
}
