package font

import "sync/atomic"

import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"

var ErrNotFound = errors.New("font: property not found or empty")

// One shared sfnt.Buffer for property lookups. It's only used if no
// one else is using it at the moment; otherwise sfnt allocates.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of Regular, Italic, Bold or Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that none of the given sources
// can represent, in order of appearance and without repetitions.
//
// If you load fonts dynamically, this is a good way to make sure that
// your fallback chain covers all the glyphs that you require.
func MissingRunes(text string, sources ...Source) []rune {
	var missing []rune
	seen := make(map[rune]struct{})
	for _, codepoint := range text {
		if _, done := seen[codepoint]; done { continue }
		seen[codepoint] = struct{}{}
		found := false
		for _, source := range sources {
			if _, found = source.GlyphID(codepoint); found { break }
		}
		if !found { missing = append(missing, codepoint) }
	}
	return missing
}
