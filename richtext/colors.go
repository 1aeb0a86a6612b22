package richtext

import "image/color"
import "strconv"
import "strings"

import "golang.org/x/image/colornames"
import "github.com/pkg/errors"

// Returned by [ParseColor]() for unknown color names and malformed
// hex codes.
var ErrUnknownColor = errors.New("richtext: unknown color")

// Parses a color given by its SVG name (case insensitive) or as a hex
// code in the #rrggbb or #rrggbbaa forms.
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return color.RGBA{}, errors.Wrapf(ErrUnknownColor, "%q", value)
		}
		rgba, err := strconv.ParseUint(hex, 16, 32)
		if err != nil { return color.RGBA{}, errors.Wrapf(ErrUnknownColor, "%q", value) }
		if len(hex) == 6 { rgba = rgba << 8 | 0xFF }
		return color.RGBA{
			R: uint8(rgba >> 24), G: uint8(rgba >> 16),
			B: uint8(rgba >> 8), A: uint8(rgba),
		}, nil
	}

	named, found := colornames.Map[strings.ToLower(value)]
	if !found { return color.RGBA{}, errors.Wrapf(ErrUnknownColor, "%q", value) }
	return named, nil
}
