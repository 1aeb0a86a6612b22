package richtext

import "github.com/pkg/errors"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/font"

// Returned when the markup uses fonts or images and the layout has
// no resolver for them.
var ErrResolverMissing = errors.New("richtext: no resolver for the command")

// Returned by the provided resolvers for unknown names and ids.
var ErrUnknownResource = errors.New("richtext: unknown resource")

// Returned when laying out without a default font.
var ErrNoFont = errors.New("richtext: layout without a default font")

// Resolves the font for a /f[name, size] command. The size is zero
// when not given in the markup.
type FontResolver func(name string, size float32) (fontstash.Font, error)

// Resolves the element for an /i[id] command.
type ImageResolver func(id string) (Renderable, error)

// Returns a resolver that looks up fonts by name on the given library.
// Each name gets its own [fontstash.FontSystem], created with the given
// config on first use. Sizes default to 16.
func LibraryFontResolver(library *font.Library, config fontstash.Config) FontResolver {
	systems := make(map[string]*fontstash.FontSystem)
	return func(name string, size float32) (fontstash.Font, error) {
		if size <= 0 { size = 16 }
		system, found := systems[name]
		if !found {
			source := library.GetSource(name)
			if source == nil { return nil, errors.Wrapf(ErrUnknownResource, "font %q", name) }
			var err error
			system, err = fontstash.NewFontSystem(config)
			if err != nil { return nil, err }
			system.AddSource(source)
			systems[name] = system
		}
		dynFont, err := system.Font(size)
		if err != nil { return nil, err }
		return dynFont, nil
	}
}

// Returns a resolver that looks up images on the given map.
func MapImageResolver(images map[string]Renderable) ImageResolver {
	return func(id string) (Renderable, error) {
		image, found := images[id]
		if !found { return nil, errors.Wrapf(ErrUnknownResource, "image %q", id) }
		return image, nil
	}
}
