package main

import "image"
import "image/draw"
import _ "image/png"
import "os"
import "strings"

import "github.com/pkg/errors"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/font/gotext"
import "github.com/tinne26/fontstash/richtext"

// Repeatable flag values.
type flagList []string

func (self *flagList) String() string { return strings.Join(*self, ",") }
func (self *flagList) Set(value string) error {
	*self = append(*self, value)
	return nil
}

// Parses the fonts at the given paths into a library and adds them
// to the system in the same order, as fallbacks of the first one.
// Without paths, Go Regular is used. Returns the library names.
func loadFonts(system *fontstash.FontSystem, library *font.Library, paths []string, useGoText bool) ([]string, error) {
	var names []string
	if len(paths) == 0 {
		name, err := addFontBytes(library, goregular.TTF, useGoText)
		if err != nil { return nil, err }
		names = append(names, name)
	}
	for _, path := range paths {
		var name string
		var err error
		if useGoText {
			var data []byte
			data, err = os.ReadFile(path)
			if err == nil { name, err = addFontBytes(library, data, true) }
		} else {
			name, err = library.ParseFromPath(path)
		}
		if err != nil { return nil, errors.Wrap(err, path) }
		tracer().Infof("loaded font %q from %s", name, path)
		names = append(names, name)
	}

	for _, name := range names {
		system.AddSource(library.GetSource(name))
	}
	return names, nil
}

func addFontBytes(library *font.Library, data []byte, useGoText bool) (string, error) {
	if !useGoText { return library.ParseFromBytes(data) }
	source, err := gotext.Parse(data)
	if err != nil { return "", err }
	name := source.Family()
	return name, library.AddSource(name, source)
}

// Loads the images given as id=path.png into textures created with
// the given manager.
func loadImages(manager atlas.TextureManager, specs []string) (map[string]richtext.Renderable, error) {
	images := make(map[string]richtext.Renderable, len(specs))
	for _, spec := range specs {
		id, path, found := strings.Cut(spec, "=")
		if !found || id == "" || path == "" {
			return nil, errors.Errorf("image %q: expected id=path", spec)
		}
		fragment, err := loadImage(manager, path)
		if err != nil { return nil, errors.Wrapf(err, "image %q", id) }
		images[id] = fragment
	}
	return images, nil
}

func loadImage(manager atlas.TextureManager, path string) (*richtext.TextureFragment, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()
	decoded, _, err := image.Decode(file)
	if err != nil { return nil, err }

	bounds := image.Rect(0, 0, decoded.Bounds().Dx(), decoded.Bounds().Dy())
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, decoded, decoded.Bounds().Min, draw.Src)
	texture, err := manager.CreateTexture(bounds.Dx(), bounds.Dy())
	if err != nil { return nil, err }
	err = manager.UploadRegion(texture, bounds, rgba.Pix)
	if err != nil { return nil, err }
	return richtext.NewTextureFragment(texture), nil
}
