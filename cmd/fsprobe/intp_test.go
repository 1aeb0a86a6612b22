package main

import "fmt"
import "image"
import "image/png"
import "os"
import "path/filepath"
import "testing"

import "github.com/pkg/errors"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/backend/software"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"
import "github.com/tinne26/fontstash/richtext"

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand("rich Hello /c[red]world")
	if err != nil { t.Fatal(err) }
	if cmd.op != opRich || cmd.arg != "Hello /c[red]world" {
		t.Fatalf("unexpected command %+v", cmd)
	}

	cmd, err = parseCommand("width 240")
	if err != nil { t.Fatal(err) }
	if cmd.op != opWidth || cmd.value != 240 { t.Fatalf("unexpected command %+v", cmd) }

	cmd, err = parseCommand("fonts")
	if err != nil || cmd.op != opFonts { t.Fatalf("unexpected command %+v (%v)", cmd, err) }

	cmd, err = parseCommand("ellipsis char")
	if err != nil { t.Fatal(err) }
	if cmd.method != richtext.EllipsisCharacter { t.Fatalf("unexpected method %s", cmd.method) }

	for _, line := range []string{"width -3", "height x", "ellipsis dots", "measure"} {
		if _, err := parseCommand(line); err == nil {
			t.Fatalf("%q: expected an error", line)
		}
	}
	if _, err := parseCommand("frobnicate"); !errors.Is(err, errUnknownCommand) {
		t.Fatalf("expected errUnknownCommand, got %v", err)
	}
}

func TestUnescape(t *testing.T) {
	if unescape(`a\nb`) != "a\nb" { t.Fatalf("expected a line break") }
}

func writeTestFile(t *testing.T, name string, data []byte) string {
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, data, 0o644)
	if err != nil { t.Fatal(err) }
	return path
}

func writeTestPNG(t *testing.T, width, height int) string {
	path := filepath.Join(t.TempDir(), "dot.png")
	file, err := os.Create(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	err = png.Encode(file, image.NewRGBA(image.Rect(0, 0, width, height)))
	if err != nil { t.Fatal(err) }
	return path
}

func TestLoadFonts(t *testing.T) {
	system, err := fontstash.NewFontSystem(fontstash.DefaultConfig())
	if err != nil { t.Fatal(err) }
	library := font.NewLibrary()
	paths := []string{
		writeTestFile(t, "regular.ttf", goregular.TTF),
		writeTestFile(t, "bold.ttf", gobold.TTF),
	}
	names, err := loadFonts(system, library, paths, false)
	if err != nil { t.Fatal(err) }
	if len(names) != 2 || library.Size() != 2 { t.Fatalf("expected 2 fonts, got %v", names) }
	if library.GetSource(names[0]).HasBold() { t.Fatalf("%s: expected the regular font first", names[0]) }
	if !library.GetSource(names[1]).HasBold() { t.Fatalf("%s: expected the bold font second", names[1]) }
	if len(system.Sources()) != 2 || system.Sources()[0] != library.GetSource(names[0]) {
		t.Fatalf("expected the system sources in flag order")
	}

	_, err = loadFonts(system, font.NewLibrary(), []string{writeTestFile(t, "font.txt", goregular.TTF)}, false)
	if err == nil { t.Fatalf("expected an error for a non-font extension") }

	names, err = loadFonts(system, font.NewLibrary(), nil, false)
	if err != nil { t.Fatal(err) }
	if len(names) != 1 { t.Fatalf("expected the default font, got %v", names) }
}

func TestLoadImages(t *testing.T) {
	manager := software.NewRenderer(nil).TextureManager()
	images, err := loadImages(manager, []string{"dot=" + writeTestPNG(t, 3, 2)})
	if err != nil { t.Fatal(err) }
	if images["dot"] == nil || images["dot"].Size() != image.Pt(3, 2) {
		t.Fatalf("unexpected images %v", images)
	}
	for _, spec := range []string{"dot", "=x.png", "dot=", "dot=missing.png"} {
		_, err := loadImages(manager, []string{spec})
		if err == nil { t.Fatalf("%q: expected an error", spec) }
	}
}

func TestIntpLayoutResolvers(t *testing.T) {
	system, err := fontstash.NewFontSystem(fontstash.DefaultConfig())
	if err != nil { t.Fatal(err) }
	library := font.NewLibrary()
	paths := []string{writeTestFile(t, "regular.ttf", goregular.TTF), writeTestFile(t, "bold.ttf", gobold.TTF)}
	names, err := loadFonts(system, library, paths, false)
	if err != nil { t.Fatal(err) }
	renderer := software.NewRenderer(nil)
	images, err := loadImages(renderer.TextureManager(), []string{"dot=" + writeTestPNG(t, 3, 2)})
	if err != nil { t.Fatal(err) }

	intp := &Intp{
		system: system,
		library: library,
		fonts: richtext.LibraryFontResolver(library, system.Config()),
		images: richtext.MapImageResolver(images),
		renderer: renderer,
		size: 16,
	}
	layout, err := intp.layout(fmt.Sprintf("/f[%s, 20]hi/fd/i[dot]", names[1]))
	if err != nil { t.Fatal(err) }
	lines := layout.Lines()
	if layout.Err() != nil { t.Fatal(layout.Err()) }
	if len(lines) != 1 || len(lines[0].Chunks()) != 2 { t.Fatalf("expected one line with two chunks") }

	text, isText := lines[0].Chunks()[0].(*richtext.TextChunk)
	if !isText || text.Text() != "hi" { t.Fatalf("expected a text chunk first") }
	dynFont, isDynamic := text.Font().(*fontstash.DynamicFont)
	if !isDynamic || dynFont.Size() != fract.FromInt(20) {
		t.Fatalf("expected the resolved font at size 20, got %T", text.Font())
	}
	picture, isImage := lines[0].Chunks()[1].(*richtext.ImageChunk)
	if !isImage || picture.Renderable() != images["dot"] { t.Fatalf("expected the image chunk second") }

	layout, err = intp.layout("/f[Missing Sans]x/i[nope]")
	if err != nil { t.Fatal(err) }
	layout.Lines()
	if !errors.Is(layout.Err(), richtext.ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", layout.Err())
	}
}
