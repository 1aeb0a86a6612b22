// Command fsprobe is an interactive tool to inspect how fontstash
// measures, lays out and packs text.
//
// Usage:
//
//	fsprobe [-font path]... [-image id=path.png]... [-size px] [-trace level] [-atlas out.png]
//
// Fonts are used in the given order as fallbacks. Without fonts, the
// Go Regular font is used. Rich text can switch to any loaded font
// with /f[name], using the names listed by the fonts command, and
// embed the given images with /i[id].
package main

import "flag"
import "os"

import "github.com/chzyer/readline"
import "github.com/npillmayer/schuko/tracing"
import "github.com/npillmayer/schuko/tracing/gologadapter"
import "github.com/pterm/pterm"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/backend/software"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/richtext"

func tracer() tracing.Trace {
	return tracing.Select("fontstash")
}

func main() {
	initDisplay()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))

	var fonts, images flagList
	flag.Var(&fonts, "font", "Font file to load, repeat for fallbacks")
	flag.Var(&images, "image", "Image for rich text as id=path.png, repeatable")
	size := flag.Float64("size", 32, "Font size in pixels")
	level := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	atlasPath := flag.String("atlas", "fsprobe-atlas.png", "Output file for the atlas command")
	useGoText := flag.Bool("gotext", false, "Parse fonts with go-text instead of sfnt")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*level))

	system, err := fontstash.NewFontSystem(fontstash.DefaultConfig())
	if err != nil { fatal(err) }
	library := font.NewLibrary()
	_, err = loadFonts(system, library, fonts, *useGoText)
	if err != nil { fatal(err) }
	if len(fonts) == 0 { pterm.Info.Println("No fonts given, using Go Regular") }
	renderer := software.NewRenderer(nil)
	imageMap, err := loadImages(renderer.TextureManager(), images)
	if err != nil { fatal(err) }

	repl, err := readline.New("fsprobe > ")
	if err != nil { fatal(err) }
	defer repl.Close()

	intp := &Intp{
		repl: repl,
		system: system,
		size: float32(*size),
		library: library,
		fonts: richtext.LibraryFontResolver(library, system.Config()),
		images: richtext.MapImageResolver(imageMap),
		renderer: renderer,
		atlasPath: *atlasPath,
	}
	pterm.Info.Println("Type 'help' for commands, quit with <ctrl>D")
	intp.REPL()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func fatal(err error) {
	pterm.Error.Println(err.Error())
	os.Exit(1)
}
