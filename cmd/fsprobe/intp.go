package main

import "fmt"
import "image"
import "image/color"
import "image/png"
import "os"
import "sort"
import "strconv"
import "strings"

import "github.com/chzyer/readline"
import "github.com/go-gl/mathgl/mgl32"
import "github.com/pkg/errors"
import "github.com/pterm/pterm"

import "github.com/tinne26/fontstash"
import "github.com/tinne26/fontstash/backend/software"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/richtext"

var errUnknownCommand = errors.New("unknown command")

type opCode int
const (
	opQuit opCode = iota
	opHelp
	opMeasure
	opGlyphs
	opRich
	opWidth
	opHeight
	opEllipsis
	opAtlas
	opFonts
)

var opMap = map[string]opCode{
	"quit": opQuit,
	"help": opHelp,
	"measure": opMeasure,
	"glyphs": opGlyphs,
	"rich": opRich,
	"width": opWidth,
	"height": opHeight,
	"ellipsis": opEllipsis,
	"atlas": opAtlas,
	"fonts": opFonts,
}

// A parsed REPL line.
type command struct {
	op opCode
	arg string
	value int // width and height
	method richtext.AutoEllipsisMethod
}

// Parses a REPL line. Text arguments are taken verbatim after the
// command name and a single space.
func parseCommand(line string) (command, error) {
	name, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	op, found := opMap[strings.ToLower(name)]
	if !found { return command{}, errors.Wrap(errUnknownCommand, name) }
	cmd := command{ op: op, arg: arg }

	switch op {
	case opMeasure, opGlyphs, opRich:
		if arg == "" { return cmd, errors.Errorf("%s: missing text", name) }
	case opWidth, opHeight:
		value, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || value < 0 {
			return cmd, errors.Errorf("%s: expected a non-negative integer, got %q", name, arg)
		}
		cmd.value = value
	case opEllipsis:
		switch strings.ToLower(strings.TrimSpace(arg)) {
		case "none": cmd.method = richtext.EllipsisNone
		case "char", "character": cmd.method = richtext.EllipsisCharacter
		case "word": cmd.method = richtext.EllipsisWord
		default:
			return cmd, errors.Errorf("ellipsis: expected none, char or word, got %q", arg)
		}
	}
	return cmd, nil
}

// Intp is the REPL interpreter.
type Intp struct {
	repl *readline.Instance
	system *fontstash.FontSystem
	library *font.Library
	fonts richtext.FontResolver
	images richtext.ImageResolver
	renderer *software.Renderer
	size float32
	width int
	height int
	ellipsis richtext.AutoEllipsisMethod
	atlasPath string
}

// REPL reads and executes commands until quit or EOF.
func (self *Intp) REPL() {
	for {
		line, err := self.repl.Readline()
		if err != nil { break } // io.EOF or interrupt
		if strings.TrimSpace(line) == "" { continue }
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := self.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit { break }
	}
	pterm.Info.Println("Good bye!")
}

func (self *Intp) execute(cmd command) (quit bool, err error) {
	switch cmd.op {
	case opQuit:
		return true, nil
	case opHelp:
		printHelp()
	case opMeasure:
		return false, self.measure(cmd.arg)
	case opGlyphs:
		return false, self.glyphs(cmd.arg)
	case opRich:
		return false, self.rich(cmd.arg)
	case opWidth:
		self.width = cmd.value
		pterm.Printf("Layout width set to %d\n", cmd.value)
	case opHeight:
		self.height = cmd.value
		pterm.Printf("Layout height set to %d\n", cmd.value)
	case opEllipsis:
		self.ellipsis = cmd.method
		pterm.Printf("Ellipsis method set to %s\n", cmd.method)
	case opAtlas:
		return false, self.writeAtlas()
	case opFonts:
		return false, self.listFonts()
	default:
		panic(cmd.op)
	}
	return false, nil
}

func printHelp() {
	data := [][]string{
		{"Command", "Description"},
		{"measure <text>", "size and bounds of the text, '\\n' breaks lines"},
		{"glyphs <text>", "positioned glyphs of the text"},
		{"rich <markup>", "rich text layout with the current width, height and ellipsis"},
		{"width <px>", "layout width, 0 for unconstrained"},
		{"height <px>", "layout height, 0 for unconstrained"},
		{"ellipsis none|char|word", "ellipsis method for truncated layouts"},
		{"fonts", "fonts available to /f[name] in rich text"},
		{"atlas", "draw the pending text and write the current atlas as PNG"},
		{"quit", "leave"},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (self *Intp) font() (*fontstash.DynamicFont, error) {
	return self.system.Font(self.size)
}

func unescape(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

func (self *Intp) measure(text string) error {
	textFont, err := self.font()
	if err != nil { return err }
	text = unescape(text)
	size := textFont.MeasureString(text, nil)
	bounds := textFont.TextBounds(text, mgl32.Vec2{}, nil)
	ascent, lineHeight := textFont.TextMetrics(text)
	data := [][]string{
		{"Measure", "Value"},
		{"size", fmt.Sprintf("%.2f x %.2f", size.X(), size.Y())},
		{"bounds", fmt.Sprintf("(%.2f, %.2f) - (%.2f, %.2f)", bounds.X, bounds.Y, bounds.X2, bounds.Y2)},
		{"ascent", strconv.Itoa(ascent)},
		{"line height", strconv.Itoa(lineHeight)},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (self *Intp) glyphs(text string) error {
	textFont, err := self.font()
	if err != nil { return err }
	data := [][]string{{"Index", "Codepoint", "Bounds", "Advance"}}
	for _, glyph := range textFont.Glyphs(unescape(text), mgl32.Vec2{}, nil) {
		data = append(data, []string{
			strconv.Itoa(glyph.Index),
			fmt.Sprintf("%q U+%04X", glyph.Codepoint, glyph.Codepoint),
			glyph.Bounds.String(),
			strconv.Itoa(glyph.XAdvance),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Creates a layout for the markup with the current settings and
// resolvers.
func (self *Intp) layout(markup string) (*richtext.Layout, error) {
	textFont, err := self.font()
	if err != nil { return nil, err }
	layout := richtext.NewLayout(markup, textFont)
	layout.SetWidth(self.width)
	layout.SetHeight(self.height)
	layout.SetEllipsisMethod(self.ellipsis)
	if self.fonts != nil { layout.SetFontResolver(self.fonts) }
	if self.images != nil { layout.SetImageResolver(self.images) }
	return layout, nil
}

func (self *Intp) rich(markup string) error {
	layout, err := self.layout(markup)
	if err != nil { return err }

	data := [][]string{{"Line", "Top", "Size", "Chunk", "Position", "Text"}}
	for i, line := range layout.Lines() {
		lineSize := fmt.Sprintf("%dx%d", line.Size().X, line.Size().Y)
		if len(line.Chunks()) == 0 {
			data = append(data, []string{strconv.Itoa(i), strconv.Itoa(line.Top()), lineSize, "", "", ""})
		}
		for j, chunk := range line.Chunks() {
			text := fmt.Sprintf("%T", chunk)
			if textChunk, isText := chunk.(*richtext.TextChunk); isText { text = strconv.Quote(textChunk.Text()) }
			data = append(data, []string{
				strconv.Itoa(i), strconv.Itoa(line.Top()), lineSize,
				strconv.Itoa(j), chunk.Position().String(), text,
			})
		}
	}
	err = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if err != nil { return err }
	if layout.Err() != nil { pterm.Warning.Println(layout.Err().Error()) }

	// drawing places the glyphs on the atlas
	size := layout.Size()
	if size.X <= 0 || size.Y <= 0 { return nil }
	self.renderer.SetTarget(image.NewRGBA(image.Rect(0, 0, size.X, size.Y)))
	return layout.Draw(self.renderer, mgl32.Vec2{}, color.RGBA{0, 0, 0, 255}, nil)
}

func (self *Intp) writeAtlas() error {
	current := self.system.CurrentAtlas()
	if current == nil || current.Texture() == nil {
		return errors.New("no atlas yet, draw some text with 'rich' first")
	}
	texture, isRGBA := current.Texture().(*image.RGBA)
	if !isRGBA { return errors.Errorf("unexpected texture type %T", current.Texture()) }

	file, err := os.Create(self.atlasPath)
	if err != nil { return err }
	defer file.Close()
	err = png.Encode(file, texture)
	if err != nil { return errors.Wrap(err, "encoding atlas") }
	pterm.Info.Printf("Wrote %s (%d atlases, %.1f%% of the current one used)\n",
		self.atlasPath, len(self.system.Atlases()), current.Utilization()*100)
	return nil
}

func (self *Intp) listFonts() error {
	if self.library == nil || self.library.Size() == 0 {
		pterm.Info.Println("No fonts in the library")
		return nil
	}
	var names []string
	self.library.EachSource(func(name string, _ font.Source) error {
		names = append(names, name)
		return nil
	})
	sort.Strings(names)
	data := [][]string{{"Name", "Bold"}}
	for _, name := range names {
		bold := strconv.FormatBool(self.library.GetSource(name).HasBold())
		data = append(data, []string{name, bold})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
