package richtext

import "image/color"
import "strconv"
import "strings"

import "github.com/tinne26/fontstash"

// Kind of a markup [Command].
type CommandKind uint8
const (
	CmdText CommandKind = iota
	CmdLineBreak
	CmdColor
	CmdColorDefault
	CmdFont
	CmdFontDefault
	CmdVerticalOffset
	CmdVerticalOffsetDefault
	CmdImage
	CmdSpace
	CmdTextStyle
)

func (self CommandKind) String() string {
	switch self {
	case CmdText: return "Text"
	case CmdLineBreak: return "LineBreak"
	case CmdColor: return "Color"
	case CmdColorDefault: return "ColorDefault"
	case CmdFont: return "Font"
	case CmdFontDefault: return "FontDefault"
	case CmdVerticalOffset: return "VerticalOffset"
	case CmdVerticalOffsetDefault: return "VerticalOffsetDefault"
	case CmdImage: return "Image"
	case CmdSpace: return "Space"
	case CmdTextStyle: return "TextStyle"
	default:
		return "UnknownCommand"
	}
}

// A parsed markup element. Only the fields relevant to the command
// kind are set.
type Command struct {
	Kind CommandKind
	Text string // text run, font name or image id
	Color color.RGBA
	Value int // vertical offset or space width
	Size float32 // font size, zero if not given
	Style fontstash.TextStyle
}

// Parses the given markup into a list of commands. Parsing never
// fails: unknown commands, commands with invalid arguments and a
// command left unterminated at the end of the text are all kept as
// literal text.
func Parse(text string) []Command {
	var p parser
	p.run(text)
	return p.commands
}

type parser struct {
	commands []Command
	pending  strings.Builder // text not yet flushed
}

func (self *parser) run(text string) {
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			self.push(Command{ Kind: CmdLineBreak })
			i += 1
		case '/':
			next, ok := self.tag(text, i)
			if !ok { // unterminated, keep the rest as text
				self.pending.WriteString(text[i:])
				i = len(text)
				break
			}
			i = next
		default:
			start := i
			for i < len(text) && text[i] != '/' && text[i] != '\n' { i += 1 }
			self.pending.WriteString(text[start:i])
		}
	}
	self.flush()
}

// Parses the command starting at the slash in text[start]. Returns the
// index after the command, or false if the text ends before the
// command is complete.
func (self *parser) tag(text string, start int) (int, bool) {
	i := start + 1
	if i >= len(text) { return 0, false }
	name := text[i]
	i += 1

	switch name {
	case '/':
		self.pending.WriteByte('/')
		return i, true
	case 'n':
		self.push(Command{ Kind: CmdLineBreak })
		return i, true
	case 'c', 'f', 'v', 'i', 's', 't':
		// handled below
	default:
		return self.literal(text, start, i)
	}

	if i >= len(text) { return 0, false }
	modifier := text[i]
	if modifier == '[' {
		end := strings.IndexByte(text[i:], ']')
		if end == -1 { return 0, false }
		args := text[i + 1 : i + end]
		cmd, ok := argsCommand(name, args)
		if !ok { return self.literal(text, start, i + end + 1) }
		self.push(cmd)
		return i + end + 1, true
	}

	switch {
	case modifier == 'd' && (name == 'c' || name == 'f' || name == 'v' || name == 't'):
		switch name {
		case 'c': self.push(Command{ Kind: CmdColorDefault })
		case 'f': self.push(Command{ Kind: CmdFontDefault })
		case 'v': self.push(Command{ Kind: CmdVerticalOffsetDefault })
		case 't': self.push(Command{ Kind: CmdTextStyle, Style: fontstash.NoTextStyle })
		}
		return i + 1, true
	case name == 't' && modifier == 'u':
		self.push(Command{ Kind: CmdTextStyle, Style: fontstash.Underline })
		return i + 1, true
	case name == 't' && modifier == 's':
		self.push(Command{ Kind: CmdTextStyle, Style: fontstash.Strikethrough })
		return i + 1, true
	case name == 'v' && (modifier == '-' || modifier == '+' || isDigit(modifier)):
		end := i + 1
		for end < len(text) && isDigit(text[end]) { end += 1 }
		value, err := strconv.Atoi(text[i:end])
		if err != nil { return self.literal(text, start, end) }
		self.push(Command{ Kind: CmdVerticalOffset, Value: value })
		return end, true
	default:
		return self.literal(text, start, i)
	}
}

// Builds the command for a name followed by a bracketed argument.
func argsCommand(name byte, args string) (Command, bool) {
	switch name {
	case 'c':
		clr, err := ParseColor(args)
		if err != nil { return Command{}, false }
		return Command{ Kind: CmdColor, Text: args, Color: clr }, true
	case 'f':
		fontName, sizeStr, hasSize := strings.Cut(args, ",")
		fontName = strings.TrimSpace(fontName)
		if fontName == "" { return Command{}, false }
		cmd := Command{ Kind: CmdFont, Text: fontName }
		if hasSize {
			size, err := strconv.ParseFloat(strings.TrimSpace(sizeStr), 32)
			if err != nil || size <= 0 { return Command{}, false }
			cmd.Size = float32(size)
		}
		return cmd, true
	case 'v', 's':
		value, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil { return Command{}, false }
		if name == 's' {
			if value < 0 { return Command{}, false }
			return Command{ Kind: CmdSpace, Value: value }, true
		}
		return Command{ Kind: CmdVerticalOffset, Value: value }, true
	case 'i':
		id := strings.TrimSpace(args)
		if id == "" { return Command{}, false }
		return Command{ Kind: CmdImage, Text: id }, true
	default:
		return Command{}, false
	}
}

// Keeps text[start:end] as literal text.
func (self *parser) literal(text string, start, end int) (int, bool) {
	self.pending.WriteString(text[start:end])
	return end, true
}

// Flushes the pending text and appends the given command.
func (self *parser) push(cmd Command) {
	self.flush()
	self.commands = append(self.commands, cmd)
}

func (self *parser) flush() {
	if self.pending.Len() == 0 { return }
	self.commands = append(self.commands, Command{ Kind: CmdText, Text: self.pending.String() })
	self.pending.Reset()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
