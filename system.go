package fontstash

import "image"

import "github.com/pkg/errors"

import "github.com/tinne26/fontstash/atlas"
import "github.com/tinne26/fontstash/cache"
import "github.com/tinne26/fontstash/font"
import "github.com/tinne26/fontstash/fract"
import "github.com/tinne26/fontstash/mask"

// A FontSystem owns an ordered list of font sources, the atlases where
// their glyphs are packed and the fonts created for each size.
//
// Sources are tried in the order they were added whenever a codepoint
// has to be resolved. Sources should be added before requesting fonts:
// codepoints already cached as missing aren't looked up again.
//
// Font systems are not safe for concurrent use.
type FontSystem struct {
	config  Config
	sources []font.Source
	fonts   map[fontKey]*DynamicFont
	atlases []*atlas.Atlas
	current *atlas.Atlas
	white   whiteTexture
	useKerning bool
	defaultChar rune
}

type fontKey struct {
	size  fract.Unit
	style FontStyle
}

// Creates a new font system. The config is validated and copied.
func NewFontSystem(config Config) (*FontSystem, error) {
	err := config.Validate()
	if err != nil { return nil, err }
	return &FontSystem{
		config: config,
		fonts: make(map[fontKey]*DynamicFont),
		useKerning: config.UseKerning,
		defaultChar: config.DefaultCharacter,
	}, nil
}

// Returns a copy of the system configuration.
func (self *FontSystem) Config() Config { return self.config }

// Adds a font source at the end of the fallback list and returns
// its index.
func (self *FontSystem) AddSource(source font.Source) int {
	self.sources = append(self.sources, source)
	tracer().Debugf("font source #%d added", len(self.sources) - 1)
	return len(self.sources) - 1
}

// Parses the given font bytes with [font.NewSFNT]() and adds the
// result as a new source.
func (self *FontSystem) AddFont(data []byte, opts ...font.Option) error {
	source, err := font.NewSFNT(data, opts...)
	if err != nil { return err }
	self.AddSource(source)
	return nil
}

// Returns a copy of the current list of sources.
func (self *FontSystem) Sources() []font.Source {
	return append([]font.Source(nil), self.sources...)
}

// Returns the regular font for the given size. See [FontSystem.StyledFont]().
func (self *FontSystem) Font(size float32) (*DynamicFont, error) {
	return self.StyledFont(size, 0)
}

// Returns the font for the given size and style, creating it if
// necessary. Sizes are quantized with [fract.FromFloat64Up](), so
// sizes closer than 1/64th of a pixel share the same font.
//
// Fails with [ErrNoFontSources] if no sources have been added.
func (self *FontSystem) StyledFont(size float32, style FontStyle) (*DynamicFont, error) {
	key := fontKey{ size: fract.FromFloat64Up(float64(size)), style: style }
	dynFont, found := self.fonts[key]
	if found { return dynFont, nil }
	if len(self.sources) == 0 { return nil, ErrNoFontSources }

	metrics, err := self.sources[0].Metrics(key.size)
	if err != nil {
		return nil, errors.Wrapf(err, "fontstash: metrics for size %s", key.size)
	}
	dynFont = newDynamicFont(self, key, metrics.LineHeight)
	self.fonts[key] = dynFont
	tracer().Debugf("created font for size %s (%s)", key.size, style)
	return dynFont, nil
}

// Sets the atlas where new glyphs will be placed. The atlas is added
// to the list of atlases if it wasn't already there. A nil atlas
// makes the system create a new one when needed.
func (self *FontSystem) SetAtlas(target *atlas.Atlas) {
	if target != nil && !self.hasAtlas(target) {
		self.atlases = append(self.atlases, target)
	}
	self.current = target
}

// Returns the atlas where new glyphs are being placed, which may be nil.
func (self *FontSystem) CurrentAtlas() *atlas.Atlas { return self.current }

// Returns a copy of the list of atlases, in creation order.
func (self *FontSystem) Atlases() []*atlas.Atlas {
	return append([]*atlas.Atlas(nil), self.atlases...)
}

// Drops all atlases and fonts. Sources are kept. Fonts obtained before
// the reset must not be used anymore.
func (self *FontSystem) Reset() {
	self.atlases = nil
	self.current = nil
	clear(self.fonts)
	tracer().Debugf("font system reset")
}

func (self *FontSystem) UseKerning() bool { return self.useKerning }
func (self *FontSystem) SetUseKerning(useKerning bool) { self.useKerning = useKerning }

func (self *FontSystem) DefaultCharacter() rune { return self.defaultChar }

// Sets the codepoint used for codepoints that no source can render.
// Use [NoDefaultCharacter] to disable the substitution.
func (self *FontSystem) SetDefaultCharacter(codepoint rune) { self.defaultChar = codepoint }

// Returns the glyph id for the given codepoint and the index of the
// source providing it. Sources are tried in order and the first one
// having the glyph wins.
func (self *FontSystem) Resolve(codepoint rune) (font.GlyphID, int, bool) {
	for i, source := range self.sources {
		id, found := source.GlyphID(codepoint)
		if found { return id, i, true }
	}
	return 0, -1, false
}

func (self *FontSystem) hasAtlas(target *atlas.Atlas) bool {
	for _, a := range self.atlases {
		if a == target { return true }
	}
	return false
}

// Creates a new atlas. The first one uses the configured existing
// texture, if any.
func (self *FontSystem) createAtlas() (*atlas.Atlas, error) {
	if self.config.ExistingTexture != nil && len(self.atlases) == 0 {
		created, err := atlas.NewWithTexture(self.config.ExistingTexture, self.config.ExistingTextureUsedSpace)
		if err != nil { return nil, err }
		tracer().Infof("atlas #0 created on existing %dx%d texture", created.Width(), created.Height())
		return created, nil
	}
	created := atlas.New(self.config.TextureWidth, self.config.TextureHeight)
	tracer().Infof("atlas #%d created (%dx%d)", len(self.atlases), created.Width(), created.Height())
	return created, nil
}

// Places the glyph on the current atlas and rasterizes it. Glyphs
// without pixels are left unplaced.
func (self *FontSystem) renderGlyph(manager atlas.TextureManager, glyph *cache.Glyph, style FontStyle) error {
	if glyph.IsEmpty() || glyph.Placed() { return nil }

	width  := glyph.PixelSize.X + GlyphPad*2
	height := glyph.PixelSize.Y + GlyphPad*2
	if self.current == nil {
		created, err := self.createAtlas()
		if err != nil { return err }
		self.SetAtlas(created)
	}

	target := self.current
	placement := target.Place(width, height)
	if placement.Status == atlas.Full {
		tracer().Infof("atlas #%d full", len(self.atlases) - 1)
		if self.config.OnAtlasFull != nil {
			self.config.OnAtlasFull(self, target)
		}
		if self.current == target || self.current == nil {
			created, err := self.createAtlas()
			if err != nil { return err }
			self.SetAtlas(created)
		}
		target = self.current
		placement = target.Place(width, height)
		if placement.Status == atlas.Full {
			return errors.Wrapf(ErrGlyphTooLarge, "%dx%d rect for %q on %dx%d atlas",
				width, height, glyph.Codepoint, target.Width(), target.Height())
		}
	}

	rect := image.Rectangle{ Min: placement.Rect.Min.Add(image.Pt(GlyphPad, GlyphPad)) }
	rect.Max = rect.Min.Add(glyph.PixelSize)
	source := self.sources[glyph.SourceIndex]
	faux := fauxStyle(style, source)
	fauxSource, canFaux := source.(font.FauxSource)
	err := target.RenderGlyph(manager, rect, GlyphPad, func(pixels []byte, stride int) error {
		if canFaux && !faux.IsZero() {
			return fauxSource.RasterizeFaux(glyph.ID, glyph.Size, faux, pixels, rect.Dx(), rect.Dy(), stride)
		}
		err := source.Rasterize(glyph.ID, glyph.Size, pixels, rect.Dx(), rect.Dy(), stride)
		if err != nil { return err }
		if faux.ExtraWidth > 0 {
			mask.Embolden(pixels, rect.Dx(), rect.Dy(), stride, fract.FromInt(font.FauxBoldWidth))
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "fontstash: rendering glyph %q", glyph.Codepoint)
	}
	glyph.Texture = target.Texture()
	glyph.TextureRect = rect
	return nil
}

// A lazily created 1x1 white texture, used to draw text style bars.
type whiteTexture struct {
	texture atlas.Texture
	owner   atlas.TextureManager
}

// Returns the texture for the given manager, creating it if needed.
func (self *whiteTexture) get(manager atlas.TextureManager) (atlas.Texture, error) {
	if self.texture != nil && self.owner == manager { return self.texture, nil }
	texture, err := manager.CreateTexture(1, 1)
	if err != nil { return nil, errors.Wrap(err, "fontstash: creating white texture") }
	err = manager.UploadRegion(texture, image.Rect(0, 0, 1, 1), []byte{255, 255, 255, 255})
	if err != nil { return nil, errors.Wrap(err, "fontstash: uploading white texture") }
	self.texture, self.owner = texture, manager
	return texture, nil
}
