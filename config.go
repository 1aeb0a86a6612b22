package fontstash

import "image"

import "github.com/pkg/errors"
import "github.com/tinne26/fontstash/atlas"

// Padding in pixels kept around each glyph on the atlas.
const GlyphPad = 2

// Value for [Config].DefaultCharacter that disables default
// character substitution.
const NoDefaultCharacter rune = -1

// Configuration of a [FontSystem]. Use [DefaultConfig]() as the
// starting point.
type Config struct {
	// Size of the atlases created by the system.
	TextureWidth  int
	TextureHeight int

	// Multiplier applied to the font size when rasterizing. Text is
	// scaled down by the same factor when drawn, so values above 1
	// trade atlas space for sharpness under scaling. Zero means 1.
	ResolutionFactor float32

	UseKerning bool

	// Codepoint used in place of codepoints that no source can
	// render, or [NoDefaultCharacter].
	DefaultCharacter rune

	// Thickness in pixels of underline and strikethrough bars.
	TextStyleLineHeight int

	// Optional texture to use for the first atlas. Its size replaces
	// TextureWidth and TextureHeight for that atlas, and the given
	// used space is never written to.
	ExistingTexture atlas.Texture
	ExistingTextureUsedSpace image.Rectangle

	// Optional hook invoked synchronously when the current atlas
	// can't fit a glyph. The hook may call [FontSystem.SetAtlas]();
	// if it doesn't, a new atlas is created with the default size.
	OnAtlasFull func(system *FontSystem, full *atlas.Atlas)
}

// Returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TextureWidth: 1024,
		TextureHeight: 1024,
		ResolutionFactor: 1,
		UseKerning: true,
		DefaultCharacter: '□',
		TextStyleLineHeight: 2,
	}
}

// Returns an error wrapping [ErrInvalidConfig] when any of the
// config fields has an invalid value.
func (self *Config) Validate() error {
	if self.TextureWidth <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "TextureWidth must be positive (got %d)", self.TextureWidth)
	}
	if self.TextureHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "TextureHeight must be positive (got %d)", self.TextureHeight)
	}
	if self.ResolutionFactor < 0 {
		return errors.Wrapf(ErrInvalidConfig, "ResolutionFactor can't be negative (got %f)", self.ResolutionFactor)
	}
	if self.TextStyleLineHeight < 0 {
		return errors.Wrapf(ErrInvalidConfig, "TextStyleLineHeight can't be negative (got %d)", self.TextStyleLineHeight)
	}
	if self.ExistingTexture != nil && !self.ExistingTextureUsedSpace.In(self.ExistingTexture.Bounds()) {
		return errors.Wrapf(ErrInvalidConfig, "ExistingTextureUsedSpace %v out of texture bounds %v",
			self.ExistingTextureUsedSpace, self.ExistingTexture.Bounds())
	}
	return nil
}

func (self *Config) resolutionFactor() float32 {
	if self.ResolutionFactor == 0 { return 1 }
	return self.ResolutionFactor
}
