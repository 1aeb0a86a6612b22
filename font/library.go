package font

import "io/fs"
import "path/filepath"

import "github.com/pkg/errors"

// A collection of font sources accessible by name.
//
// Libraries make it easy to parse fonts in bulk and keep them all in
// a single place. They are also what rich text font resolvers use to
// find fonts by the names given in the markup.
type Library struct {
	sources map[string]Source
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		sources: make(map[string]Source),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.sources) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasSource(name string) bool {
	_, found := self.sources[name]
	return found
}

// Returns the source with the given name, or nil if not found.
func (self *Library) GetSource(name string) Source {
	source, found := self.sources[name]
	if found { return source }
	return nil
}

// Adds the given source under the given name. If another source with
// the same name was already present, [ErrAlreadyPresent] will be
// returned. Nil sources panic.
func (self *Library) AddSource(name string, source Source) error {
	if source == nil { panic("nil font source") }
	return self.addNewSource(source, name)
}

// Returns false if the source can't be removed due to not being found.
func (self *Library) RemoveSource(name string) bool {
	_, found := self.sources[name]
	if !found { return false }
	delete(self.sources, name)
	return true
}

// Parses the font at the given path and adds it under the font's
// name. Returns the name and any possible error.
//
// If a font with the same name has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string, opts ...Option) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewSource(NewSFNTFromFont(font, opts...), name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte, opts ...Option) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewSource(NewSFNTFromFont(font, opts...), name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string, opts ...Option) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewSource(NewSFNTFromFont(font, opts...), name)
}

// An error returned when a font is not added due to its name already
// being present in the [Library].
var ErrAlreadyPresent = errors.New("font: already present in the library")

func (self *Library) addNewSource(source Source, name string) error {
	if self.HasSource(name) {
		return errors.Wrapf(ErrAlreadyPresent, "font '%s'", name)
	}
	self.sources[name] = source
	return nil
}

// Special error that can be used with [Library.EachSource]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("font: EachSource() early break")

// Calls the given function for each source in the library, passing their
// names and sources as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
func (self *Library) EachSource(fn func(string, Source) error) error {
	for name, source := range self.sources {
		err := fn(name, source)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and .otf
// fonts in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same name already exists in the Library) and any error
// that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, errors.Wrap(err, "font: resolving directory") }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if !hasValidFontExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if errors.Is(err, ErrAlreadyPresent) {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, errors.Wrap(err, "font: reading directory") }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !hasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFromFS(filesys, dirName + entry.Name())
		if errors.Is(err, ErrAlreadyPresent) {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
