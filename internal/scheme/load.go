package scheme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ErrSchemeNotFound is returned when a catalog has no scheme of the given
// name.
var ErrSchemeNotFound = errors.New("scheme not found")

// ErrNoSchemeFiles is returned when a directory holds no CUE files.
var ErrNoSchemeFiles = errors.New("no CUE files found")

// Catalog holds compiled schemes by name.
type Catalog struct {
	schemes map[string]*Scheme
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{schemes: make(map[string]*Scheme)}
}

// Add inserts s, failing if the name is already taken.
func (c *Catalog) Add(s *Scheme) error {
	if _, ok := c.schemes[s.Name()]; ok {
		return fmt.Errorf("duplicate scheme %q", s.Name())
	}
	c.schemes[s.Name()] = s
	return nil
}

// Merge adds every scheme of other to c.
func (c *Catalog) Merge(other *Catalog) error {
	for _, name := range other.Names() {
		if err := c.Add(other.schemes[name]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the scheme called name.
func (c *Catalog) Lookup(name string) (*Scheme, error) {
	s, ok := c.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemeNotFound, name)
	}
	return s, nil
}

// Names returns the scheme names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.schemes))
	for name := range c.schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of schemes.
func (c *Catalog) Len() int {
	return len(c.schemes)
}

// CompileString compiles every scheme declared in src.
func CompileString(src string) (*Catalog, error) {
	return compileValue(cuecontext.New().CompileString(src), NewCatalog())
}

// LoadFile compiles every scheme declared in the CUE file at path.
func LoadFile(path string) (*Catalog, error) {
	catalog := NewCatalog()
	if err := loadFile(cuecontext.New(), path, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadDir compiles every scheme declared in the .cue files under dir.
// Scheme names must be unique across files.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("schemes directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSchemeFiles, dir)
	}

	ctx := cuecontext.New()
	catalog := NewCatalog()
	for _, path := range files {
		if err := loadFile(ctx, path, catalog); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// Load compiles path, which may be a file or a directory.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("schemes path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func loadFile(ctx *cue.Context, path string, catalog *Catalog) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	slog.Debug("compiling schemes", "file", path)
	if _, err := compileValue(ctx.CompileBytes(data, cue.Filename(path)), catalog); err != nil {
		return err
	}
	return nil
}

func compileValue(v cue.Value, catalog *Catalog) (*Catalog, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	schemesVal := v.LookupPath(cue.ParsePath("scheme"))
	if !schemesVal.Exists() {
		return nil, &CompileError{Field: "scheme", Message: "no schemes declared", Pos: v.Pos()}
	}

	iter, err := schemesVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		name := iter.Label()
		s, err := CompileScheme(name, iter.Value())
		if err != nil {
			return nil, fmt.Errorf("scheme.%s: %w", name, err)
		}
		if err := catalog.Add(s); err != nil {
			return nil, &CompileError{Field: "scheme", Message: err.Error(), Pos: iter.Value().Pos()}
		}
		slog.Debug("compiled scheme", "name", name, "kind", s.Kind(), "width", s.Width(), "period", s.Period())
	}
	return catalog, nil
}
