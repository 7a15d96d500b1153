package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/loganlanou/academy/internal/logging"
	"gopkg.in/yaml.v3"
)

// FileSource serves a catalog read from a YAML file. Reload swaps the whole
// catalog; readers never see a partially loaded one.
type FileSource struct {
	path    string
	current atomic.Pointer[Catalog]
	loaded  atomic.Int64
}

var _ Source = (*FileSource)(nil)

// NewFileSource loads path and fails when the initial load fails.
func NewFileSource(path string) (*FileSource, error) {
	s := &FileSource{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Catalog(context.Context) (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, fmt.Errorf("content file %s: not loaded", s.path)
	}
	return c, nil
}

// LoadedAt returns when the current catalog was loaded.
func (s *FileSource) LoadedAt() time.Time {
	return time.Unix(0, s.loaded.Load())
}

// Reload reads the file again. A failed reload keeps the previous catalog.
func (s *FileSource) Reload() error {
	c, err := LoadFile(s.path)
	if err != nil {
		if s.current.Load() != nil {
			slog.Warn("content reload failed, keeping previous catalog", "path", s.path, logging.Err(err))
		}
		return err
	}
	s.current.Store(c)
	s.loaded.Store(time.Now().UnixNano())
	slog.Info("content loaded",
		"path", s.path,
		"events", len(c.Events),
		"news", len(c.News),
		"calendar", len(c.Calendar),
	)
	return nil
}

// LoadFile decodes a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	return c, nil
}

// Decode reads a YAML catalog. Unknown keys are rejected so typos surface.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, err
	}
	return &c, nil
}

// Encode writes c as YAML.
func Encode(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
