package picstore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bingpaper/internal/faults"
	"bingpaper/internal/fileutil"
	"bingpaper/internal/logging"
)

// Picture identifies a cached wallpaper image on disk.
type Picture struct {
	Path string
	Name string
}

// Store is a flat directory of cached pictures keyed by file name.
type Store struct {
	dir    string
	logger *slog.Logger
}

// Open returns a store rooted at dir. The directory is not created; a missing
// directory surfaces on the first List or Write.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, faults.Wrap(faults.ErrStorageUnavailable, "picstore", "open", "picture directory not configured", nil)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrStorageUnavailable, "picstore", "open", "resolve directory", err)
	}
	return &Store{
		dir:    abs,
		logger: logging.NewComponentLogger(logger, "picstore"),
	}, nil
}

// Dir returns the absolute picture directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute path a picture with the given name would occupy.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// List returns every immediate entry of the picture directory in directory
// read order. Entries are not filtered by type or extension.
func (s *Store) List() ([]Picture, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, faults.Wrap(faults.ErrStorageUnavailable, "picstore", "list", s.dir+" does not exist", err)
	}
	if err != nil {
		return nil, faults.Wrap(faults.ErrStorageUnavailable, "picstore", "list", s.dir, err)
	}
	pictures := make([]Picture, 0, len(entries))
	for _, entry := range entries {
		pictures = append(pictures, Picture{
			Path: filepath.Join(s.dir, entry.Name()),
			Name: entry.Name(),
		})
	}
	s.logger.Debug("listed pictures",
		logging.String("dir", s.dir),
		logging.Int("picture_count", len(pictures)))
	return pictures, nil
}

// Exists reports whether a picture with the given name is already cached.
func (s *Store) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Lookup returns the cached picture with the given name.
func (s *Store) Lookup(name string) (Picture, bool) {
	if !s.Exists(name) {
		return Picture{}, false
	}
	return Picture{Path: s.Path(name), Name: name}, true
}

// Write stores data under name, replacing any existing file. The bytes land in
// a temp file first and are renamed into place so the final name never holds
// a partial picture.
func (s *Store) Write(name string, data []byte) (Picture, error) {
	if !validName(name) {
		return Picture{}, faults.Wrap(faults.ErrStorageWrite, "picstore", "write", fmt.Sprintf("invalid picture name %q", name), nil)
	}
	target := s.Path(name)

	if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
		return Picture{}, faults.Wrap(faults.ErrStorageWrite, "picstore", "write", target, err)
	}

	s.logger.Debug("stored picture",
		logging.String("path", target),
		logging.Int("bytes", len(data)))
	return Picture{Path: target, Name: name}, nil
}

// EnsureDir creates the picture directory if it does not exist.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return faults.Wrap(faults.ErrStorageUnavailable, "picstore", "ensure dir", s.dir, err)
	}
	return nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/`+string(filepath.Separator))
}
