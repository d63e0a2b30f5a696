package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxSize is the largest configuration file the Fetcher accepts.
const MaxSize = 16 << 20

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds MaxSize.
var ErrFileTooLarge = errors.New("file too large")

// Fetcher implements config.Source for a file on disk.
// The file is read once, at construction time.
type Fetcher struct {
	name     string
	filepath string
	data     []byte
}

// NewFetcher returns a constructor that reads the file at fpath.
// The name reported by the Fetcher is fpath exactly as given, so diagnostics
// name the file the way the caller spelled it.
// Returns an error if the file cannot be read, is a directory, or exceeds MaxSize.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if stat.Size() > MaxSize {
			return nil, fmt.Errorf("path %q (%d bytes): %w", cleanPath, stat.Size(), ErrFileTooLarge)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- reading caller-chosen configuration files is the purpose
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			name:     fpath,
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Open reads the file at fpath immediately.
func Open(fpath string) (*Fetcher, error) {
	return NewFetcher(fpath)()
}

// Name returns the path the Fetcher was created with.
func (f *Fetcher) Name() string {
	return f.name
}

// Fetch returns a copy of the file contents read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
