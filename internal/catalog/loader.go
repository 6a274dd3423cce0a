package catalog

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"bookshelf/internal/book"
	"bookshelf/internal/shelf"
)

var _ shelf.Source = (*FileSource)(nil)

// FileSource reads books from a YAML catalogue on disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the catalogue at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and decodes the catalogue. The file is read on every call.
func (s *FileSource) Load(ctx context.Context) ([]book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(s.Path)
}

// LoadFile reads the catalogue at path. A missing file is KindNotFound; any
// other read failure (a directory, no permission) is KindRead.
func LoadFile(path string) ([]book.Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := KindRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &OpError{
			Op:   "catalog.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return Decode(path, b)
}

// Decode parses catalogue YAML. path is only used in error messages.
func Decode(path string, data []byte) ([]book.Book, error) {
	var dto YAMLCatalog
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &OpError{
			Op:   "catalog.decode",
			Kind: KindInvalidCatalog,
			Path: path,
			Err:  err,
		}
	}
	return MapCatalog(path, dto)
}
