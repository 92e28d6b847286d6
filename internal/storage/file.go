package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/contacts/internal/contact"
	"gopkg.in/yaml.v3"
)

// codec turns a snapshot into bytes and back.
type codec struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var jsonCodec = codec{
	name: FormatJSON,
	marshal: func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	},
	unmarshal: json.Unmarshal,
}

var yamlCodec = codec{
	name:      FormatYAML,
	marshal:   yaml.Marshal,
	unmarshal: yaml.Unmarshal,
}

// FileStore keeps the book in a single snapshot file.
type FileStore struct {
	path   string
	codec  codec
	logger *slog.Logger
}

var _ Store = (*FileStore)(nil)

// NewJSONFile returns a Store that writes indented JSON to path.
func NewJSONFile(path string, opts ...Option) *FileStore {
	return newFileStore(path, jsonCodec, opts)
}

// NewYAMLFile returns a Store that writes YAML to path.
func NewYAMLFile(path string, opts ...Option) *FileStore {
	return newFileStore(path, yamlCodec, opts)
}

func newFileStore(path string, c codec, opts []Option) *FileStore {
	o := newOptions(opts)
	return &FileStore{path: path, codec: c, logger: o.logger}
}

// Path returns the snapshot file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot file. A missing file yields an empty book.
func (s *FileStore) Load() (*contact.Book, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no snapshot found, starting empty", "path", s.path)
		return contact.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var snap snapshot
	if err := s.codec.unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode %s snapshot %s: %w", s.codec.name, s.path, err)
	}

	book, err := snap.book()
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", s.path, err)
	}

	s.logger.Debug("snapshot loaded", "path", s.path, "format", s.codec.name, "contacts", book.Len())
	return book, nil
}

// Save writes the snapshot to a temporary file and renames it into place.
func (s *FileStore) Save(book *contact.Book) error {
	b, err := s.codec.marshal(newSnapshot(book))
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", s.codec.name, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	s.logger.Debug("snapshot saved", "path", s.path, "format", s.codec.name, "contacts", book.Len())
	return nil
}
