// Package storage persists a contact.Book between sessions.
//
// Every Store writes a full snapshot on Save and restores it on Load. A
// missing backing file is not an error: Load returns an empty book.
package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/contacts/internal/contact"
)

// Store loads and saves the whole address book.
type Store interface {
	// Load restores the book, or returns an empty one if nothing was saved yet.
	Load() (*contact.Book, error)
	// Save overwrites the backing file with a snapshot of book.
	Save(book *contact.Book) error
	// Path returns the backing file.
	Path() string
}

// Snapshot formats.
const (
	FormatAuto   = "auto"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// Formats lists the accepted values for a format setting.
var Formats = []string{FormatAuto, FormatJSON, FormatYAML, FormatSQLite}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DetectFormat picks a format from the file extension, defaulting to JSON.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Open returns the Store for path. An empty or "auto" format is resolved
// with DetectFormat.
func Open(path, format string, opts ...Option) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	switch format {
	case FormatJSON:
		return NewJSONFile(path, opts...), nil
	case FormatYAML:
		return NewYAMLFile(path, opts...), nil
	case FormatSQLite:
		return NewSQLite(path, opts...), nil
	default:
		return nil, fmt.Errorf("unknown storage format %q (expected one of %s)", format, strings.Join(Formats, ", "))
	}
}
