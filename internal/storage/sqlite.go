package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/leapstack-labs/contacts/internal/contact"

	// sqlite driver for the snapshot database.
	_ "modernc.org/sqlite"
)

// SQLite keeps the book in a SQLite database file. Each Save replaces the
// stored contacts in one transaction.
type SQLite struct {
	path   string
	logger *slog.Logger
}

var _ Store = (*SQLite)(nil)

// NewSQLite returns a Store backed by the database at path.
func NewSQLite(path string, opts ...Option) *SQLite {
	o := newOptions(opts)
	return &SQLite{path: path, logger: o.logger}
}

// Path returns the database file.
func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", s.path, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database %s: %w", s.path, err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads all contacts. A missing database file yields an empty book and
// is not created.
func (s *SQLite) Load() (*contact.Book, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no database found, starting empty", "path", s.path)
		return contact.NewBook(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	book, err := readBook(db)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("database loaded", "path", s.path, "contacts", book.Len())
	return book, nil
}

// Save replaces the stored contacts with the contents of book.
func (s *SQLite) Save(book *contact.Book) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := writeBook(db, book); err != nil {
		return err
	}

	s.logger.Debug("database saved", "path", s.path, "contacts", book.Len())
	return nil
}

func readBook(db *sql.DB) (*contact.Book, error) {
	rows, err := db.Query(`SELECT id, name, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	book := contact.NewBook()
	byID := make(map[string]*contact.Record)
	for rows.Next() {
		var id, name string
		var birthday sql.NullString
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		r := contact.NewRecord(name)
		if birthday.Valid && birthday.String != "" {
			if err := r.AddBirthday(birthday.String); err != nil {
				return nil, fmt.Errorf("contact %q: %w", name, err)
			}
		}
		book.AddRecord(r)
		byID[id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	phoneRows, err := db.Query(`SELECT contact_id, number FROM phones ORDER BY contact_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}
	defer func() { _ = phoneRows.Close() }()

	for phoneRows.Next() {
		var contactID, number string
		if err := phoneRows.Scan(&contactID, &number); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		r, ok := byID[contactID]
		if !ok {
			continue
		}
		if err := r.AddPhone(number); err != nil {
			return nil, fmt.Errorf("contact %q: %w", r.Name, err)
		}
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate phones: %w", err)
	}

	return book, nil
}

func writeBook(db *sql.DB, book *contact.Book) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM phones`); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM contacts`); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for i, r := range book.Records() {
		id := uuid.New().String()

		var birthday sql.NullString
		if r.Birthday != nil {
			birthday = sql.NullString{String: r.Birthday.String(), Valid: true}
		}

		if _, err = tx.Exec(
			`INSERT INTO contacts (id, name, position, birthday) VALUES (?, ?, ?, ?)`,
			id, r.Name, i, birthday,
		); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", r.Name, err)
		}

		for j, p := range r.Phones {
			if _, err = tx.Exec(
				`INSERT INTO phones (contact_id, position, number) VALUES (?, ?, ?)`,
				id, j, p.String(),
			); err != nil {
				return fmt.Errorf("failed to insert phone for %q: %w", r.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
