package storage

import (
	"fmt"

	"github.com/leapstack-labs/contacts/internal/contact"
)

// snapshotVersion is bumped when the file layout changes incompatibly.
const snapshotVersion = 1

type snapshot struct {
	Version  int            `json:"version" yaml:"version"`
	Contacts []contactEntry `json:"contacts" yaml:"contacts"`
}

type contactEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

func newSnapshot(book *contact.Book) snapshot {
	records := book.Records()
	s := snapshot{
		Version:  snapshotVersion,
		Contacts: make([]contactEntry, 0, len(records)),
	}
	for _, r := range records {
		s.Contacts = append(s.Contacts, newContactEntry(r))
	}
	return s
}

func newContactEntry(r *contact.Record) contactEntry {
	e := contactEntry{
		Name:   r.Name,
		Phones: make([]string, len(r.Phones)),
	}
	for i, p := range r.Phones {
		e.Phones[i] = p.String()
	}
	if r.Birthday != nil {
		e.Birthday = r.Birthday.String()
	}
	return e
}

// book rebuilds the address book, validating every field on the way in.
func (s snapshot) book() (*contact.Book, error) {
	if s.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}

	book := contact.NewBook()
	for _, e := range s.Contacts {
		r, err := e.record()
		if err != nil {
			return nil, err
		}
		book.AddRecord(r)
	}
	return book, nil
}

func (e contactEntry) record() (*contact.Record, error) {
	r := contact.NewRecord(e.Name)
	for _, p := range e.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("contact %q: %w", e.Name, err)
		}
	}
	if e.Birthday != "" {
		if err := r.AddBirthday(e.Birthday); err != nil {
			return nil, fmt.Errorf("contact %q: %w", e.Name, err)
		}
	}
	return r, nil
}
