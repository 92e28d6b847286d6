package contact

import (
	"fmt"
	"strings"
)

// Record is one contact: a name, an ordered list of phones and an optional
// birthday. Duplicate phones are allowed and insertion order is kept.
type Record struct {
	Name     string
	Phones   []Phone
	Birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddPhone validates value and appends it.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone drops every phone equal to value. Missing values are ignored.
func (r *Record) RemovePhone(value string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if string(p) != value {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// ChangePhone replaces every phone equal to oldValue with newValue.
// newValue must be a valid phone even when oldValue is absent, in which case
// the phone list is left unchanged.
func (r *Record) ChangePhone(oldValue, newValue string) error {
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	for i := range r.Phones {
		if string(r.Phones[i]) == oldValue {
			r.Phones[i] = p
		}
	}
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.Phones {
		if string(p) == value {
			return p, true
		}
	}
	return "", false
}

// AddBirthday parses value as DD.MM.YYYY and replaces any existing birthday.
func (r *Record) AddBirthday(value string) error {
	b, err := ParseBirthday(value)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// PhoneList joins the phones with sep.
func (r *Record) PhoneList(sep string) string {
	parts := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		parts[i] = string(p)
	}
	return strings.Join(parts, sep)
}

func (r *Record) String() string {
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.Name, r.PhoneList("; "))
	if r.Birthday != nil {
		s += ", birthday: " + r.Birthday.String()
	}
	return s
}
