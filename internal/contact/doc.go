// Package contact implements the address book domain: validated phone
// numbers and birthdays, per-contact records, and the name-keyed Book that
// owns them.
//
// The package has no I/O. Persistence lives in internal/storage and the
// command surface in internal/assistant.
package contact
