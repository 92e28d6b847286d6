// Package config provides configuration management for the contacts CLI.
//
// Values are layered with koanf: defaults, then the config file, then
// CONTACTS_* environment variables, then explicitly set flags.
package config

import (
	"github.com/leapstack-labs/contacts/internal/contact"
	"github.com/leapstack-labs/contacts/internal/storage"
)

// Config holds all CLI configuration options.
type Config struct {
	BookPath       string `koanf:"book_path"`
	StorageFormat  string `koanf:"storage_format"`
	BirthdayWindow int    `koanf:"birthday_window"`
	OutputFormat   string `koanf:"output"`
	HistoryFile    string `koanf:"history_file"`
	Verbose        bool   `koanf:"verbose"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultBookPath       = "addressbook.json"
	DefaultStorageFormat  = storage.FormatAuto
	DefaultBirthdayWindow = contact.DefaultBirthdayWindow
	DefaultOutput         = "text"
)

// Output formats for list commands.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// OutputFormats lists the accepted values for the output setting.
var OutputFormats = []string{OutputText, OutputTable, OutputJSON}

// ConfigFileNames are looked up, in order, in the working directory.
var ConfigFileNames = []string{"contacts.yaml", "contacts.yml"}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		BookPath:       DefaultBookPath,
		StorageFormat:  DefaultStorageFormat,
		BirthdayWindow: DefaultBirthdayWindow,
		OutputFormat:   DefaultOutput,
	}
}
