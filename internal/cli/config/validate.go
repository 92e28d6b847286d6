package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/contacts/internal/storage"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BookPath) == "" {
		return fmt.Errorf("book_path is required")
	}
	if c.BirthdayWindow < 0 {
		return fmt.Errorf("birthday_window must not be negative, got %d", c.BirthdayWindow)
	}
	if !slices.Contains(storage.Formats, c.StorageFormat) {
		return fmt.Errorf("unknown storage_format %q (expected one of %s)",
			c.StorageFormat, strings.Join(storage.Formats, ", "))
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output %q (expected one of %s)",
			c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	return nil
}
