package contact

import (
	"fmt"
	"regexp"
)

// Go's \d is ASCII-only, so this matches exactly ten ASCII digits.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Phone is a phone number that passed ValidatePhone.
type Phone string

// ValidatePhone reports whether s is exactly ten ASCII digits with no
// separators.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	if !ValidatePhone(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, s)
	}
	return Phone(s), nil
}

func (p Phone) String() string {
	return string(p)
}
