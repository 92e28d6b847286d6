package contact

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a birthday: DD.MM.YYYY.
const DateLayout = "02.01.2006"

// parseLayout accepts single-digit day and month as well.
const parseLayout = "2.1.2006"

// Birthday is a calendar date without a time of day.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses s as DD.MM.YYYY. Calendar legality (Feb 30, month 13)
// is enforced by the time package.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Birthday{date: t}, nil
}

// NewBirthday builds a Birthday from its parts.
func NewBirthday(year int, month time.Month, day int) Birthday {
	return Birthday{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the birth year.
func (b Birthday) Year() int { return b.date.Year() }

// Month returns the birth month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of the month.
func (b Birthday) Day() int { return b.date.Day() }

// IsZero reports whether b is the zero Birthday.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}

// OccurrenceIn returns the date the birthday is observed in year, in loc.
// A Feb 29 birthday is observed on Feb 28 in non-leap years.
func (b Birthday) OccurrenceIn(year int, loc *time.Location) time.Time {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
