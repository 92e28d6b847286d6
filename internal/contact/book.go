package contact

import "time"

// DefaultBirthdayWindow is the look-ahead, in days, of UpcomingBirthdays.
const DefaultBirthdayWindow = 7

// Book maps contact names to records. Iteration follows first insertion
// order; overwriting a name keeps its original position.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts r keyed by its name, replacing any record with the same
// name.
func (b *Book) AddRecord(r *Record) {
	if _, ok := b.records[r.Name]; !ok {
		b.order = append(b.order, r.Name)
	}
	b.records[r.Name] = r
}

// Find looks up a record by name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the named record if present.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Upcoming pairs a record with the date its birthday is next observed.
type Upcoming struct {
	Record *Record
	Date   time.Time
}

// UpcomingBirthdays returns the records whose next birthday falls within
// [today, today+days], both ends inclusive, in book order.
//
// Only the calendar date of today matters. A birthday that already passed
// this year is looked up in the next one, so the window spans year-end.
func (b *Book) UpcomingBirthdays(today time.Time, days int) []Upcoming {
	loc := today.Location()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, days)

	var out []Upcoming
	for _, r := range b.Records() {
		if r.Birthday == nil {
			continue
		}
		next := r.Birthday.OccurrenceIn(start.Year(), loc)
		if next.Before(start) {
			next = r.Birthday.OccurrenceIn(start.Year()+1, loc)
		}
		if !next.After(end) {
			out = append(out, Upcoming{Record: r, Date: next})
		}
	}
	return out
}
