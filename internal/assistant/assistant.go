package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/leapstack-labs/contacts/internal/contact"
)

// Assistant runs commands against a book it does not own.
type Assistant struct {
	book   *contact.Book
	window int
	now    func() time.Time
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithWindow sets the look-ahead of the birthdays command in days.
func WithWindow(days int) Option {
	return func(a *Assistant) { a.window = days }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// New returns an Assistant for book.
func New(book *contact.Book, opts ...Option) *Assistant {
	a := &Assistant{
		book:   book,
		window: contact.DefaultBirthdayWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Book returns the book the assistant operates on.
func (a *Assistant) Book() *contact.Book {
	return a.book
}

// Window returns the birthdays look-ahead in days.
func (a *Assistant) Window() int {
	return a.window
}

// Upcoming returns the birthdays due within the configured window.
func (a *Assistant) Upcoming() []contact.Upcoming {
	return a.book.UpcomingBirthdays(a.now(), a.window)
}

type handlerFunc func(a *Assistant, args []string) (string, error)

var handlers = map[Command]handlerFunc{
	CommandHello:        hello,
	CommandAdd:          addContact,
	CommandChange:       changeContact,
	CommandPhone:        showPhone,
	CommandAll:          showAll,
	CommandAddBirthday:  addBirthday,
	CommandShowBirthday: showBirthday,
	CommandBirthdays:    birthdays,
	CommandDelete:       deleteContact,
	CommandExit:         exit,
}

// Handle runs cmd with args.
func (a *Assistant) Handle(cmd Command, args []string) (string, error) {
	h, ok := handlers[cmd]
	if !ok {
		return "", ErrUnknownCommand
	}
	return h(a, args)
}

// Exec parses line and runs the command it names.
func (a *Assistant) Exec(line string) (Command, string, error) {
	cmd, args := ParseInput(line)
	msg, err := a.Handle(cmd, args)
	return cmd, msg, err
}

func (a *Assistant) find(name string) (*contact.Record, error) {
	r, ok := a.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", contact.ErrContactNotFound, name)
	}
	return r, nil
}

func hello(_ *Assistant, _ []string) (string, error) {
	return MsgGreeting, nil
}

func exit(_ *Assistant, _ []string) (string, error) {
	return MsgGoodbye, nil
}

func addContact(a *Assistant, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage(CommandAdd, usageAdd)
	}
	name, phone := args[0], args[1]

	if !contact.ValidatePhone(phone) {
		return "", fmt.Errorf("%w: %q", contact.ErrInvalidPhone, phone)
	}

	msg := MsgContactUpdated
	r, ok := a.book.Find(name)
	if !ok {
		r = contact.NewRecord(name)
		a.book.AddRecord(r)
		msg = MsgContactAdded
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	return msg, nil
}

func changeContact(a *Assistant, args []string) (string, error) {
	if len(args) < 3 {
		return "", usage(CommandChange, usageChange)
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	r, err := a.find(name)
	if err != nil {
		return "", err
	}
	if err := r.ChangePhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return MsgContactUpdated, nil
}

func showPhone(a *Assistant, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(CommandPhone, usageArgument)
	}

	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	return r.PhoneList(", "), nil
}

func showAll(a *Assistant, _ []string) (string, error) {
	records := a.book.Records()
	if len(records) == 0 {
		return MsgNoContacts, nil
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%s: %s", r.Name, r.PhoneList(", "))
	}
	return strings.Join(lines, "\n"), nil
}

func addBirthday(a *Assistant, args []string) (string, error) {
	if len(args) != 2 {
		return "", usage(CommandAddBirthday, usageAddBirthday)
	}

	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return MsgBirthdayAdded, nil
}

func showBirthday(a *Assistant, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(CommandShowBirthday, usageArgument)
	}

	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if r.Birthday == nil {
		return MsgBirthdayNotSet, nil
	}
	return r.Birthday.String(), nil
}

func birthdays(a *Assistant, _ []string) (string, error) {
	upcoming := a.Upcoming()
	if len(upcoming) == 0 {
		if a.window == contact.DefaultBirthdayWindow {
			return MsgNoBirthdaysWeek, nil
		}
		return fmt.Sprintf("No birthdays in the next %d days.", a.window), nil
	}

	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", u.Record.Name, u.Date.Format(contact.DateLayout))
	}
	return strings.Join(lines, "\n"), nil
}

func deleteContact(a *Assistant, args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(CommandDelete, usageArgument)
	}

	if _, err := a.find(args[0]); err != nil {
		return "", err
	}
	a.book.Delete(args[0])
	return MsgContactDeleted, nil
}
