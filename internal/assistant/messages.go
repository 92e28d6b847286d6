package assistant

import (
	"errors"

	"github.com/leapstack-labs/contacts/internal/contact"
)

// User-facing replies.
const (
	MsgGreeting        = "How can I help you?"
	MsgWelcome         = "Welcome to the assistant bot!"
	MsgGoodbye         = "Good bye!"
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgContactDeleted  = "Contact deleted."
	MsgBirthdayAdded   = "Birthday added."
	MsgBirthdayNotSet  = "Birthday not set."
	MsgNoContacts      = "No contacts found."
	MsgNoBirthdaysWeek = "No birthdays in the next week."

	MsgContactNotFound = "Contact not found."
	MsgInvalidPhone    = "Invalid phone number format. Use a 10-digit number."
	MsgInvalidDate     = "Invalid date format. Use DD.MM.YYYY"
	MsgInvalidCommand  = "Invalid command."
)

// Usage replies for commands given the wrong number of arguments.
const (
	usageAdd         = "Give me name and phone please."
	usageChange      = "Give me name, old phone and new phone."
	usageArgument    = "Enter the argument for the command"
	usageAddBirthday = "Give me name and birthday in format DD.MM.YYYY."
)

// ErrUnknownCommand is returned for input that names no command.
var ErrUnknownCommand = errors.New("unknown command")

// UsageError reports a command called with the wrong arguments. It matches
// contact.ErrMissingArgument under errors.Is.
type UsageError struct {
	Command Command
	Usage   string
}

func (e *UsageError) Error() string {
	return e.Command.String() + ": " + e.Usage
}

// Is reports whether target is contact.ErrMissingArgument.
func (e *UsageError) Is(target error) bool {
	return target == contact.ErrMissingArgument
}

func usage(c Command, text string) error {
	return &UsageError{Command: c, Usage: text}
}

// Message renders err as the reply shown to the user.
func Message(err error) string {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue.Usage
	}
	if errors.Is(err, ErrUnknownCommand) {
		return MsgInvalidCommand
	}

	switch contact.KindOf(err) {
	case contact.KindNone:
		return ""
	case contact.KindMissingArgument:
		return usageArgument
	case contact.KindContactNotFound:
		return MsgContactNotFound
	case contact.KindInvalidPhone:
		return MsgInvalidPhone
	case contact.KindInvalidDate:
		return MsgInvalidDate
	default:
		return err.Error()
	}
}
