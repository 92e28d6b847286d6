// Package assistant maps the address book commands to handlers.
//
// Handlers return a message or an error. Errors are turned into user-facing
// text by Message, once, at the caller's boundary.
package assistant

import (
	"sort"
	"strings"
)

// Command identifies an assistant command.
type Command int

const (
	CommandUnknown Command = iota
	CommandHello
	CommandAdd
	CommandChange
	CommandPhone
	CommandAll
	CommandAddBirthday
	CommandShowBirthday
	CommandBirthdays
	CommandDelete
	CommandExit
)

var commandNames = map[string]Command{
	"hello":         CommandHello,
	"add":           CommandAdd,
	"change":        CommandChange,
	"phone":         CommandPhone,
	"all":           CommandAll,
	"add-birthday":  CommandAddBirthday,
	"show-birthday": CommandShowBirthday,
	"birthdays":     CommandBirthdays,
	"delete":        CommandDelete,
	"exit":          CommandExit,
	"close":         CommandExit,
}

// ParseCommand resolves a command name, ignoring case and surrounding space.
func ParseCommand(name string) Command {
	if c, ok := commandNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CommandUnknown
}

// ParseInput splits an input line on whitespace into a command and its
// arguments. A blank line yields CommandUnknown and no arguments.
func ParseInput(line string) (Command, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return CommandUnknown, nil
	}
	return ParseCommand(fields[0]), fields[1:]
}

// Names returns every accepted command name, sorted.
func Names() []string {
	names := make([]string, 0, len(commandNames))
	for name := range commandNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Command) String() string {
	switch c {
	case CommandHello:
		return "hello"
	case CommandAdd:
		return "add"
	case CommandChange:
		return "change"
	case CommandPhone:
		return "phone"
	case CommandAll:
		return "all"
	case CommandAddBirthday:
		return "add-birthday"
	case CommandShowBirthday:
		return "show-birthday"
	case CommandBirthdays:
		return "birthdays"
	case CommandDelete:
		return "delete"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Mutates reports whether the command can change the book.
func (c Command) Mutates() bool {
	switch c {
	case CommandAdd, CommandChange, CommandAddBirthday, CommandDelete:
		return true
	default:
		return false
	}
}
