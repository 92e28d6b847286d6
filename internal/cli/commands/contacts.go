package commands

import (
	"github.com/leapstack-labs/contacts/internal/assistant"
	"github.com/spf13/cobra"
)

// NewContactCommands creates one subcommand per assistant command.
func NewContactCommands() []*cobra.Command {
	return []*cobra.Command{
		newAssistantCommand(assistant.CommandHello, &cobra.Command{
			Use:   "hello",
			Short: "Greet the assistant",
		}),
		newAssistantCommand(assistant.CommandAdd, &cobra.Command{
			Use:   "add <name> <phone>",
			Short: "Add a contact or a phone to an existing contact",
			Example: `  contacts add John 1234567890
  contacts add John 0987654321`,
		}),
		newAssistantCommand(assistant.CommandChange, &cobra.Command{
			Use:     "change <name> <old-phone> <new-phone>",
			Short:   "Replace a contact's phone number",
			Example: `  contacts change John 1234567890 5555555555`,
		}),
		newAssistantCommand(assistant.CommandPhone, &cobra.Command{
			Use:   "phone <name>",
			Short: "Show a contact's phone numbers",
		}),
		newAssistantCommand(assistant.CommandAll, &cobra.Command{
			Use:     "all",
			Aliases: []string{"list"},
			Short:   "List all contacts",
			Long: `List all contacts in insertion order.

Use --output table or --output json for structured output.`,
		}),
		newAssistantCommand(assistant.CommandAddBirthday, &cobra.Command{
			Use:     "add-birthday <name> <DD.MM.YYYY>",
			Short:   "Set a contact's birthday",
			Example: `  contacts add-birthday John 05.06.1990`,
		}),
		newAssistantCommand(assistant.CommandShowBirthday, &cobra.Command{
			Use:   "show-birthday <name>",
			Short: "Show a contact's birthday",
		}),
		newAssistantCommand(assistant.CommandBirthdays, &cobra.Command{
			Use:   "birthdays",
			Short: "List birthdays in the coming days",
			Long: `List contacts whose birthday falls within the birthday window,
today included. The window defaults to 7 days and is set with --window.`,
			Example: `  contacts birthdays
  contacts birthdays --window 30 -o table`,
		}),
		newAssistantCommand(assistant.CommandDelete, &cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a contact",
		}),
	}
}

// newAssistantCommand fills in cmd to dispatch c. Arguments are checked by
// the assistant so usage replies match the shell.
func newAssistantCommand(c assistant.Command, cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.ArbitraryArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAssistantCommand(cmd, c, args)
	}
	return cmd
}

// runAssistantCommand loads the book, runs c and saves the book when c
// changed it. Command errors are replies, not failures.
func runAssistantCommand(cmd *cobra.Command, c assistant.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	book, err := cc.Store.Load()
	if err != nil {
		return err
	}
	a := cc.NewAssistant(book)

	if handled, err := renderListing(cc.Renderer, a, c); handled {
		return err
	}

	msg, err := a.Handle(c, args)
	if err != nil {
		cc.Logger.Debug("command rejected", "command", c.String(), "error", err)
		cc.Renderer.Error(assistant.Message(err))
		return nil
	}

	if c.Mutates() {
		if err := cc.Store.Save(book); err != nil {
			return err
		}
		cc.Renderer.Success(msg)
		return nil
	}

	cc.Renderer.Println(msg)
	return nil
}
