// Package commands implements the contacts subcommands and the interactive shell.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/contacts/internal/assistant"
	"github.com/leapstack-labs/contacts/internal/cli/config"
	"github.com/leapstack-labs/contacts/internal/cli/output"
	"github.com/leapstack-labs/contacts/internal/contact"
	"github.com/leapstack-labs/contacts/internal/storage"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Store    storage.Store
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with store and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	store, err := storage.Open(cfg.BookPath, cfg.StorageFormat, storage.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Store:    store,
		Renderer: r,
	}, nil
}

// NewAssistant returns an assistant over book using the configured window.
func (c *CommandContext) NewAssistant(book *contact.Book) *assistant.Assistant {
	return assistant.New(book, assistant.WithWindow(c.Cfg.BirthdayWindow))
}

// renderListing writes all and birthdays as structured output when the
// output mode is not text. It reports whether it handled the command.
func renderListing(r *output.Renderer, a *assistant.Assistant, c assistant.Command) (bool, error) {
	if r.Mode() == output.ModeText {
		return false, nil
	}
	switch c {
	case assistant.CommandAll:
		return true, r.Contacts(a.Book().Records())
	case assistant.CommandBirthdays:
		return true, r.Birthdays(a.Upcoming())
	default:
		return false, nil
	}
}
