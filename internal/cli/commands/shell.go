package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/contacts/internal/assistant"
	"github.com/spf13/cobra"
)

const shellPrompt = "Enter a command: "

// lineReader is the part of *readline.Instance the shell loop uses.
type lineReader interface {
	Readline() (string, error)
}

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive assistant",
		Long: `Start the interactive assistant.

The book is loaded once and saved when the session ends with exit, close
or end of input. Type hello, add, change, phone, all, add-birthday,
show-birthday, birthdays or delete. Tab completes command names.`,
		Args: cobra.NoArgs,
		RunE: RunShell,
	}
}

// RunShell runs the interactive assistant on the command's input and output.
func RunShell(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	book, err := cc.Store.Load()
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     cc.Cfg.HistoryFile,
		AutoComplete:    newCommandCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	return shellLoop(cc, cc.NewAssistant(book), rl)
}

func newCommandCompleter() *readline.PrefixCompleter {
	names := assistant.Names()
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(items...)
}

// shellLoop reads commands until exit, close or end of input, then saves
// the book.
func shellLoop(cc *CommandContext, a *assistant.Assistant, rl lineReader) error {
	cc.Renderer.Println(assistant.MsgWelcome)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c, args := assistant.ParseInput(line)
		if handled, err := renderListing(cc.Renderer, a, c); handled {
			if err != nil {
				return err
			}
			continue
		}

		msg, err := a.Handle(c, args)
		if err != nil {
			cc.Logger.Debug("command rejected", "command", c.String(), "error", err)
			cc.Renderer.Error(assistant.Message(err))
			continue
		}
		cc.Renderer.Println(msg)

		if c == assistant.CommandExit {
			break
		}
	}

	cc.Logger.Debug("saving address book", "path", cc.Store.Path())
	return cc.Store.Save(a.Book())
}
