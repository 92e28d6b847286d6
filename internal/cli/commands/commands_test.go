package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/contacts/internal/cli/config"
	"github.com/leapstack-labs/contacts/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, bookName string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.BookPath = filepath.Join(t.TempDir(), bookName)
	return cfg
}

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range NewContactCommands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

// run executes the named subcommand with cfg in its context.
func run(t *testing.T, cfg *config.Config, name string, args ...string) (string, string) {
	t.Helper()
	cmd := findCommand(t, name)
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))

	require.NoError(t, cmd.ExecuteContext(config.WithConfig(context.Background(), cfg)))
	return out.String(), errOut.String()
}

func TestNewContactCommands(t *testing.T) {
	want := []string{"hello", "add", "change", "phone", "all", "add-birthday", "show-birthday", "birthdays", "delete"}

	cmds := NewContactCommands()
	require.Len(t, cmds, len(want))
	for i, cmd := range cmds {
		assert.Equal(t, want[i], cmd.Name())
		assert.NotEmpty(t, cmd.Short, "Short should not be empty for %s", cmd.Name())
		assert.NotNil(t, cmd.RunE, "RunE should be set for %s", cmd.Name())
	}
}

func TestAddAndQuery(t *testing.T) {
	cfg := testConfig(t, "book.json")

	out, _ := run(t, cfg, "add", "John", "1234567890")
	assert.Equal(t, "Contact added.\n", out)

	out, _ = run(t, cfg, "add", "John", "0987654321")
	assert.Equal(t, "Contact updated.\n", out)

	out, _ = run(t, cfg, "phone", "John")
	assert.Equal(t, "1234567890, 0987654321\n", out)

	out, _ = run(t, cfg, "change", "John", "1234567890", "5555555555")
	assert.Equal(t, "Contact updated.\n", out)

	out, _ = run(t, cfg, "add-birthday", "John", "05.06.1990")
	assert.Equal(t, "Birthday added.\n", out)

	out, _ = run(t, cfg, "show-birthday", "John")
	assert.Equal(t, "05.06.1990\n", out)

	out, _ = run(t, cfg, "all")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "5555555555")

	out, _ = run(t, cfg, "delete", "John")
	assert.Equal(t, "Contact deleted.\n", out)

	out, _ = run(t, cfg, "all")
	assert.Equal(t, "No contacts found.\n", out)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr string
	}{
		{name: "add without phone", command: "add", args: []string{"John"}, wantErr: "Give me name and phone please."},
		{name: "add invalid phone", command: "add", args: []string{"John", "123"}, wantErr: "Invalid phone number format. Use a 10-digit number."},
		{name: "change too few", command: "change", args: []string{"John", "1234567890"}, wantErr: "Give me name, old phone and new phone."},
		{name: "phone unknown", command: "phone", args: []string{"Nobody"}, wantErr: "Contact not found."},
		{name: "phone no args", command: "phone", wantErr: "Enter the argument for the command"},
		{name: "birthday unknown contact", command: "add-birthday", args: []string{"Nobody", "05.06.1990"}, wantErr: "Contact not found."},
		{name: "birthday missing date", command: "add-birthday", args: []string{"Nobody"}, wantErr: "Give me name and birthday in format DD.MM.YYYY."},
		{name: "delete unknown", command: "delete", args: []string{"Nobody"}, wantErr: "Contact not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, "book.json")
			out, errOut := run(t, cfg, tt.command, tt.args...)
			assert.Empty(t, out)
			assert.Equal(t, tt.wantErr+"\n", errOut)
		})
	}
}

func TestRejectedCommandDoesNotSave(t *testing.T) {
	cfg := testConfig(t, "book.json")

	_, errOut := run(t, cfg, "add", "John", "123")
	assert.Equal(t, "Invalid phone number format. Use a 10-digit number.\n", errOut)

	assert.NoFileExists(t, cfg.BookPath)
}

func TestAllStructuredOutput(t *testing.T) {
	cfg := testConfig(t, "book.yaml")
	run(t, cfg, "add", "John", "1234567890")
	run(t, cfg, "add", "Jane", "0987654321")

	t.Run("json", func(t *testing.T) {
		cfg.OutputFormat = config.OutputJSON
		out, _ := run(t, cfg, "all")

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "John", got[0]["name"])
		assert.Equal(t, "Jane", got[1]["name"])
	})

	t.Run("table", func(t *testing.T) {
		cfg.OutputFormat = config.OutputTable
		out, _ := run(t, cfg, "all")
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "John")
		assert.Contains(t, out, "(2 rows)")
	})
}

func TestBirthdaysCommand(t *testing.T) {
	cfg := testConfig(t, "book.db")
	today := time.Now()
	// 2000 is a leap year, so any calendar day is valid.
	birthday := time.Date(2000, today.Month(), today.Day(), 0, 0, 0, 0, time.Local).Format("02.01.2006")

	out, _ := run(t, cfg, "birthdays")
	assert.Equal(t, "No birthdays in the next week.\n", out)

	run(t, cfg, "add", "John", "1234567890")
	run(t, cfg, "add-birthday", "John", birthday)

	out, _ = run(t, cfg, "birthdays")
	assert.Contains(t, out, "John: ")

	cfg.OutputFormat = config.OutputJSON
	out, _ = run(t, cfg, "birthdays")
	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0]["name"])
}

func TestInvalidBirthday(t *testing.T) {
	cfg := testConfig(t, "book.json")
	run(t, cfg, "add", "John", "1234567890")

	_, errOut := run(t, cfg, "add-birthday", "John", "1990-06-05")
	assert.Equal(t, "Invalid date format. Use DD.MM.YYYY\n", errOut)

	out, _ := run(t, cfg, "show-birthday", "John")
	assert.Equal(t, "Birthday not set.\n", out)
}

func TestUnknownStorageFormat(t *testing.T) {
	cfg := testConfig(t, "book.json")
	cfg.StorageFormat = "xml"

	cmd := findCommand(t, "all")
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(config.WithConfig(context.Background(), cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage format")
}

func TestContactsPersistAcrossFormats(t *testing.T) {
	for _, name := range []string{"book.json", "book.yaml", "book.db"} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t, name)
			run(t, cfg, "add", "John", "1234567890")

			store, err := storage.Open(cfg.BookPath, storage.FormatAuto)
			require.NoError(t, err)
			book, err := store.Load()
			require.NoError(t, err)

			rec, ok := book.Find("John")
			require.True(t, ok)
			assert.Equal(t, "1234567890", rec.PhoneList(", "))
		})
	}
}
