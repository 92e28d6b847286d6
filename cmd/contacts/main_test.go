// Package main provides tests for the contacts CLI.
package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/contacts/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string) {
	t.Helper()
	cmd := cli.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func TestAddressBookWorkflow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	book := filepath.Join(t.TempDir(), "contacts.db")

	steps := []struct {
		args    []string
		wantOut string
		wantErr string
	}{
		{args: []string{"hello"}, wantOut: "How can I help you?\n"},
		{args: []string{"add", "John", "1234567890"}, wantOut: "Contact added.\n"},
		{args: []string{"add", "John", "0987654321"}, wantOut: "Contact updated.\n"},
		{args: []string{"add", "Jane", "555"}, wantErr: "Invalid phone number format. Use a 10-digit number.\n"},
		{args: []string{"change", "John", "0987654321", "1112223333"}, wantOut: "Contact updated.\n"},
		{args: []string{"phone", "John"}, wantOut: "1234567890, 1112223333\n"},
		{args: []string{"add-birthday", "John", "29.02.2000"}, wantOut: "Birthday added.\n"},
		{args: []string{"show-birthday", "John"}, wantOut: "29.02.2000\n"},
		{args: []string{"phone", "Jane"}, wantErr: "Contact not found.\n"},
		{args: []string{"all"}, wantOut: "John: 1234567890, 1112223333\n"},
		{args: []string{"delete", "John"}, wantOut: "Contact deleted.\n"},
		{args: []string{"all"}, wantOut: "No contacts found.\n"},
	}

	for _, step := range steps {
		t.Run(strings.Join(step.args, " "), func(t *testing.T) {
			out, errOut := runCLI(t, append([]string{"--book", book}, step.args...)...)
			assert.Equal(t, step.wantOut, out)
			assert.Equal(t, step.wantErr, errOut)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, _ := runCLI(t, "version")
	assert.Contains(t, out, "contacts v")
}
