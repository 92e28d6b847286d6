// Package main provides the CLI for the contacts address book assistant.
package main

import (
	"os"

	"github.com/leapstack-labs/contacts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
