package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bottega/shell"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run the interactive shop shell (default)" }
func (*shellCmd) Usage() string {
	return `btg [-store <file>] shell

  Reads commands from the standard input, one per line:
  aggiungi, elenca, vendita, profitti, aiuto, chiudi.
  The store file is saved after every command.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	sh := shell.New(os.Stdin, os.Stdout, ledger, EncodeLedger)
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
