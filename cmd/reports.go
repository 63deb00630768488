package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bottega"
	"github.com/etnz/bottega/renderer"
	"github.com/google/subcommands"
)

// reportCmd is a read only command that renders the ledger as markdown.
type reportCmd struct {
	name     string
	synopsis string
	render   func(*bottega.Ledger) string
}

func (c *reportCmd) Name() string     { return c.name }
func (c *reportCmd) Synopsis() string { return c.synopsis }
func (c *reportCmd) Usage() string {
	return fmt.Sprintf("btg [-store <file>] %s\n\n  %s.\n", c.name, c.synopsis)
}
func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(c.render(ledger))
	return subcommands.ExitSuccess
}

// reportCmds are the read only reports.
func reportCmds() []*reportCmd {
	return []*reportCmd{
		{"list", "list the products in stock", renderer.StockMarkdown},
		{"profits", "display gross and net profits", renderer.ProfitsMarkdown},
		{"sales", "list the recorded sales", renderer.SalesMarkdown},
	}
}
