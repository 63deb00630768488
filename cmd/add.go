package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bottega"
	"github.com/google/subcommands"
)

type addCmd struct {
	name     string
	quantity int
	cost     string
	price    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the stock, or restock it" }
func (*addCmd) Usage() string {
	return `btg add -n <name> -q <quantity> [-c <cost> -p <price>]

  Adds units of a product to the stock.
  - n: the product name, case insensitive.
  - q: the number of units, strictly positive.
  - c, p: the unit purchase cost and sale price, required for a new product
    and ignored when restocking a known one.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name (required)")
	f.IntVar(&c.quantity, "q", 0, "Number of units (required)")
	f.StringVar(&c.cost, "c", "", "Unit purchase cost, for a new product")
	f.StringVar(&c.price, "p", "", "Unit sale price, for a new product")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := c.apply(ledger); status != subcommands.ExitSuccess {
		return status
	}

	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("AGGIUNTO: %d X %s\n", c.quantity, bottega.NormalizeName(c.name))
	return subcommands.ExitSuccess
}

// apply adds the product to the ledger.
func (c *addCmd) apply(ledger *bottega.Ledger) subcommands.ExitStatus {
	if ledger.Has(c.name) {
		if c.cost != "" || c.price != "" {
			fmt.Fprintf(os.Stderr, "Warning: %q already exists, cost and price are left unchanged.\n", c.name)
		}
		if err := ledger.AddStock(c.name, c.quantity); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if c.cost == "" || c.price == "" {
		fmt.Fprintf(os.Stderr, "Error: %q is a new product, -c and -p are required.\n", c.name)
		return subcommands.ExitUsageError
	}
	cost, err := bottega.ParseMoney(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := bottega.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.Declare(c.name, c.quantity, cost, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
