package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/bottega"
	"github.com/google/subcommands"
)

// saleLine is a "name:quantity" flag value.
type saleLine struct {
	name     string
	quantity int
}

// saleLines collects repeated -i flags.
type saleLines []saleLine

func (s *saleLines) String() string {
	parts := make([]string, 0, len(*s))
	for _, l := range *s {
		parts = append(parts, fmt.Sprintf("%s:%d", l.name, l.quantity))
	}
	return strings.Join(parts, ",")
}

func (s *saleLines) Set(v string) error {
	i := strings.LastIndex(v, ":")
	if i < 0 {
		return fmt.Errorf("expected <name>:<quantity>, got %q", v)
	}
	q, err := strconv.Atoi(strings.TrimSpace(v[i+1:]))
	if err != nil {
		return fmt.Errorf("invalid quantity in %q", v)
	}
	*s = append(*s, saleLine{name: v[:i], quantity: q})
	return nil
}

type sellCmd struct {
	lines saleLines
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of one or more products" }
func (*sellCmd) Usage() string {
	return `btg sell -i <name>:<quantity> [-i <name>:<quantity> ...]

  Records one sale made of every -i line, at the current sale prices.
  If any line is invalid (unknown product, non positive quantity, not enough
  stock) nothing is recorded.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.lines, "i", "Sale line as <name>:<quantity>, repeatable (required)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.lines) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	sale, err := c.lines.sell(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, item := range sale.Items {
		fmt.Printf("- %d X %s: %s\n", item.Quantity, item.Name, item.Price)
	}
	fmt.Println("VENDITA REGISTRATA")
	fmt.Printf("Totale: %s\n", sale.Total)
	return subcommands.ExitSuccess
}

// sell records all lines as one sale, or none of them.
func (s saleLines) sell(ledger *bottega.Ledger) (bottega.Sale, error) {
	checkout := ledger.NewCheckout()
	for _, l := range s {
		if _, err := checkout.Add(l.name, l.quantity); err != nil {
			checkout.Cancel()
			return bottega.Sale{}, fmt.Errorf("line %s:%d: %w", l.name, l.quantity, err)
		}
	}
	sale, _ := checkout.Close()
	return sale, nil
}
