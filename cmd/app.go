// Package cmd implements the CLI application to manage the shop ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bottega"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "shop")
	c.Register(&addCmd{}, "shop")
	c.Register(&sellCmd{}, "shop")

	for _, r := range reportCmds() {
		c.Register(r, "reports")
	}

	c.Register(&queryCmd{}, "store")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", envOr(EnvStoreFile, bottega.DefaultStoreFile), "Path to the store file (JSON format)")

// Verbose enables diagnostic logs on stderr.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Print diagnostic logs on stderr")

// envOr returns the value of the environment variable 'key', or 'def' if unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// SetupLogging routes the standard logger to stderr in verbose mode, and
// discards it otherwise. To be called once flags are parsed.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("btg: ")
	if *Verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// StorePath returns the path of the store file.
func StorePath() string { return *storeFile }

// DecodeLedger loads the ledger from the app store file.
func DecodeLedger() (*bottega.Ledger, error) {
	return bottega.LoadLedger(StorePath())
}

// EncodeLedger saves the ledger into the app store file.
func EncodeLedger(l *bottega.Ledger) error {
	return bottega.SaveLedger(StorePath(), l)
}

// printMarkdown renders markdown for the terminal, or prints it as is when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		out, err = r.Render(md)
		if err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Printf("could not render markdown: %v", err)
	fmt.Print(md)
}
