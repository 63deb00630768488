package cmd

import (
	"io"
	"log"
	"strings"

	"github.com/etnz/bottega"
	"github.com/etnz/bottega/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers shell completion requests (COMP_LINE is set) and exits;
// it returns immediately otherwise. To be called before parsing flags.
func Complete(name string) {
	completion(envOr(EnvStoreFile, bottega.DefaultStoreFile)).Complete(name)
}

// completion describes the command line for shell completion. Product names
// are read from the store at 'path'.
func completion(path string) *complete.Command {
	products := complete.PredictFunc(func(prefix string) []string {
		return productNames(path, prefix)
	})
	lines := complete.PredictFunc(func(prefix string) []string {
		names := productNames(path, prefix)
		for i, n := range names {
			names[i] = n + ":"
		}
		return names
	})

	topics := complete.PredictFunc(func(string) []string {
		names, _ := docs.AllTopics()
		return append(names, docs.Readme)
	})

	report := &complete.Command{}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store": predict.Files("*.json"),
			"v":     predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"shell": {},
			"add": {Flags: map[string]complete.Predictor{
				"n": products,
				"q": predict.Something,
				"c": predict.Something,
				"p": predict.Something,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"i": lines,
			}},
			"list":    report,
			"profits": report,
			"sales":   report,
			"query":   {Args: predict.Set{"$.products", "$.sales"}},
			"topic":   {Args: topics},
		},
	}
}

// productNames lists the products in the store starting with prefix.
// Completion runs before logging is set up and its output goes to the
// terminal, so logs are discarded while the store is read.
func productNames(path, prefix string) []string {
	out := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(out)

	ledger, err := bottega.LoadLedger(path)
	if err != nil {
		return nil
	}
	var names []string
	for name := range ledger.Products() {
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			names = append(names, name)
		}
	}
	return names
}
