// Package shell implements the interactive, line based command loop of the
// shop: restocking, listing, selling and profit reports, with the ledger saved
// after every command.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/etnz/bottega"
)

// SaveFunc persists the whole ledger.
type SaveFunc func(*bottega.Ledger) error

// command is an entry of the command table.
type command struct {
	name     string
	synopsis string
	run      func(*Shell) error
}

// Close is the command that ends the loop.
const Close = "chiudi"

// commands in the order they are listed by the help.
var commands []command

// set in init: showHelp reads the table.
func init() {
	commands = []command{
		{"aggiungi", "aggiungi un prodotto al magazzino", (*Shell).addProduct},
		{"elenca", "elenca i prodotti in magazzino", (*Shell).listProducts},
		{"vendita", "registra una vendita effettuata", (*Shell).registerSale},
		{"profitti", "mostra i profitti totali", (*Shell).showProfits},
		{"aiuto", "mostra i possibili comandi", (*Shell).showHelp},
	}
}

// Commands returns the names of all the commands the shell accepts.
func Commands() []string {
	names := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		names = append(names, c.name)
	}
	return append(names, Close)
}

// Shell reads commands and answers from 'in' and writes to 'out'.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger *bottega.Ledger
	save   SaveFunc
}

// New creates a shell working on 'ledger'. 'save' is called after every
// command.
func New(in io.Reader, out io.Writer, ledger *bottega.Ledger, save SaveFunc) *Shell {
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		ledger: ledger,
		save:   save,
	}
}

// Run executes commands until "chiudi", the end of input, or a failure to
// save the ledger.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.ask(promptCommand)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, msgBye)
			return nil
		}
		if err != nil {
			return err
		}

		name := strings.ToLower(strings.TrimSpace(line))
		if name == Close {
			fmt.Fprintln(s.out, msgBye)
			return nil
		}

		cmdErr := s.execute(name)
		if err := s.save(s.ledger); err != nil {
			return fmt.Errorf("could not save the ledger after %q: %w", name, err)
		}
		if errors.Is(cmdErr, io.EOF) {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, msgBye)
			return nil
		}
		if cmdErr != nil {
			return cmdErr
		}
	}
}

// execute runs the named command, or reports it as invalid.
func (s *Shell) execute(name string) error {
	for _, c := range commands {
		if c.name == name {
			log.Printf("executing %q", name)
			return c.run(s)
		}
	}
	fmt.Fprintln(s.out, msgInvalidCommand)
	return s.showHelp()
}

// ask prints the prompt and reads one line.
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// confirm asks a yes/no question. Only "si" is a yes.
func (s *Shell) confirm(prompt string) (bool, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(answer)) == yes, nil
}

// askQuantity reads a whole number of units.
func (s *Shell) askQuantity() (int, error) {
	answer, err := s.ask(promptQuantity)
	if err != nil {
		return 0, err
	}
	q, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("quantità non valida %q", answer)
	}
	return q, nil
}

// askMoney reads an amount.
func (s *Shell) askMoney(prompt string) (bottega.Money, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return bottega.Money{}, err
	}
	return bottega.ParseMoney(answer)
}

// fail reports a validation error.
func (s *Shell) fail(err error) {
	fmt.Fprintf(s.out, "Errore: %v\n", err)
}

// isInput reports whether err is an input failure rather than a validation error.
func isInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, bufio.ErrTooLong)
}

func (s *Shell) addProduct() error {
	name, err := s.ask(promptName)
	if err != nil {
		return err
	}
	name = bottega.NormalizeName(name)
	if name == "" {
		s.fail(bottega.ErrInvalidName)
		return nil
	}

	quantity, err := s.askQuantity()
	if err == nil {
		err = bottega.ValidateQuantity(quantity)
	}
	if err != nil {
		if isInput(err) {
			return err
		}
		s.fail(err)
		return nil
	}

	if s.ledger.Has(name) {
		err = s.ledger.AddStock(name, quantity)
	} else {
		err = s.declare(name, quantity)
	}
	if err != nil {
		if isInput(err) {
			return err
		}
		s.fail(err)
		return nil
	}
	fmt.Fprintf(s.out, "AGGIUNTO: %d X %s\n", quantity, name)
	return nil
}

// declare asks for cost and price of a new product and registers it.
func (s *Shell) declare(name string, quantity int) error {
	cost, err := s.askMoney(promptCost)
	if err != nil {
		return err
	}
	price, err := s.askMoney(promptPrice)
	if err != nil {
		return err
	}
	return s.ledger.Declare(name, quantity, cost, price)
}

func (s *Shell) listProducts() error {
	fmt.Fprintln(s.out, msgProductsHeader)
	for name, p := range s.ledger.Products() {
		fmt.Fprintf(s.out, "%s\t%d\t%s\n", name, p.Quantity, p.Price)
	}
	return nil
}

// registerSale builds one sale line by line. Lines entered so far are
// recorded even when the loop is left on a product that was not found.
func (s *Shell) registerSale() error {
	checkout := s.ledger.NewCheckout()
	inputErr := s.saleLoop(checkout)

	if sale, ok := checkout.Close(); ok {
		fmt.Fprintln(s.out, msgSaleRecorded)
		fmt.Fprintf(s.out, "Totale: %s\n", sale.Total)
	}
	return inputErr
}

// saleLoop adds lines to checkout until the user stops. It returns only input errors.
func (s *Shell) saleLoop(checkout *bottega.Checkout) error {
	for {
		name, err := s.ask(promptName)
		if err != nil {
			return err
		}
		name = bottega.NormalizeName(name)
		if !s.ledger.Has(name) {
			fmt.Fprintln(s.out, msgNotFound)
			again, err := s.confirm(promptSearchAgain)
			if err != nil || !again {
				return err
			}
			continue
		}

		quantity, err := s.askQuantity()
		if isInput(err) {
			return err
		}
		if err != nil {
			s.fail(err)
			continue
		}
		item, err := checkout.Add(name, quantity)
		switch {
		case errors.Is(err, bottega.ErrUnavailable):
			fmt.Fprintln(s.out, msgUnavailable)
			continue
		case err != nil:
			s.fail(err)
			continue
		}
		fmt.Fprintf(s.out, "- %d X %s: %s\n", item.Quantity, item.Name, item.Price)

		another, err := s.confirm(promptAnother)
		if err != nil || !another {
			return err
		}
	}
}

func (s *Shell) showProfits() error {
	fmt.Fprintf(s.out, "Profitto: lordo=%s netto=%s\n", s.ledger.GrossProfit(), s.ledger.NetProfit())
	return nil
}

func (s *Shell) showHelp() error {
	fmt.Fprintln(s.out, msgHelpHeader)
	for _, c := range commands {
		fmt.Fprintf(s.out, "%s: %s\n", c.name, c.synopsis)
	}
	fmt.Fprintf(s.out, "%s: esci dal programma\n", Close)
	return nil
}
