// Package renderer turns the shop ledger into markdown reports.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/bottega"
)

// cell escapes text for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// StockMarkdown renders the products in stock, in insertion order, with
// their value at cost.
func StockMarkdown(ledger *bottega.Ledger) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Magazzino\n\n")

	printed := false
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Prodotto | Quantità | Costo | Prezzo | Valore |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
		var units int
		var value bottega.Money
		for name, p := range ledger.Products() {
			printed = true
			units += p.Quantity
			value = value.Add(p.Cost.Times(p.Quantity))
			fmt.Fprintf(w, "| %s | %d | %s | %s | %s |\n",
				cell(name), p.Quantity, p.Cost, p.Price, p.Cost.Times(p.Quantity))
		}
		fmt.Fprintf(w, "| **Totale** | **%d** | | | **%s** |\n", units, value)
		return printed
	})
	if !printed {
		fmt.Fprintln(&b, "Nessun prodotto in magazzino.")
	}
	return b.String()
}
