package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/bottega"
)

// ProfitsMarkdown renders gross profit, cost of the goods sold and net profit.
func ProfitsMarkdown(ledger *bottega.Ledger) string {
	var b strings.Builder
	gross, net := ledger.GrossProfit(), ledger.NetProfit()

	fmt.Fprint(&b, "# Profitti\n\n")
	fmt.Fprintln(&b, "| Voce | Importo |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Lordo | %s |\n", gross)
	fmt.Fprintf(&b, "| Costo del venduto | %s |\n", gross.Sub(net))
	fmt.Fprintf(&b, "| **Netto** | **%s** |\n", net)
	return b.String()
}

// SalesMarkdown renders every recorded sale with its lines.
func SalesMarkdown(ledger *bottega.Ledger) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Vendite\n\n")

	count := 0
	for i, sale := range ledger.Sales() {
		count++
		ConditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprintf(w, "## Vendita %d\n\n", i+1)
			fmt.Fprintln(w, "| Prodotto | Quantità | Prezzo | Subtotale |")
			fmt.Fprintln(w, "|:---|---:|---:|---:|")
			for _, item := range sale.Items {
				fmt.Fprintf(w, "| %s | %d | %s | %s |\n", cell(item.Name), item.Quantity, item.Price, item.Subtotal())
			}
			fmt.Fprintf(w, "| **Totale** | | | **%s** |\n\n", sale.Total)
			return len(sale.Items) > 0
		})
	}
	if count == 0 {
		fmt.Fprintln(&b, "Nessuna vendita registrata.")
	}
	return b.String()
}
