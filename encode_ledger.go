package bottega

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// productCmd is the persisted form of a product.
//
// Cost and price are written as text so that their exact decimal digits
// survive any number of load/save cycles. Both text and numbers are accepted
// when reading.
type productCmd struct {
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
}

// storeFile is the persisted form of the whole ledger.
type storeFile struct {
	Products json.RawMessage `json:"products"`
	Sales    []Sale          `json:"sales"`
}

// DecodeLedger decodes a ledger from its JSON store format.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var f storeFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode store: %w", err)
	}

	ledger := NewLedger()
	if err := decodeProducts(f.Products, ledger); err != nil {
		return nil, err
	}
	if f.Sales != nil {
		ledger.sales = f.Sales
	}
	return ledger, nil
}

// decodeProducts reads the products object token by token so that the
// ledger keeps the order in which products appear in the file.
func decodeProducts(raw json.RawMessage, ledger *Ledger) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("could not decode products: %w", err)
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("could not decode products: expected an object, got %q", raw[:1])
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("could not decode products: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("could not decode products: unexpected token %v", tok)
		}
		var p productCmd
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("could not decode product %q: %w", name, err)
		}
		ledger.put(name, Product{Quantity: p.Quantity, Cost: M(p.Cost), Price: M(p.Price)})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("could not decode products: %w", err)
	}
	return nil
}

// EncodeLedger writes the ledger in its JSON store format, indented for
// humans, with products in insertion order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	var products jsonObjectWriter
	for name, p := range ledger.Products() {
		var fields jsonObjectWriter
		fields.Append("quantity", p.Quantity)
		fields.Append("cost", p.Cost.Text())
		fields.Append("price", p.Price.Text())
		products.Append(name, &fields)
	}
	rawProducts, err := products.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}

	sales := ledger.sales
	if sales == nil {
		sales = []Sale{}
	}
	data, err := json.MarshalIndent(storeFile{Products: rawProducts, Sales: sales}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
