package bottega

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
	"strings"
)

// Validation errors returned by ledger operations.
var (
	ErrInvalidName     = errors.New("il nome del prodotto non può essere vuoto")
	ErrInvalidQuantity = errors.New("la quantità deve essere un numero positivo")
	ErrInvalidPrice    = errors.New("i prezzi devono essere numeri positivi")
	ErrProductNotFound = errors.New("prodotto non trovato")
	ErrProductExists   = errors.New("prodotto già presente")
	ErrUnavailable     = errors.New("quantità non disponibile")
)

// Product is a stock item: quantity on hand, unit cost and unit sale price.
type Product struct {
	Quantity int
	Cost     Money // purchase unit price
	Price    Money // sale unit price
}

// Ledger holds the products indexed by name and the sales history.
//
// Products are kept in insertion order, sales in chronological order.
type Ledger struct {
	names    []string // product names in insertion order
	products map[string]Product
	sales    []Sale
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		names:    make([]string, 0),
		products: make(map[string]Product),
		sales:    make([]Sale, 0),
	}
}

// NormalizeName returns the key under which a product named 'name' is stored.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateQuantity returns ErrInvalidQuantity unless q is strictly positive.
func ValidateQuantity(q int) error {
	if q <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Product returns the product registered under this name.
func (l *Ledger) Product(name string) (Product, bool) {
	p, ok := l.products[NormalizeName(name)]
	return p, ok
}

// Has reports whether a product exists under this name.
func (l *Ledger) Has(name string) bool {
	_, ok := l.Product(name)
	return ok
}

// Products iterates over products in insertion order.
func (l *Ledger) Products() iter.Seq2[string, Product] {
	return func(yield func(string, Product) bool) {
		for _, name := range l.names {
			if !yield(name, l.products[name]) {
				return
			}
		}
	}
}

// Len returns the number of products.
func (l *Ledger) Len() int { return len(l.names) }

// Sales iterates over recorded sales, oldest first.
func (l *Ledger) Sales() iter.Seq2[int, Sale] { return slices.All(l.sales) }

// put stores p, appending name to the insertion order when new.
func (l *Ledger) put(name string, p Product) {
	if _, exists := l.products[name]; !exists {
		l.names = append(l.names, name)
	}
	l.products[name] = p
}

// AddStock increases the quantity of an existing product. Cost and price are
// left untouched.
func (l *Ledger) AddStock(name string, quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	key := NormalizeName(name)
	p, ok := l.products[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrProductNotFound, key)
	}
	p.Quantity += quantity
	l.products[key] = p
	return nil
}

// Declare registers a new product with its initial stock, cost and price.
func (l *Ledger) Declare(name string, quantity int, cost, price Money) error {
	key := NormalizeName(name)
	if key == "" {
		return ErrInvalidName
	}
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if !cost.IsPositive() || !price.IsPositive() {
		return ErrInvalidPrice
	}
	if _, exists := l.products[key]; exists {
		return fmt.Errorf("%w: %q", ErrProductExists, key)
	}
	l.put(key, Product{Quantity: quantity, Cost: cost, Price: price})
	return nil
}

// GrossProfit returns the sum of all sale totals.
func (l *Ledger) GrossProfit() Money {
	var gross Money
	for _, s := range l.sales {
		gross = gross.Add(s.Total)
	}
	return gross
}

// NetProfit returns the gross profit minus the cost of every unit ever sold.
//
// The cost is the product's cost now, not the one at the time of the sale:
// sale items do not record costs. Items whose product is no longer in the
// ledger count for no cost.
func (l *Ledger) NetProfit() Money {
	net := l.GrossProfit()
	for i, s := range l.sales {
		for _, item := range s.Items {
			p, ok := l.products[item.Name]
			if !ok {
				log.Printf("sale #%d: unknown product %q, counted at no cost", i+1, item.Name)
				continue
			}
			net = net.Sub(p.Cost.Times(item.Quantity))
		}
	}
	return net
}
