package bottega

import (
	"errors"
	"fmt"
)

// ErrCheckoutClosed is returned when a closed checkout is used again.
var ErrCheckoutClosed = errors.New("vendita già chiusa")

// SaleItem is one line of a sale. Price is the product sale price when the
// line was entered.
type SaleItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    Money  `json:"price"`
}

// Subtotal returns price × quantity.
func (i SaleItem) Subtotal() Money { return i.Price.Times(i.Quantity) }

// Sale is a recorded transaction. Once in the ledger it is never modified.
type Sale struct {
	Items []SaleItem `json:"items"`
	Total Money      `json:"total"`
}

// Checkout builds a sale one line at a time.
//
// Stock is taken out of the ledger as soon as a line is added, not when the
// checkout is closed.
type Checkout struct {
	ledger *Ledger
	items  []SaleItem
	total  Money
	closed bool
}

// NewCheckout starts a new sale on this ledger.
func (l *Ledger) NewCheckout() *Checkout {
	return &Checkout{ledger: l}
}

// Add takes 'quantity' units of the product out of stock and appends the
// corresponding line.
func (c *Checkout) Add(name string, quantity int) (SaleItem, error) {
	if c.closed {
		return SaleItem{}, ErrCheckoutClosed
	}
	key := NormalizeName(name)
	p, ok := c.ledger.products[key]
	if !ok {
		return SaleItem{}, fmt.Errorf("%w: %q", ErrProductNotFound, key)
	}
	if err := ValidateQuantity(quantity); err != nil {
		return SaleItem{}, err
	}
	if quantity > p.Quantity {
		return SaleItem{}, fmt.Errorf("%w: %d %s richiesti, %d in magazzino", ErrUnavailable, quantity, key, p.Quantity)
	}

	item := SaleItem{Name: key, Quantity: quantity, Price: p.Price}
	c.items = append(c.items, item)
	c.total = c.total.Add(item.Subtotal())
	p.Quantity -= quantity
	c.ledger.products[key] = p
	return item, nil
}

// Items returns the lines added so far.
func (c *Checkout) Items() []SaleItem { return c.items }

// Total returns the running total.
func (c *Checkout) Total() Money { return c.total }

// Close records the sale in the ledger. A checkout without lines records
// nothing and returns false.
func (c *Checkout) Close() (Sale, bool) {
	if c.closed || len(c.items) == 0 {
		c.closed = true
		return Sale{}, false
	}
	c.closed = true
	sale := Sale{Items: c.items, Total: c.total}
	c.ledger.sales = append(c.ledger.sales, sale)
	return sale, true
}

// Cancel puts back in stock every unit taken by this checkout and closes it.
func (c *Checkout) Cancel() {
	if c.closed {
		return
	}
	c.closed = true
	for _, item := range c.items {
		p, ok := c.ledger.products[item.Name]
		if !ok {
			continue
		}
		p.Quantity += item.Quantity
		c.ledger.products[item.Name] = p
	}
	c.items = nil
	c.total = Money{}
}
