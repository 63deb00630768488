package bottega

import (
	"errors"
	"testing"
)

func newShop(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger()
	if err := ledger.Declare("mela", 5, M(2.0), M(3.0)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Declare("pane", 10, M(0.8), M(1.5)); err != nil {
		t.Fatal(err)
	}
	return ledger
}

func stock(t *testing.T, l *Ledger, name string) int {
	t.Helper()
	p, ok := l.Product(name)
	if !ok {
		t.Fatalf("product %q not found", name)
	}
	return p.Quantity
}

func TestCheckout_Sale(t *testing.T) {
	ledger := newShop(t)
	c := ledger.NewCheckout()

	item, err := c.Add("Mela", 2)
	if err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	if item.Name != "mela" || item.Quantity != 2 || !item.Price.Equal(M(3.0)) {
		t.Errorf("Add() = %+v, want mela x2 at 3", item)
	}
	// stock is taken as soon as the line is entered
	if got := stock(t, ledger, "mela"); got != 3 {
		t.Errorf("mela stock after Add() = %d, want 3", got)
	}

	if _, err := c.Add("pane", 4); err != nil {
		t.Fatal(err)
	}

	sale, ok := c.Close()
	if !ok {
		t.Fatal("Close() did not record the sale")
	}
	if want := M(12.0); !sale.Total.Equal(want) {
		t.Errorf("sale total = %v, want %v", sale.Total, want)
	}
	if len(sale.Items) != 2 {
		t.Errorf("sale has %d items, want 2", len(sale.Items))
	}

	var count int
	for range ledger.Sales() {
		count++
	}
	if count != 1 {
		t.Errorf("ledger has %d sales, want 1", count)
	}
}

func TestCheckout_PriceCapturedAtEntry(t *testing.T) {
	ledger := newShop(t)
	c := ledger.NewCheckout()
	if _, err := c.Add("mela", 1); err != nil {
		t.Fatal(err)
	}
	p, _ := ledger.Product("mela")
	p.Price = M(10)
	ledger.products["mela"] = p

	sale, _ := c.Close()
	if !sale.Items[0].Price.Equal(M(3.0)) {
		t.Errorf("item price = %v, want %v", sale.Items[0].Price, M(3.0))
	}
}

func TestCheckout_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		product  string
		quantity int
		wantErr  error
	}{
		{name: "unknown product", product: "kiwi", quantity: 1, wantErr: ErrProductNotFound},
		{name: "zero quantity", product: "mela", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", product: "mela", quantity: -1, wantErr: ErrInvalidQuantity},
		{name: "more than in stock", product: "mela", quantity: 6, wantErr: ErrUnavailable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := newShop(t)
			c := ledger.NewCheckout()
			_, err := c.Add(tc.product, tc.quantity)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tc.wantErr)
			}
			if got := stock(t, ledger, "mela"); got != 5 {
				t.Errorf("mela stock = %d, want 5", got)
			}
			if len(c.Items()) != 0 {
				t.Errorf("checkout has %d items, want 0", len(c.Items()))
			}
		})
	}
}

func TestCheckout_EmptyIsDiscarded(t *testing.T) {
	ledger := newShop(t)
	c := ledger.NewCheckout()
	if _, ok := c.Close(); ok {
		t.Error("Close() recorded an empty sale")
	}
	if !ledger.GrossProfit().IsZero() {
		t.Errorf("GrossProfit() = %v, want zero", ledger.GrossProfit())
	}
	if _, err := c.Add("mela", 1); !errors.Is(err, ErrCheckoutClosed) {
		t.Errorf("Add() on a closed checkout error = %v, want %v", err, ErrCheckoutClosed)
	}
}

func TestCheckout_Cancel(t *testing.T) {
	ledger := newShop(t)
	c := ledger.NewCheckout()
	if _, err := c.Add("mela", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Add("pane", 3); err != nil {
		t.Fatal(err)
	}
	c.Cancel()

	if got := stock(t, ledger, "mela"); got != 5 {
		t.Errorf("mela stock = %d, want 5", got)
	}
	if got := stock(t, ledger, "pane"); got != 10 {
		t.Errorf("pane stock = %d, want 10", got)
	}
	if _, ok := c.Close(); ok {
		t.Error("Close() after Cancel() recorded a sale")
	}
}
