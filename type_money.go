package bottega

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the code of the currency every amount in the shop is expressed in.
const Currency = "EUR"

// Money represents a monetary value in the shop currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal amount as typed by a user, e.g. "2.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("importo non valido %q", s)
	}
	return Money{value: d}, nil
}

// currency returns the shop currency definition.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the amount with the currency symbol and the currency
// fraction digits, e.g. "€3.00".
//
// It follows the go-money formatter conventions but works on the decimal
// itself, so amounts beyond int64 minor units are printed as they are.
func (m Money) String() string {
	cur := currency()
	f := cur.Formatter()
	v := m.value.Round(int32(f.Fraction))

	digits, fraction, _ := strings.Cut(v.Abs().StringFixed(int32(f.Fraction)), ".")
	amount := groupThousands(digits, f.Thousand)
	if fraction != "" {
		amount += f.Decimal + fraction
	}
	s := strings.Replace(f.Template, "1", amount, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if v.IsNegative() {
		s = "-" + s
	}
	return s
}

// groupThousands inserts sep between every group of three digits.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Text returns the exact amount as a plain decimal string, without symbol.
func (m Money) Text() string { return m.value.String() }

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }

// Times returns the amount for q units priced m.
func (m Money) Times(q int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(q)))} }

// MarshalJSON writes the exact amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and decimal strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
