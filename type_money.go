package tradeoff

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value such as a price, a position's market
// value or its cost basis. The currency is optional: a bare export column
// rarely says which currency it is in, so "" acts as a weak wildcard that
// any concrete currency overrides.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the full currency metadata, defaulting to USD formatting
// rules when the currency is unknown.
func (m Money) currency() money.Currency {
	code := m.cur
	if code == "" {
		code = money.USD
	}
	// the Money constructor guarantees a never-nil currency
	return *money.New(0, code).Currency()
}

// String returns the formatted representation, e.g. "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money      { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money      { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}

// AsFloat returns the amount as a float64, losing exactness. Meant for the
// analysis side where weights and percentages are float arithmetic anyway.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
