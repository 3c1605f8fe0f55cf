package finassist

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value: an exact decimal amount in a currency.
// Journal profit-and-loss math happens on this type so display rounding
// never leaks into the numbers.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// M builds a Money from a decimal amount and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// MFloat builds a Money from a float amount. Only for display-grade values.
func MFloat(value float64, currency string) Money {
	return M(decimal.NewFromFloat(value), currency)
}

// currency resolves the full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's symbol and fraction rules,
// e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Neg() Money            { return Money{value: m.value.Neg(), cur: m.cur} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Mul scales the amount by a plain quantity.
func (m Money) Mul(q decimal.Decimal) Money {
	return Money{value: m.value.Mul(q), cur: m.cur}
}

// cur makes the "" currency weak: the first declared currency wins.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}
