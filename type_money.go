package vanguard

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every amount in a Vanguard brokerage export.
const Currency = money.USD

// Money is an amount of US dollars. The zero value is $0.
type Money struct {
	dollars decimal.Decimal
}

// USD returns value dollars.
func USD[T number](value T) Money { return Money{dollars: toDecimal(value)} }

var usd = money.GetCurrency(Currency)

func (m Money) Add(n Money) Money  { return Money{dollars: m.dollars.Add(n.dollars)} }
func (m Money) Sub(n Money) Money  { return Money{dollars: m.dollars.Sub(n.dollars)} }
func (m Money) Equal(n Money) bool { return m.dollars.Equal(n.dollars) }
func (m Money) IsZero() bool       { return m.dollars.IsZero() }

// String formats m to the cent, e.g. "$1,234.50".
func (m Money) String() string {
	cents := m.dollars.Shift(int32(usd.Fraction)).Round(0).IntPart()
	return usd.Formatter().Format(cents)
}

// MarshalJSON writes m as {"currency":"USD","amount":1234.5}, rounded to the cent.
func (m Money) MarshalJSON() ([]byte, error) {
	var o jsonObject
	o.Append("currency", Currency)
	o.Append("amount", m.dollars.Round(int32(usd.Fraction)))
	return o.MarshalJSON()
}
