package vanguard

import "github.com/shopspring/decimal"

// number lists the types accepted by the Q and USD constructors.
type number interface {
	float64 | int | int64 | decimal.Decimal
}

func toDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	panic("unreachable")
}

// Quantity is a number of shares. The zero value is zero shares.
type Quantity struct {
	shares decimal.Decimal
}

// Q returns a Quantity of value shares.
func Q[T number](value T) Quantity { return Quantity{shares: toDecimal(value)} }

func (q Quantity) Add(p Quantity) Quantity { return Quantity{shares: q.shares.Add(p.shares)} }
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{shares: q.shares.Sub(p.shares)} }
func (q Quantity) Equal(p Quantity) bool   { return q.shares.Equal(p.shares) }
func (q Quantity) IsZero() bool            { return q.shares.IsZero() }
func (q Quantity) String() string          { return q.shares.String() }

// MarshalJSON writes the quantity as a JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) { return []byte(q.shares.String()), nil }
