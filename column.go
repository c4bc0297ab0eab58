package vanguard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ColumnType is the type a column's values are coerced to.
type ColumnType int

const (
	// Text keeps the cell as is.
	Text ColumnType = iota
	// Number canonicalizes a numeric-looking cell, e.g. "1,234.50" becomes "1234.5".
	Number
)

func (t ColumnType) String() string {
	switch t {
	case Text:
		return "text"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Coerce converts a cell value to the column type.
func (t ColumnType) Coerce(value string) (string, error) {
	switch t {
	case Text:
		return value, nil
	case Number:
		v := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
		d, err := decimal.NewFromString(v)
		if err != nil {
			return "", fmt.Errorf("invalid number %q: %w", value, err)
		}
		return d.String(), nil
	default:
		return "", fmt.Errorf("unsupported column type %v", t)
	}
}

// ColumnID identifies one of the declared columns. Its value is the column position.
type ColumnID int

// Declared columns, in output order.
const (
	ColSettlementDate ColumnID = iota
	ColTradeDate
	ColSymbol
	ColName
	ColTransactionType
	ColQuantity
	ColPrice
	ColCommissions
	ColAmount

	numColumns
)

// Column describes a column of the normalized table.
type Column struct {
	Name    string     // Name is the exact header string.
	Default string     // Default replaces missing or empty cells.
	Type    ColumnType // Type values are coerced to.
}

// Columns is the fixed, ordered set of columns of a Vanguard transaction history.
var Columns = [numColumns]Column{
	ColSettlementDate:  {Name: "Settlement date", Default: "", Type: Text},
	ColTradeDate:       {Name: "Trade date", Default: "", Type: Text},
	ColSymbol:          {Name: "Symbol", Default: "", Type: Text},
	ColName:            {Name: "Name", Default: "", Type: Text},
	ColTransactionType: {Name: "Transaction type", Default: "", Type: Text},
	ColQuantity:        {Name: "Quantity", Default: "0", Type: Text},
	ColPrice:           {Name: "Price", Default: "0", Type: Text},
	ColCommissions:     {Name: "Commissions & fees", Default: "0", Type: Text},
	ColAmount:          {Name: "Amount", Default: "0", Type: Text},
}

// Column returns the column declaration for id.
func (id ColumnID) Column() Column { return Columns[id] }

// String returns the column name.
func (id ColumnID) String() string { return Columns[id].Name }

// Header returns the column names in declaration order.
func Header() []string {
	header := make([]string, 0, len(Columns))
	for _, c := range Columns {
		header = append(header, c.Name)
	}
	return header
}
