package vanguard

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/vanguard/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the normalized kind of a transaction.
type TransactionType string

// Transaction types, in reporting order.
const (
	Deposit       TransactionType = "deposit"
	Withdrawal    TransactionType = "withdrawal"
	Buy           TransactionType = "buy"
	Sell          TransactionType = "sell"
	Dividend      TransactionType = "dividend"
	CapitalGainST TransactionType = "capital_gain_st"
	CapitalGainLT TransactionType = "capital_gain_lt"
)

// TransactionTypes lists every TransactionType in reporting order.
var TransactionTypes = []TransactionType{Deposit, Withdrawal, Buy, Sell, Dividend, CapitalGainST, CapitalGainLT}

// ErrUnknownTransactionType is returned for a "Transaction type" cell with no known mapping.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// vanguardTypes maps the "Transaction type" labels of the export.
// Reinvestments and sweeps into the settlement fund are purchases.
var vanguardTypes = map[string]TransactionType{
	"Buy":                    Buy,
	"Reinvestment":           Buy,
	"Sweep in":               Buy,
	"Reinvestment (LT gain)": Buy,
	"Reinvestment (ST gain)": Buy,
	"Sell":                   Sell,
	"Sweep out":              Sell,
	"Dividend":               Dividend,
	"Funds Received":         Deposit,
	"Funds Withrawn":         Withdrawal, // sic, as spelled in some exports
	"Funds Withdrawn":        Withdrawal,
	"Capital gain (LT)":      CapitalGainLT,
	"Capital gain (ST)":      CapitalGainST,
}

// ParseTransactionType returns the TransactionType for a Vanguard label.
func ParseTransactionType(label string) (TransactionType, error) {
	t, ok := vanguardTypes[strings.TrimSpace(label)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, label)
	}
	return t, nil
}

// Transaction is a typed row of the converted history.
// Amounts are absolute values, the Type carries the direction.
type Transaction struct {
	Type       TransactionType
	Label      string // Label is the original "Transaction type" cell.
	TradeDate  date.Date
	SettleDate date.Date
	Symbol     string
	Name       string
	Shares     Quantity
	Price      Money
	Principal  Money // Principal is the absolute "Amount".
	Commission Money // Commission is the absolute "Commissions & fees".
}

// Net returns the principal minus the commission.
func (tx Transaction) Net() Money { return tx.Principal.Sub(tx.Commission) }

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObject
	w.Append("type", tx.Type)
	w.Append("tradeDate", tx.TradeDate)
	w.Optional("settleDate", tx.SettleDate)
	w.Optional("symbol", tx.Symbol)
	w.Optional("name", tx.Name)
	w.Append("label", tx.Label)
	w.Append("shares", tx.Shares)
	w.Append("price", tx.Price)
	w.Append("principal", tx.Principal)
	w.Append("commission", tx.Commission)
	w.Append("net", tx.Net())
	return w.MarshalJSON()
}

// Transactions maps every row of t to a Transaction.
func Transactions(t *Table) ([]Transaction, error) {
	txs := make([]Transaction, 0, t.Len())
	for i, row := range t.Rows {
		tx, err := newTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func newTransaction(row Row) (Transaction, error) {
	typ, err := ParseTransactionType(row.Get(ColTransactionType))
	if err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		Type:   typ,
		Label:  row.Get(ColTransactionType),
		Symbol: row.Get(ColSymbol),
		Name:   row.Get(ColName),
	}

	if tx.TradeDate, err = parseDate(row, ColTradeDate); err != nil {
		return Transaction{}, err
	}
	if tx.SettleDate, err = parseDate(row, ColSettlementDate); err != nil {
		return Transaction{}, err
	}

	shares, err := parseAbs(row, ColQuantity)
	if err != nil {
		return Transaction{}, err
	}
	price, err := parseAbs(row, ColPrice)
	if err != nil {
		return Transaction{}, err
	}
	principal, err := parseAbs(row, ColAmount)
	if err != nil {
		return Transaction{}, err
	}
	commission, err := parseAbs(row, ColCommissions)
	if err != nil {
		return Transaction{}, err
	}
	tx.Shares = Q(shares)
	tx.Price = USD(price)
	tx.Principal = USD(principal)
	tx.Commission = USD(commission)
	return tx, nil
}

// parseDate parses a month first date cell. An empty cell is the zero Date.
func parseDate(row Row, id ColumnID) (date.Date, error) {
	v := strings.TrimSpace(row.Get(id))
	if v == "" {
		return date.Date{}, nil
	}
	d, err := date.ParseUS(v)
	if err != nil {
		return date.Date{}, fmt.Errorf("column %q: %w", id, err)
	}
	return d, nil
}

// parseAbs parses a numeric cell as its absolute value. An empty cell is zero.
func parseAbs(row Row, id ColumnID) (decimal.Decimal, error) {
	v := strings.TrimSpace(row.Get(id))
	if v == "" {
		return decimal.Zero, nil
	}
	canonical, err := Number.Coerce(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %q: %w", id, err)
	}
	return decimal.RequireFromString(canonical).Abs(), nil
}

// EncodeTransactions writes txs to w in JSONL format, one transaction per line.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	for _, tx := range txs {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("cannot marshal %s transaction of %s: %w", tx.Type, tx.TradeDate, err)
		}
		bw.Write(data)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
