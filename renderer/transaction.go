package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/vanguard"
)

// Transaction renders a transaction to a string.
func Transaction(tx vanguard.Transaction) string {
	switch tx.Type {
	case vanguard.Buy:
		return fmt.Sprintf("Bought %s of %s for %s", tx.Shares, tx.Symbol, tx.Net())
	case vanguard.Sell:
		return fmt.Sprintf("Sold %s of %s for %s", tx.Shares, tx.Symbol, tx.Net())
	case vanguard.Dividend:
		return fmt.Sprintf("Dividend of %s for %s", tx.Net(), tx.Symbol)
	case vanguard.CapitalGainST:
		return fmt.Sprintf("Short term capital gain of %s for %s", tx.Net(), tx.Symbol)
	case vanguard.CapitalGainLT:
		return fmt.Sprintf("Long term capital gain of %s for %s", tx.Net(), tx.Symbol)
	case vanguard.Deposit:
		return fmt.Sprintf("Deposited %s", tx.Net())
	case vanguard.Withdrawal:
		return fmt.Sprintf("Withdrew %s", tx.Net())
	default:
		return tx.Label
	}
}

// Transactions renders transactions as a markdown table, in the given order.
func Transactions(txs []vanguard.Transaction) string {
	var b strings.Builder
	b.WriteString("| Trade date | Type | Description |\n")
	b.WriteString("|:-----------|:-----|:------------|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", tx.TradeDate, tx.Label, escapeCell(Transaction(tx)))
	}
	return b.String()
}

// escapeCell makes s safe inside a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
