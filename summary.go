package vanguard

import (
	"slices"
	"strings"

	"github.com/etnz/vanguard/date"
)

// TypeTotal aggregates the transactions of one type.
type TypeTotal struct {
	Type  TransactionType
	Count int
	Net   Money
}

// Position aggregates the transactions of one security.
type Position struct {
	Symbol    string
	Shares    Quantity // Shares bought minus shares sold.
	Invested  Money    // Invested is the net of buys minus the net of sells.
	Dividends Money    // Dividends includes capital gain distributions.
}

// Summary is an overview of a transaction history.
type Summary struct {
	From, To  date.Date // trade date range
	Count     int
	Deposited Money // Deposited is deposits minus withdrawals.
	Types     []TypeTotal
	Positions []Position
}

// Summarize computes the Summary of txs.
// Types follow [TransactionTypes] order and only appear when used; positions are sorted by symbol.
func Summarize(txs []Transaction) *Summary {
	s := &Summary{Count: len(txs), Deposited: USD(0)}

	totals := make(map[TransactionType]*TypeTotal)
	positions := make(map[string]*Position)

	for _, tx := range txs {
		if d := tx.TradeDate; !d.IsZero() {
			if s.From.IsZero() || d.Before(s.From) {
				s.From = d
			}
			if s.To.IsZero() || d.After(s.To) {
				s.To = d
			}
		}

		total, ok := totals[tx.Type]
		if !ok {
			total = &TypeTotal{Type: tx.Type, Net: USD(0)}
			totals[tx.Type] = total
		}
		total.Count++
		total.Net = total.Net.Add(tx.Net())

		switch tx.Type {
		case Deposit:
			s.Deposited = s.Deposited.Add(tx.Net())
		case Withdrawal:
			s.Deposited = s.Deposited.Sub(tx.Net())
		}

		if tx.Symbol == "" {
			continue
		}
		pos, ok := positions[tx.Symbol]
		if !ok {
			pos = &Position{Symbol: tx.Symbol, Shares: Q(0), Invested: USD(0), Dividends: USD(0)}
			positions[tx.Symbol] = pos
		}
		switch tx.Type {
		case Buy:
			pos.Shares = pos.Shares.Add(tx.Shares)
			pos.Invested = pos.Invested.Add(tx.Net())
		case Sell:
			pos.Shares = pos.Shares.Sub(tx.Shares)
			pos.Invested = pos.Invested.Sub(tx.Net())
		case Dividend, CapitalGainST, CapitalGainLT:
			pos.Dividends = pos.Dividends.Add(tx.Net())
		}
	}

	for _, t := range TransactionTypes {
		if total, ok := totals[t]; ok {
			s.Types = append(s.Types, *total)
		}
	}
	for _, pos := range positions {
		s.Positions = append(s.Positions, *pos)
	}
	slices.SortFunc(s.Positions, func(a, b Position) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return s
}
