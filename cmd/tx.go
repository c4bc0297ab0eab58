package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/vanguard"
	"github.com/etnz/vanguard/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	kind     string
	query    string
	markdown bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of a converted CSV" }
func (*txCmd) Usage() string {
	return `vgc tx [-type <type>] [-jsonpath <expr> | -md] [<file.csv>]

  Maps every row of a converted CSV to a typed transaction and prints them as
  JSON lines. The CSV defaults to the convert output path.

  Transaction types: ` + strings.Join(typeNames(), ", ") + `.

Usage Examples:
$ vgc tx -type dividend vanguard.csv
$ vgc tx -jsonpath '$[?(@.type=="buy")].symbol'
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Only list transactions of this type.")
	f.StringVar(&c.query, "jsonpath", "", "JSONPath expression evaluated on the array of transactions.")
	f.BoolVar(&c.markdown, "md", false, "Print a markdown table instead of JSON lines.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.query != "" && c.markdown {
		fmt.Fprintln(os.Stderr, "Error: -jsonpath and -md flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	kind := vanguard.TransactionType(c.kind)
	if c.kind != "" && !validType(kind) {
		fmt.Fprintf(os.Stderr, "Error: unknown transaction type %q, want one of %s\n", c.kind, strings.Join(typeNames(), ", "))
		return subcommands.ExitUsageError
	}
	file, err := csvFile(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs, err := readTransactions(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	txs = filterTransactions(txs, kind)

	switch {
	case c.markdown:
		printMarkdown(renderer.Transactions(txs))
	case c.query != "":
		if err := queryTransactions(os.Stdout, txs, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating jsonpath: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		if err := vanguard.EncodeTransactions(os.Stdout, txs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing transactions: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func typeNames() []string {
	names := make([]string, len(vanguard.TransactionTypes))
	for i, t := range vanguard.TransactionTypes {
		names[i] = string(t)
	}
	return names
}

func validType(kind vanguard.TransactionType) bool {
	for _, t := range vanguard.TransactionTypes {
		if t == kind {
			return true
		}
	}
	return false
}

// filterTransactions keeps the transactions of the given type, or all of them if kind is empty.
func filterTransactions(txs []vanguard.Transaction, kind vanguard.TransactionType) []vanguard.Transaction {
	filtered := make([]vanguard.Transaction, 0, len(txs))
	for _, tx := range txs {
		if kind == "" || tx.Type == kind {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// queryTransactions evaluates the JSONPath expression on the JSON array of txs and writes the indented result.
func queryTransactions(w io.Writer, txs []vanguard.Transaction, expr string) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	result, err := jsonpath.Get(expr, doc)
	if err != nil {
		return fmt.Errorf("invalid expression %q: %w", expr, err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
