package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/vanguard"
	"github.com/etnz/vanguard/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	raw bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals per transaction type and per security" }
func (*summaryCmd) Usage() string {
	return `vgc summary [-raw] [<file.csv>]

  Displays the period covered by a converted CSV, the net deposits, and the totals
  per transaction type and per security. The CSV defaults to the convert output path.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.RenderSummary(vanguard.Summarize(txs))
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
