package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/vanguard"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type convertCmd struct {
	input  string
	output string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "converts a raw Vanguard transaction history export to CSV"
}
func (*convertCmd) Usage() string {
	return `vgc convert [-i <raw_export.txt>] [-o <output.csv>]

  Reads the transaction history copied from the Vanguard web page (a header line
  followed by four lines per transaction), removes "$", "—" and "Free" decorations,
  and writes a CSV file with the columns:

    Settlement date,Trade date,Symbol,Name,Transaction type,Quantity,Price,Commissions & fees,Amount

  Missing cells are set to "" for text columns and "0" for numeric ones.
  The output file is overwritten.

  Paths default to $` + EnvInputFile + ` and $` + EnvOutputFile + `, then to
  ` + vanguard.DefaultInputPath + ` and ` + vanguard.DefaultOutputPath + `.

Usage Examples:
$ vgc convert -i vanguard_raw_2019-01-31_2024-02-13.txt -o vanguard.csv
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Raw export to read.")
	f.StringVar(&c.output, "o", "", "CSV file to write.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: convert takes no positional arguments, use -i and -o.")
		return subcommands.ExitUsageError
	}

	cfg := resolveConfig(c.input, c.output)
	logger := newLogger().With("run", uuid.NewString())

	table, err := vanguard.NewConverter(cfg, logger).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", cfg.InputPath, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully wrote %d transactions to %s\n", table.Len(), cfg.OutputPath)
	return subcommands.ExitSuccess
}
