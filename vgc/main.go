// Command vgc converts Vanguard transaction history exports to CSV and reports on them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/etnz/vanguard/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, but a broken one is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %v\n", err)
	}

	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete("vgc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
