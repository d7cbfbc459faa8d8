package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wireledger"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `wlt fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, sorts them chronologically, and writes them back in a
  canonical JSONL format. An invalid transaction aborts before anything is
  written.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename := *ledgerFile

	in, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	ledger, err := wireledger.DecodeLedger(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	// Computing validates every transaction before the file is touched.
	if _, err := ledger.Compute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := wireledger.EncodeLedger(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d transactions in %s.\n", ledger.Len(), filename)
	return subcommands.ExitSuccess
}
