package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/wireledger/renderer"
	"github.com/google/subcommands"
)

type agingCmd struct {
	vendor string
}

func (*agingCmd) Name() string     { return "aging" }
func (*agingCmd) Synopsis() string { return "show a vendor's outstanding batches with their age" }
func (*agingCmd) Usage() string {
	return `wlt aging -v <vendor>

  Lists every batch of the vendor that still holds quantity, across all
  wires, with the remaining quantity and the age in days. Most recent OUT
  date first.
`
}

func (p *agingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vendor, "v", "", "Vendor name.")
}

func (p *agingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.vendor == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	snap, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st, err := snap.Ledger.Compute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderAgingReport(renderer.NewAgingReport(st, p.vendor, time.Now())))
	return subcommands.ExitSuccess
}
