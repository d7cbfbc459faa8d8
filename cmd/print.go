package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wireledger"
	"github.com/google/subcommands"
)

type printCmd struct {
	vendor   string
	page     int
	clear    bool
	clearAll bool
}

func (*printCmd) Name() string     { return "print" }
func (*printCmd) Synopsis() string { return "mark or clear printed ledger pages" }
func (*printCmd) Usage() string {
	return `wlt print -v <vendor> -page <n> [-clear]
wlt print -clear-all

  Marks a (vendor, page) pair as printed, so the ledger command flags the
  page on its next rendering. -clear removes a single mark, -clear-all wipes
  the whole print log. The print log is kept in a local file and cannot be
  modified through -api.
`
}

func (p *printCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vendor, "v", "", "Vendor name.")
	f.IntVar(&p.page, "page", 0, "Page number, starting at 1.")
	f.BoolVar(&p.clear, "clear", false, "Clear the mark instead of setting it.")
	f.BoolVar(&p.clearAll, "clear-all", false, "Clear every mark.")
}

func (p *printCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if *apiURL != "" {
		fmt.Fprintln(os.Stderr, "Error: the print log is read-only when -api is set.")
		return subcommands.ExitUsageError
	}

	store := fileStore()
	stamps, err := store.Stamps(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	log := wireledger.NewPrintLog(stamps...)

	switch {
	case p.clearAll:
		log.ClearAll()
	case p.clear:
		if err := log.Clear(p.vendor, p.page); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	default:
		if err := log.Mark(p.vendor, p.page); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	if err := store.WritePrints(log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
