package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wireledger"
	"github.com/etnz/wireledger/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	vendor     string
	wire       string
	from       string
	to         string
	page       int
	skipTotals bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "show one page of the reconciled ledger" }
func (*ledgerCmd) Usage() string {
	return `wlt ledger [-v <vendor>] [-w <wire>] [-s <start_date>] [-d <end_date>] [-page <n>]

  Shows one page of the reconciled ledger: chronological entries with batch
  ids, statuses, labour charges and running balances. Without -page it shows
  the last page, so the most recent activity comes first. Filtering by wire
  switches the balance column to wire-scoped balances.
`
}

func (p *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vendor, "v", "", "Vendor name. Shows all vendors by default.")
	f.StringVar(&p.wire, "w", "", "Wire name substring, case-insensitive.")
	f.StringVar(&p.from, "s", "", "The start date of the range (YYYY-MM-DD).")
	f.StringVar(&p.to, "d", "", "The end date of the range (YYYY-MM-DD).")
	f.IntVar(&p.page, "page", 0, "Page to show. Defaults to the last page.")
	f.BoolVar(&p.skipTotals, "no-totals", false, "Do not render the totals section.")
}

func (p *ledgerCmd) filter() (wireledger.Filter, error) {
	f := wireledger.Filter{Vendor: p.vendor, Wire: p.wire}
	var from, to wireledger.Date
	var err error
	if p.from != "" {
		if from, err = wireledger.ParseDate(p.from); err != nil {
			return f, fmt.Errorf("parsing start date: %w", err)
		}
	}
	if p.to != "" {
		if to, err = wireledger.ParseDate(p.to); err != nil {
			return f, fmt.Errorf("parsing end date: %w", err)
		}
	}
	f.Dates = wireledger.NewRange(from, to)
	return f, nil
}

func (p *ledgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := p.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	view := st.View(filter)
	page := p.page
	if page == 0 {
		page = view.LastPage()
	}

	model, err := renderer.NewLedgerPage(view, filter, page, snap.Directory, snap.Prints)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderLedgerPage(model, renderer.LedgerRenderOptions{SkipTotals: p.skipTotals}))
	return subcommands.ExitSuccess
}
