package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/wireledger"
	"github.com/google/subcommands"
)

// --- Out Command ---

type outCmd struct {
	date     string
	vendor   string
	wire     string
	design   string
	quantity float64
	price    float64
}

func (*outCmd) Name() string     { return "out" }
func (*outCmd) Synopsis() string { return "issue wire to a vendor, opening a new batch" }
func (*outCmd) Usage() string {
	return `wlt out -v <vendor> -w <wire> -q <quantity> [-d <date>] [-t <design>] [-p <price>]

  Records wire issued to a vendor. The movement opens a new batch that later
  IN movements will close first-in, first-out.
`
}

func (c *outCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wireledger.Today().String(), "Movement date (YYYY-MM-DD)")
	f.StringVar(&c.vendor, "v", "", "Vendor name")
	f.StringVar(&c.wire, "w", "", "Wire name")
	f.StringVar(&c.design, "t", "", "Payal type")
	f.Float64Var(&c.quantity, "q", 0, "Quantity in kg")
	f.Float64Var(&c.price, "p", 0, "Optional price per kg")
}

func (c *outCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(wireledger.Out, c.date, c.vendor, c.wire, c.design, c.quantity, c.price, f)
}

// --- In Command ---

type inCmd struct {
	date     string
	vendor   string
	wire     string
	design   string
	quantity float64
	price    float64
}

func (*inCmd) Name() string     { return "in" }
func (*inCmd) Synopsis() string { return "record wire returned by a vendor" }
func (*inCmd) Usage() string {
	return `wlt in -v <vendor> -w <wire> -q <quantity> [-d <date>] [-t <design>] [-p <price>]

  Records wire returned by a vendor. The quantity closes the vendor's oldest
  open batches of that wire first.
`
}

func (c *inCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wireledger.Today().String(), "Movement date (YYYY-MM-DD)")
	f.StringVar(&c.vendor, "v", "", "Vendor name")
	f.StringVar(&c.wire, "w", "", "Wire name")
	f.StringVar(&c.design, "t", "", "Payal type")
	f.Float64Var(&c.quantity, "q", 0, "Quantity in kg")
	f.Float64Var(&c.price, "p", 0, "Optional price per kg")
}

func (c *inCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(wireledger.In, c.date, c.vendor, c.wire, c.design, c.quantity, c.price, f)
}

// record validates the flags, builds the movement and appends it to the
// ledger file.
func record(dir wireledger.Direction, date, vendor, wire, design string, quantity, price float64, f *flag.FlagSet) subcommands.ExitStatus {
	if vendor == "" || wire == "" || quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wireledger.ParseDate(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := wireledger.NewTransaction(dir, day, time.Now(), vendor, wire, design, wireledger.Q(quantity))
	if price > 0 {
		tx.Price = wireledger.M(price, wireledger.DefaultCurrency)
	}
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(*ledgerFile, tx)
}
