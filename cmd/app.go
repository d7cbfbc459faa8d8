// Package cmd implements the CLI application to manage a wire ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wireledger"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&ledgerCmd{}, "reports")
	c.Register(&agingCmd{}, "reports")

	c.Register(&outCmd{}, "transactions")
	c.Register(&inCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&printCmd{}, "prints")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var directoryFile = flag.String("directory-file", "vendors.json", "Path to the vendor directory file")
var printsFile = flag.String("prints-file", "prints.json", "Path to the print log file")
var apiURL = flag.String("api", os.Getenv("WLT_API"), "Base URL of the remote ledger service; overrides the local files")

func fileStore() *wireledger.FileStore {
	return &wireledger.FileStore{
		LedgerPath:    *ledgerFile,
		DirectoryPath: *directoryFile,
		PrintsPath:    *printsFile,
	}
}

// loadSnapshot fetches transactions, the vendor directory and the print log,
// from the remote service when -api is set, from the local files otherwise.
func loadSnapshot(ctx context.Context) (*wireledger.Snapshot, error) {
	if *apiURL != "" {
		r := wireledger.NewRemoteStore(*apiURL)
		return wireledger.Load(ctx, r, r, r)
	}
	s := fileStore()
	return wireledger.Load(ctx, s, s, s)
}

// appendTransaction appends a single transaction to the ledger file.
func appendTransaction(filename string, tx wireledger.Transaction) subcommands.ExitStatus {
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := wireledger.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
