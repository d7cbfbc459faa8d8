package wireledger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// TransactionStore serves the raw transaction snapshot. Outbound and inbound
// movements are separate queries upstream; the loader merges them.
type TransactionStore interface {
	Outbound(ctx context.Context) ([]Transaction, error)
	Inbound(ctx context.Context) ([]Transaction, error)
}

// DirectoryService serves the vendor directory.
type DirectoryService interface {
	Vendors(ctx context.Context) ([]Vendor, error)
}

// PrintStatusService serves the printed-page records.
type PrintStatusService interface {
	Stamps(ctx context.Context) ([]PageStamp, error)
}

// Snapshot is everything a reload fetches from the collaborators, as one
// consistent batch.
type Snapshot struct {
	Ledger    *Ledger
	Directory *Directory
	Prints    *PrintLog
}

// LoadError is the aggregate failure of a reload. When any collaborator
// fetch fails the whole reload fails; no ledger is ever computed over a
// partial snapshot.
type LoadError struct {
	err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("reload failed: %v", e.err) }
func (e *LoadError) Unwrap() error { return e.err }

// Load fetches the transaction snapshot, the vendor directory and the print
// statuses as a single batch. All fetches are attempted; any failure is
// collected into one *LoadError and nothing is returned.
func Load(ctx context.Context, txs TransactionStore, dir DirectoryService, prints PrintStatusService) (*Snapshot, error) {
	var errs error

	out, err := txs.Outbound(ctx)
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("outbound transactions: %w", err))
	}
	in, err := txs.Inbound(ctx)
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("inbound transactions: %w", err))
	}
	vendors, err := dir.Vendors(ctx)
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("vendor directory: %w", err))
	}
	stamps, err := prints.Stamps(ctx)
	if err != nil {
		errs = errors.Join(errs, fmt.Errorf("print statuses: %w", err))
	}
	if errs != nil {
		return nil, &LoadError{err: errs}
	}

	ledger := NewLedger(out...)
	ledger.Append(in...)
	return &Snapshot{
		Ledger:    ledger,
		Directory: NewDirectory(vendors...),
		Prints:    NewPrintLog(stamps...),
	}, nil
}

// FileStore implements the collaborator interfaces over local files: a JSONL
// transaction file, a JSON vendor directory and a JSON print-status file.
// Missing directory and print files are treated as empty, the transaction
// file is not.
type FileStore struct {
	LedgerPath    string
	DirectoryPath string
	PrintsPath    string
}

func (s *FileStore) load(ctx context.Context, dir Direction) ([]Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.LedgerPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.LedgerPath, err)
	}
	var txs []Transaction
	for _, tx := range ledger.Transactions(func(tx Transaction) bool { return tx.Direction == dir }) {
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *FileStore) Outbound(ctx context.Context) ([]Transaction, error) { return s.load(ctx, Out) }
func (s *FileStore) Inbound(ctx context.Context) ([]Transaction, error)  { return s.load(ctx, In) }

func (s *FileStore) Vendors(ctx context.Context) ([]Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.DirectoryPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open directory file %q: %w", s.DirectoryPath, err)
	}
	defer f.Close()

	d, err := DecodeDirectory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode directory file %q: %w", s.DirectoryPath, err)
	}
	var vendors []Vendor
	for v := range d.AllVendors() {
		vendors = append(vendors, v)
	}
	return vendors, nil
}

func (s *FileStore) Stamps(ctx context.Context) ([]PageStamp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.PrintsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open print-status file %q: %w", s.PrintsPath, err)
	}
	defer f.Close()

	l, err := DecodePrintLog(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode print-status file %q: %w", s.PrintsPath, err)
	}
	return l.Stamps(), nil
}

// WritePrints persists the print log back to the print-status file.
func (s *FileStore) WritePrints(l *PrintLog) error {
	f, err := os.Create(s.PrintsPath)
	if err != nil {
		return fmt.Errorf("could not write print-status file %q: %w", s.PrintsPath, err)
	}
	defer f.Close()
	return EncodePrintLog(f, l)
}

var (
	_ TransactionStore   = (*FileStore)(nil)
	_ DirectoryService   = (*FileStore)(nil)
	_ PrintStatusService = (*FileStore)(nil)
)
