package wireledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	lineno := 0
	for scanner.Scan() {
		lineno++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction on line %d: %w", lineno, err)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction appends one transaction as a JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical JSONL form: one
// transaction per line, chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDirectory decodes a JSON array of vendor records.
func DecodeDirectory(r io.Reader) (*Directory, error) {
	var vendors []Vendor
	if err := json.NewDecoder(r).Decode(&vendors); err != nil {
		return nil, fmt.Errorf("could not decode vendor directory: %w", err)
	}
	return NewDirectory(vendors...), nil
}

// DecodePrintLog decodes a JSON array of page stamps.
func DecodePrintLog(r io.Reader) (*PrintLog, error) {
	var stamps []PageStamp
	if err := json.NewDecoder(r).Decode(&stamps); err != nil {
		return nil, fmt.Errorf("could not decode print statuses: %w", err)
	}
	return NewPrintLog(stamps...), nil
}

// EncodePrintLog writes the print log as a JSON array of page stamps.
func EncodePrintLog(w io.Writer, l *PrintLog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.Stamps()); err != nil {
		return fmt.Errorf("could not encode print statuses: %w", err)
	}
	return nil
}
