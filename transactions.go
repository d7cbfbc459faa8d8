package wireledger

import (
	"errors"
	"fmt"
	"time"
)

// Direction tells whether wire left the workshop (OUT) or came back (IN).
type Direction string

const (
	// Out marks quantity issued to the vendor; it opens a new batch.
	Out Direction = "OUT"
	// In marks quantity returned by the vendor; it closes open batches FIFO.
	In Direction = "IN"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Out:
		return Out, nil
	case In:
		return In, nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// ErrInvalidTransaction is wrapped by every normalization failure.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction is a single immutable wire movement as recorded upstream.
//
// On is the occurrence date entered by the operator; when it is zero the
// calendar day of CreatedAt is used instead. CreatedAt also breaks ties
// between same-day movements, so sequence numbers are reload-stable.
type Transaction struct {
	Vendor    string    `json:"vendor"`
	Wire      string    `json:"wire"`
	Design    string    `json:"design,omitempty"`
	Direction Direction `json:"direction"`
	Quantity  Quantity  `json:"quantity"`
	On        Date      `json:"date,omitzero"`
	CreatedAt time.Time `json:"createdAt"`
	Price     Money     `json:"price,omitzero"` // per kg, informational
}

// NewTransaction creates a movement for the given direction.
func NewTransaction(dir Direction, on Date, createdAt time.Time, vendor, wire, design string, qty Quantity) Transaction {
	return Transaction{
		Vendor:    vendor,
		Wire:      wire,
		Design:    design,
		Direction: dir,
		Quantity:  qty,
		On:        on,
		CreatedAt: createdAt,
	}
}

// When returns the canonical calendar day of the transaction: the occurrence
// date when present, otherwise the day of the creation timestamp.
func (t Transaction) When() Date {
	if !t.On.IsZero() {
		return t.On
	}
	return DateOf(t.CreatedAt)
}

// Validate checks the transaction for correctness. It never coerces: a
// negative quantity, an unknown direction, or a movement with no usable date
// is rejected with an error wrapping ErrInvalidTransaction.
func (t Transaction) Validate() error {
	if t.Vendor == "" {
		return fmt.Errorf("%w: vendor name is missing", ErrInvalidTransaction)
	}
	if t.Wire == "" {
		return fmt.Errorf("%w: wire name is missing", ErrInvalidTransaction)
	}
	if _, err := ParseDirection(string(t.Direction)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	if t.Quantity.IsNegative() {
		return fmt.Errorf("%w: quantity must not be negative, got %s", ErrInvalidTransaction, t.Quantity)
	}
	if t.On.IsZero() && t.CreatedAt.IsZero() {
		return fmt.Errorf("%w: no occurrence date and no creation timestamp", ErrInvalidTransaction)
	}
	return nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Vendor == o.Vendor &&
		t.Wire == o.Wire &&
		t.Design == o.Design &&
		t.Direction == o.Direction &&
		t.Quantity.Equal(o.Quantity) &&
		t.On == o.On &&
		t.CreatedAt.Equal(o.CreatedAt) &&
		t.Price.Equal(o.Price)
}
