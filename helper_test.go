package wireledger

import (
	"testing"
	"time"
)

// txAt builds a movement dated day, created at the given hour of that day.
// The hour only matters for same-day ordering.
func txAt(dir Direction, day string, hour int, vendor, wire, design string, qty float64) Transaction {
	on := MustParse(day)
	created := time.Date(on.Year(), on.Month(), on.Day(), hour, 0, 0, 0, time.UTC)
	return NewTransaction(dir, on, created, vendor, wire, design, Q(qty))
}

func mustCompute(t *testing.T, l *Ledger) *Statement {
	t.Helper()
	s, err := l.Compute()
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	return s
}
