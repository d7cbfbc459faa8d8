package wireledger

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// TestCompute_SingleBatchLifecycle follows one batch from opening to full
// return: OUT 10, IN 4, IN 6.
func TestCompute_SingleBatchLifecycle(t *testing.T) {
	l := NewLedger(
		txAt(Out, "2025-01-10", 9, "V", "W", "", 10),
		txAt(In, "2025-01-12", 9, "V", "W", "", 4),
		txAt(In, "2025-01-15", 9, "V", "W", "", 6),
	)
	s := mustCompute(t, l)

	if got := len(s.Entries); got != 3 {
		t.Fatalf("got %d entries, want 3", got)
	}

	wantBalances := []float64{10, 6, 0}
	wantStatuses := []Status{StatusCompleted, StatusPartial, StatusCompleted}
	for i, e := range s.Entries {
		if !e.Balance.Equal(Q(wantBalances[i])) {
			t.Errorf("entry %d balance = %s, want %v", i+1, e.Balance, wantBalances[i])
		}
		if e.Status != wantStatuses[i] {
			t.Errorf("entry %d status = %s, want %s", i+1, e.Status, wantStatuses[i])
		}
	}

	b, ok := s.Batch("S-000001")
	if !ok {
		t.Fatal("batch S-000001 not found")
	}
	if !b.Remaining.IsZero() {
		t.Errorf("batch remaining = %s, want 0", b.Remaining)
	}
	if b.Status() != StatusCompleted {
		t.Errorf("batch status = %s, want completed", b.Status())
	}

	// The first entry's batch is fully returned by the end of the pass, so
	// its status reads completed even though the return came later.
	if s.Entries[0].BatchID != "S-000001" {
		t.Errorf("entry 1 batch id = %q, want S-000001", s.Entries[0].BatchID)
	}
}

// TestCompute_FIFOAcrossBatches returns 6 against two open batches of 5 and
// 3: the older batch empties first, the newer keeps 2.
func TestCompute_FIFOAcrossBatches(t *testing.T) {
	l := NewLedger(
		txAt(Out, "2025-01-10", 9, "V", "W", "", 10),
		txAt(In, "2025-01-11", 9, "V", "W", "", 10), // close batch 1 out of the way
		txAt(Out, "2025-01-12", 9, "V", "W", "", 5),
		txAt(Out, "2025-01-13", 9, "V", "other", "", 1),
		txAt(Out, "2025-01-14", 9, "V", "W", "", 3),
		txAt(In, "2025-01-20", 9, "V", "W", "", 6),
	)
	s := mustCompute(t, l)

	in := s.Entries[5]
	wantMatches := []BatchMatch{
		{BatchID: "S-000003", Qty: Q(5)},
		{BatchID: "S-000005", Qty: Q(1)},
	}
	if len(in.Matches) != len(wantMatches) {
		t.Fatalf("IN matches = %v, want %v", in.Matches, wantMatches)
	}
	for i, m := range in.Matches {
		if m.BatchID != wantMatches[i].BatchID || !m.Qty.Equal(wantMatches[i].Qty) {
			t.Errorf("IN match %d = %v, want %v", i, m, wantMatches[i])
		}
	}
	if in.Status != StatusPartial {
		t.Errorf("IN status = %s, want partial", in.Status)
	}

	if b, _ := s.Batch("S-000003"); !b.Completed() {
		t.Errorf("batch S-000003 remaining = %s, want 0", b.Remaining)
	}
	if b, _ := s.Batch("S-000005"); !b.Remaining.Equal(Q(2)) {
		t.Errorf("batch S-000005 remaining = %s, want 2", b.Remaining)
	}
	// Matching never crosses wires.
	if b, _ := s.Batch("S-000004"); !b.Remaining.Equal(Q(1)) {
		t.Errorf("batch S-000004 remaining = %s, want 1", b.Remaining)
	}
}

// TestCompute_InStatusFixedAtProcessing checks that an IN entry's status is
// decided when the entry is processed: a later return completing the same
// batch never upgrades an earlier partial.
func TestCompute_InStatusFixedAtProcessing(t *testing.T) {
	l := NewLedger(
		txAt(Out, "2025-02-01", 9, "V", "W", "", 10),
		txAt(In, "2025-02-02", 9, "V", "W", "", 3),
		txAt(In, "2025-02-03", 9, "V", "W", "", 3),
		txAt(In, "2025-02-04", 9, "V", "W", "", 4),
	)
	s := mustCompute(t, l)

	// The batch ends fully returned, so its OUT reads completed; the first
	// two INs left it open at their own processing time and stay partial.
	want := []Status{StatusCompleted, StatusPartial, StatusPartial, StatusCompleted}
	for i, e := range s.Entries {
		if e.Status != want[i] {
			t.Errorf("entry %d status = %s, want %s", i+1, e.Status, want[i])
		}
	}
}

func TestCompute_Conservation(t *testing.T) {
	// For every batch, the deductions recorded by IN entries plus the
	// remaining quantity equal the original quantity.
	l := NewLedger(
		txAt(Out, "2025-01-10", 9, "V", "W", "", 10),
		txAt(Out, "2025-01-11", 9, "V", "W", "", 7),
		txAt(In, "2025-01-12", 9, "V", "W", "", 4),
		txAt(In, "2025-01-13", 9, "V", "W", "", 8),
		txAt(In, "2025-01-14", 9, "V", "W", "", 2),
	)
	s := mustCompute(t, l)

	deducted := make(map[string]Quantity)
	for _, e := range s.Entries {
		for _, m := range e.Matches {
			deducted[m.BatchID] = deducted[m.BatchID].Add(m.Qty)
		}
	}
	for _, b := range s.Batches("V", "W") {
		if got := deducted[b.ID].Add(b.Remaining); !got.Equal(b.Original) {
			t.Errorf("batch %s: deducted+remaining = %s, want %s", b.ID, got, b.Original)
		}
	}
}

func TestCompute_UnmatchedReturn(t *testing.T) {
	l := NewLedger(
		txAt(Out, "2025-01-10", 9, "V", "W", "", 5),
		txAt(In, "2025-01-12", 9, "V", "W", "", 8),
	)
	s := mustCompute(t, l)

	// The excess over the open batches matches nothing but still lowers
	// the balance by the full returned quantity.
	if got := s.UnmatchedReturn("V", "W"); !got.Equal(Q(3)) {
		t.Errorf("unmatched return = %s, want 3", got)
	}
	if got := s.VendorBalance("V"); !got.Equal(Q(-3)) {
		t.Errorf("vendor balance = %s, want -3", got)
	}
	// The leftover changes the tally and the balance, not the status: the
	// only touched batch was drained by this entry, so it reads completed.
	if s.Entries[1].Status != StatusCompleted {
		t.Errorf("IN status = %s, want completed", s.Entries[1].Status)
	}
}

func TestCompute_InWithNoOpenBatch(t *testing.T) {
	l := NewLedger(txAt(In, "2025-01-10", 9, "V", "W", "", 5))
	s := mustCompute(t, l)

	e := s.Entries[0]
	if len(e.Matches) != 0 {
		t.Errorf("matches = %v, want none", e.Matches)
	}
	if e.Status != StatusPartial {
		t.Errorf("status = %s, want partial", e.Status)
	}
	if got := s.UnmatchedReturn("V", "W"); !got.Equal(Q(5)) {
		t.Errorf("unmatched return = %s, want 5", got)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	l := NewLedger(
		txAt(Out, "2025-01-10", 9, "V", "W", "", 10),
		txAt(In, "2025-01-12", 9, "V", "W", "", 4),
		txAt(Out, "2025-01-12", 8, "U", "W", "", 3),
	)
	a := mustCompute(t, l)
	b := mustCompute(t, l)
	if !reflect.DeepEqual(a.Entries, b.Entries) {
		t.Error("computing twice from the same ledger yields different entries")
	}
}

func TestAppend_ChronologicalOrder(t *testing.T) {
	// Appended out of order; same-day entries ordered by creation time.
	l := NewLedger(
		txAt(Out, "2025-01-12", 15, "V", "W", "", 1),
		txAt(Out, "2025-01-10", 9, "V", "W", "", 2),
		txAt(Out, "2025-01-12", 8, "V", "W", "", 3),
	)
	var got []Quantity
	for _, tx := range l.Transactions() {
		got = append(got, tx.Quantity)
	}
	want := []Quantity{Q(2), Q(3), Q(1)}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTransaction_WhenFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2025, 3, 7, 23, 30, 0, 0, time.UTC)
	tx := NewTransaction(Out, Date{}, created, "V", "W", "", Q(1))
	if got := tx.When(); got != NewDate(2025, 3, 7) {
		t.Errorf("When() = %s, want 2025-03-07", got)
	}
}

func TestCompute_RejectsInvalidTransactions(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
	}{
		{
			name: "negative quantity",
			tx:   txAt(Out, "2025-01-10", 9, "V", "W", "", -1),
		},
		{
			name: "unknown direction",
			tx:   NewTransaction("SIDEWAYS", MustParse("2025-01-10"), time.Now(), "V", "W", "", Q(1)),
		},
		{
			name: "no usable date",
			tx:   NewTransaction(Out, Date{}, time.Time{}, "V", "W", "", Q(1)),
		},
		{
			name: "missing vendor",
			tx:   txAt(Out, "2025-01-10", 9, "", "W", "", 1),
		},
		{
			name: "missing wire",
			tx:   txAt(Out, "2025-01-10", 9, "V", "", "", 1),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger(txAt(Out, "2025-01-09", 9, "V", "W", "", 1), tc.tx)
			if _, err := l.Compute(); !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("Compute() error = %v, want ErrInvalidTransaction", err)
			}
		})
	}
}

func TestLedger_AllVendors(t *testing.T) {
	l := NewLedger(
		txAt(Out, "2025-01-10", 9, "Mira", "W", "", 1),
		txAt(Out, "2025-01-11", 9, "Asha", "W", "", 1),
		txAt(In, "2025-01-12", 9, "Mira", "W", "", 1),
	)
	var got []string
	for v := range l.AllVendors() {
		got = append(got, v)
	}
	want := []string{"Asha", "Mira"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllVendors() = %v, want %v", got, want)
	}
}
