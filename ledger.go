package wireledger

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Status is the fulfilment status of a ledger entry or batch.
type Status string

const (
	// StatusPending marks an OUT entry whose batch still holds quantity.
	StatusPending Status = "pending"
	// StatusPartial marks an IN entry for which at least one touched batch
	// was still open after its own deductions (or that matched no batch
	// at all).
	StatusPartial Status = "partial"
	// StatusCompleted marks a fully returned batch, or an IN entry all of
	// whose touched batches were drained by the time its deductions were
	// applied.
	StatusCompleted Status = "completed"
)

// Entry is one enriched row of the reconciled ledger.
type Entry struct {
	Seq       int // 1-based position in the full sorted ledger
	Vendor    string
	Wire      string
	Design    string
	Direction Direction
	QtyOut    Quantity
	QtyIn     Quantity
	On        Date
	Balance   Quantity     // vendor running balance after this entry
	BatchID   string       // batch opened by this entry (OUT only)
	Matches   []BatchMatch // batches this entry deducted from (IN only)
	Status    Status
}

// BatchIDs returns the batch identifiers attached to the entry: the opened
// batch for an OUT entry, the matched batches for an IN entry.
func (e Entry) BatchIDs() []string {
	if e.Direction == Out {
		if e.BatchID == "" {
			return nil
		}
		return []string{e.BatchID}
	}
	ids := make([]string, 0, len(e.Matches))
	for _, m := range e.Matches {
		ids = append(ids, m.BatchID)
	}
	return ids
}

// wireKey addresses one independent FIFO matching queue. There is no
// cross-wire or cross-vendor matching.
type wireKey struct{ vendor, wire string }

// Ledger holds the immutable transaction snapshot.
//
// In a Ledger transactions are always in chronological order: calendar day
// ascending, creation timestamp ascending for same-day entries.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// stableSort sorts the ledger by (calendar day, creation timestamp). The sort
// is stable, so transactions sharing both keys keep their original relative
// order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		a, b := l.transactions[i], l.transactions[j]
		if a.When() != b.When() {
			return a.When().Before(b.When())
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

// Transactions returns an iterator that yields each transaction in
// chronological order. Optional filters restrict the yielded transactions;
// a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByVendor returns a predicate that filters transactions by vendor name.
func ByVendor(vendor string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Vendor == vendor }
}

// AllVendors iterates over the unique vendor names appearing in the ledger,
// in lexical order.
func (l *Ledger) AllVendors() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Vendor] = struct{}{}
		}
		vendors := slices.Collect(maps.Keys(visited))
		slices.Sort(vendors)
		for _, v := range vendors {
			if !yield(v) {
				return
			}
		}
	}
}

// Statement is the reconciled ledger derived from a transaction snapshot:
// enriched entries, the per-(vendor, wire) batch queues, final vendor
// balances and the unmatched-return tally. It is recomputed wholesale and
// never patched incrementally.
type Statement struct {
	Entries []Entry

	queues    map[wireKey]*batchQueue
	byID      map[string]*Batch
	balances  map[string]Quantity // final balance per vendor
	unmatched map[wireKey]Quantity
}

// Compute derives the reconciled Statement from the ledger snapshot.
//
// It normalizes and validates every transaction, establishes the total
// chronological order, then in a single pass opens a batch per OUT entry,
// matches each IN entry FIFO against the oldest open batches of its
// (vendor, wire) key, and accumulates the running vendor balance. An IN
// entry's status is captured during that pass, against the batch state
// right after its deductions; OUT statuses reflect the final batch state.
// Computing twice from the same snapshot yields identical sequence numbers,
// batch ids, statuses and balances.
func (l *Ledger) Compute() (*Statement, error) {
	for i, tx := range l.transactions {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d (%s/%s): %w", i+1, tx.Vendor, tx.Wire, err)
		}
	}

	st := &Statement{
		Entries:   make([]Entry, 0, len(l.transactions)),
		queues:    make(map[wireKey]*batchQueue),
		byID:      make(map[string]*Batch),
		balances:  make(map[string]Quantity),
		unmatched: make(map[wireKey]Quantity),
	}

	// The ledger is kept sorted by Append; sequence numbers are simply
	// positions in that order.
	for i, tx := range l.transactions {
		seq := i + 1
		key := wireKey{tx.Vendor, tx.Wire}
		queue := st.queues[key]
		if queue == nil {
			queue = &batchQueue{}
			st.queues[key] = queue
		}

		e := Entry{
			Seq:       seq,
			Vendor:    tx.Vendor,
			Wire:      tx.Wire,
			Design:    tx.Design,
			Direction: tx.Direction,
			On:        tx.When(),
		}

		switch tx.Direction {
		case Out:
			e.QtyOut = tx.Quantity
			e.BatchID = FormatBatchID(seq)
			b := &Batch{
				ID:        e.BatchID,
				Seq:       seq,
				Wire:      tx.Wire,
				On:        e.On,
				Original:  tx.Quantity,
				Remaining: tx.Quantity,
			}
			queue.open(b)
			st.byID[b.ID] = b
			st.balances[tx.Vendor] = st.balances[tx.Vendor].Add(tx.Quantity)
		case In:
			e.QtyIn = tx.Quantity
			matches, left := queue.consume(tx.Quantity)
			e.Matches = matches
			if left.IsPositive() {
				// Unmet demand matches no batch; it is tallied, not rejected,
				// and still reduces the vendor balance below.
				st.unmatched[key] = st.unmatched[key].Add(left)
			}
			st.balances[tx.Vendor] = st.balances[tx.Vendor].Sub(tx.Quantity)
			// The IN status is fixed here, against the batch state right
			// after this entry's deductions: completed when every touched
			// batch is drained at this point, partial otherwise (including
			// matching no batch at all). Later returns never repaint it.
			e.Status = StatusPartial
			if len(matches) > 0 {
				all := true
				for _, m := range matches {
					if !st.byID[m.BatchID].Completed() {
						all = false
						break
					}
				}
				if all {
					e.Status = StatusCompleted
				}
			}
		}
		e.Balance = st.balances[tx.Vendor]
		st.Entries = append(st.Entries, e)
	}

	// OUT statuses reflect the final batch state after the whole pass, so
	// an OUT entry whose batch is later fully returned reads completed.
	for i := range st.Entries {
		e := &st.Entries[i]
		if e.Direction == Out {
			e.Status = st.byID[e.BatchID].Status()
		}
	}
	return st, nil
}

// Batch returns the batch with the given identifier.
func (s *Statement) Batch(id string) (Batch, bool) {
	b, ok := s.byID[id]
	if !ok {
		return Batch{}, false
	}
	return *b, true
}

// Batches returns copies of all batches opened for the (vendor, wire) key,
// oldest first.
func (s *Statement) Batches(vendor, wire string) []Batch {
	q := s.queues[wireKey{vendor, wire}]
	if q == nil {
		return nil
	}
	out := make([]Batch, len(q.batches))
	for i, b := range q.batches {
		out[i] = *b
	}
	return out
}

// VendorBalance returns the final running balance (cumulative OUT minus
// cumulative IN) for a vendor.
func (s *Statement) VendorBalance(vendor string) Quantity {
	return s.balances[vendor]
}

// UnmatchedReturn returns the total IN quantity for the (vendor, wire) key
// that exceeded the open batches and therefore matched none.
func (s *Statement) UnmatchedReturn(vendor, wire string) Quantity {
	return s.unmatched[wireKey{vendor, wire}]
}
