package wireledger

import (
	"sort"
	"time"
)

// AgingRecord reports one outstanding batch of a vendor: how much wire is
// still out and for how long.
type AgingRecord struct {
	BatchID   string
	Wire      string
	Remaining Quantity
	OutDate   Date
	Days      int // age in days, partial days rounded up

	seq int // for a deterministic order among same-day batches
}

// Aging builds the outstanding-batch summary for one vendor: every batch
// with remaining quantity, across all of the vendor's wires, aged against
// now and sorted most recent OUT date first.
//
// Batch identities are the canonical ledger ids, so a batch reads the same
// here and in the main table.
func (s *Statement) Aging(vendor string, now time.Time) []AgingRecord {
	var records []AgingRecord
	for key, queue := range s.queues {
		if key.vendor != vendor {
			continue
		}
		for _, b := range queue.outstanding() {
			records = append(records, AgingRecord{
				BatchID:   b.ID,
				Wire:      b.Wire,
				Remaining: b.Remaining,
				OutDate:   b.On,
				Days:      b.On.AgeDays(now),
				seq:       b.Seq,
			})
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].OutDate != records[j].OutDate {
			return records[i].OutDate.After(records[j].OutDate)
		}
		return records[i].seq > records[j].seq
	})
	return records
}
