package wireledger

import "fmt"

// FormatBatchID derives the canonical batch identifier from the sequence
// number of the OUT entry that opened it.
func FormatBatchID(seq int) string { return fmt.Sprintf("S-%06d", seq) }

// Batch is the quantity opened by a single OUT transaction, tracked until
// fully matched by later IN transactions.
type Batch struct {
	ID        string
	Seq       int // sequence number of the originating OUT entry
	Wire      string
	On        Date // OUT date
	Original  Quantity
	Remaining Quantity
}

// Completed reports whether the batch has been fully returned.
func (b *Batch) Completed() bool { return b.Remaining.IsZero() }

// Status returns the batch fulfilment status.
func (b *Batch) Status() Status {
	if b.Completed() {
		return StatusCompleted
	}
	return StatusPending
}

// BatchMatch records one deduction an IN entry made against a batch.
type BatchMatch struct {
	BatchID string
	Qty     Quantity
}

// batchQueue is the FIFO queue of batches for one (vendor, wire) key.
// Batches are appended by OUT entries and consumed from the front by IN
// entries. head points at the oldest batch that may still hold quantity,
// so repeated consumption never rescans exhausted batches.
type batchQueue struct {
	batches []*Batch
	head    int
}

// open appends a new batch to the queue.
func (q *batchQueue) open(b *Batch) { q.batches = append(q.batches, b) }

// consume deducts need from the oldest open batches first. It returns the
// per-batch deductions and the unmet leftover once the queue is exhausted.
// Remaining quantities never go below zero.
func (q *batchQueue) consume(need Quantity) (matches []BatchMatch, left Quantity) {
	for q.head < len(q.batches) && q.batches[q.head].Completed() {
		q.head++
	}
	for i := q.head; i < len(q.batches) && need.IsPositive(); i++ {
		b := q.batches[i]
		if b.Completed() {
			continue
		}
		deduction := b.Remaining.Min(need)
		b.Remaining = b.Remaining.Sub(deduction)
		need = need.Sub(deduction)
		matches = append(matches, BatchMatch{BatchID: b.ID, Qty: deduction})
		if i == q.head && b.Completed() {
			q.head++
		}
	}
	return matches, need
}

// outstanding returns the batches that still hold quantity, oldest first.
func (q *batchQueue) outstanding() []*Batch {
	var open []*Batch
	for _, b := range q.batches[q.head:] {
		if !b.Completed() {
			open = append(open, b)
		}
	}
	return open
}
