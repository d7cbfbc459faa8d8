package renderer

import (
	"time"

	"github.com/etnz/wireledger"
)

// AgingReport is a struct to represent a vendor's outstanding batches in
// json: every batch still holding quantity, newest OUT date first.
type AgingReport struct {

	// Vendor is the vendor the report is about.
	Vendor string `json:"vendor"`
	// On is the day the ages were computed against.
	On wireledger.Date `json:"on"`
	// Total is the formatted sum of all remaining quantities.
	Total string `json:"total"`
	// Rows are the outstanding batches.
	Rows []AgingRow `json:"rows"`
}

// AgingRow represents a single outstanding batch.
type AgingRow struct {
	BatchID   string          `json:"batchId"`
	Wire      string          `json:"wire"`
	Remaining string          `json:"remaining"`
	OutDate   wireledger.Date `json:"outDate"`
	Days      int             `json:"days"`
}

// NewAgingReport builds the view model for a vendor's aging summary.
func NewAgingReport(s *wireledger.Statement, vendor string, now time.Time) *AgingReport {
	r := &AgingReport{
		Vendor: vendor,
		On:     wireledger.DateOf(now),
		Rows:   make([]AgingRow, 0),
	}
	var total wireledger.Quantity
	for _, rec := range s.Aging(vendor, now) {
		total = total.Add(rec.Remaining)
		r.Rows = append(r.Rows, AgingRow{
			BatchID:   rec.BatchID,
			Wire:      rec.Wire,
			Remaining: rec.Remaining.StringFixed(3),
			OutDate:   rec.OutDate,
			Days:      rec.Days,
		})
	}
	r.Total = total.StringFixed(3)
	return r
}
