package renderer

import (
	"strings"

	"github.com/etnz/wireledger"
)

// LedgerPage is a struct to represent one page of the reconciled ledger in
// json. Quantities are preformatted so the template renders exactly what the
// builder decided to show (blank cells for the inactive direction, fixed
// three decimals for kilograms).
type LedgerPage struct {

	// Vendor is the vendor filter, empty for the all-vendors view.
	Vendor string `json:"vendor,omitempty"`
	// Wire is the wire filter, empty when no wire filter is active.
	Wire string `json:"wire,omitempty"`
	// Dates is the inclusive date window of the view.
	Dates wireledger.Range `json:"dates,omitzero"`
	// Page is the 1-based page being rendered.
	Page int `json:"page"`
	// TotalPages is the page count of the whole view.
	TotalPages int `json:"totalPages"`
	// Entries is the entry count of the whole view, across all pages.
	Entries int `json:"entries"`
	// WireScoped reports that balances are recomputed per (vendor, wire).
	WireScoped bool `json:"wireScoped,omitempty"`
	// Printed reports that this exact (vendor, page) was already printed.
	Printed bool `json:"printed,omitempty"`
	// Rows are the entries of the page, in ledger order.
	Rows []LedgerRow `json:"rows"`
	// Prefix carries the totals of all pages before this one, nil on page 1.
	Prefix *LedgerTotals `json:"prefix,omitempty"`
	// Totals sums the quantities shown on this page.
	Totals LedgerTotals `json:"totals"`
	// Cumulative sums the quantities of pages 1 up to this one.
	Cumulative LedgerTotals `json:"cumulative"`
	// Labour is the formatted labour charge of the page's IN rows, empty
	// when no row has a price assignment.
	Labour string `json:"labour,omitempty"`
}

// LedgerRow represents a single ledger entry of the page.
type LedgerRow struct {
	Seq       int             `json:"seq"`
	Date      wireledger.Date `json:"date"`
	Vendor    string          `json:"vendor"`
	Wire      string          `json:"wire"`
	Design    string          `json:"design,omitempty"`
	Direction string          `json:"direction"`
	Out       string          `json:"out,omitempty"`
	In        string          `json:"in,omitempty"`
	Batches   string          `json:"batches,omitempty"`
	Labour    string          `json:"labour,omitempty"`
	Balance   string          `json:"balance"`
	Status    string          `json:"status"`
}

// LedgerTotals is a formatted totals line.
type LedgerTotals struct {
	Out     string `json:"out"`
	In      string `json:"in"`
	Balance string `json:"balance"`
}

// kg formats a quantity in kilograms with three decimals, blank when zero so
// each row only shows its active direction.
func kg(q wireledger.Quantity) string {
	if q.IsZero() {
		return ""
	}
	return q.StringFixed(3)
}

func totals(out, in, balance wireledger.Quantity) LedgerTotals {
	return LedgerTotals{
		Out:     out.StringFixed(3),
		In:      in.StringFixed(3),
		Balance: balance.StringFixed(3),
	}
}

// NewLedgerPage builds the view model for one page of a filtered view. The
// directory contributes labour charges, the print log the printed badge; both
// may be empty but not nil.
func NewLedgerPage(v *wireledger.View, f wireledger.Filter, page int, dir *wireledger.Directory, prints *wireledger.PrintLog) (*LedgerPage, error) {
	entries, err := v.Page(page)
	if err != nil {
		return nil, err
	}

	p := &LedgerPage{
		Vendor:     f.Vendor,
		Wire:       f.Wire,
		Dates:      f.Dates,
		Page:       page,
		TotalPages: v.TotalPages(),
		Entries:    v.Len(),
		WireScoped: v.WireScoped,
		Rows:       make([]LedgerRow, 0, len(entries)),
	}
	if f.Vendor != "" {
		p.Printed = prints.Printed(f.Vendor, page)
	}

	offset := (page - 1) * wireledger.PageSize
	for i, e := range entries {
		row := LedgerRow{
			Seq:       e.Seq,
			Date:      e.On,
			Vendor:    e.Vendor,
			Wire:      e.Wire,
			Design:    e.Design,
			Direction: string(e.Direction),
			Out:       kg(e.QtyOut),
			In:        kg(e.QtyIn),
			Batches:   strings.Join(e.BatchIDs(), " "),
			Balance:   v.Balance(offset + i).StringFixed(3),
			Status:    string(e.Status),
		}
		if charge, ok := dir.LabourCharge(e); ok {
			row.Labour = charge.String()
		}
		p.Rows = append(p.Rows, row)
	}

	pt, err := v.PageTotals(page)
	if err != nil {
		return nil, err
	}
	p.Totals = totals(pt.Out, pt.In, pt.Balance)

	ct, err := v.CumulativeTotals(page)
	if err != nil {
		return nil, err
	}
	p.Cumulative = totals(ct.Out, ct.In, ct.Balance)

	if page > 1 {
		ft, err := v.PrefixTotals(page)
		if err != nil {
			return nil, err
		}
		t := totals(ft.Out, ft.In, ft.Balance)
		p.Prefix = &t
	}

	labour, err := v.LabourCharges(dir, page)
	if err != nil {
		return nil, err
	}
	if !labour.IsZero() {
		p.Labour = labour.String()
	}
	return p, nil
}
