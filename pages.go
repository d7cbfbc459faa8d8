package wireledger

import "fmt"

// PageSize is the fixed number of entries per page.
const PageSize = 20

// PageTotals sums the quantities shown on one page. Balance is the last
// running balance observed on the page (wire-scoped when the view is).
type PageTotals struct {
	Out     Quantity
	In      Quantity
	Balance Quantity
}

// PrefixTotals aggregates every page strictly before the current one.
// Balance is the derived Out minus In.
type PrefixTotals struct {
	Out     Quantity
	In      Quantity
	Balance Quantity
}

// TotalPages returns the number of pages in the view, at least 1.
func (v *View) TotalPages() int {
	n := (len(v.Entries) + PageSize - 1) / PageSize
	if n == 0 {
		n = 1
	}
	return n
}

// LastPage is the default page on load and after any filter change, so the
// newest activity shows first.
func (v *View) LastPage() int { return v.TotalPages() }

// pageBounds returns the half-open entry range [lo, hi) of page p.
func (v *View) pageBounds(p int) (lo, hi int, err error) {
	if p < 1 || p > v.TotalPages() {
		return 0, 0, fmt.Errorf("page %d out of range [1, %d]", p, v.TotalPages())
	}
	lo = (p - 1) * PageSize
	hi = min(lo+PageSize, len(v.Entries))
	return lo, hi, nil
}

// Page returns the entries of the 1-based page p. Concatenating all pages in
// page order reconstructs the view exactly.
func (v *View) Page(p int) ([]Entry, error) {
	lo, hi, err := v.pageBounds(p)
	if err != nil {
		return nil, err
	}
	return v.Entries[lo:hi], nil
}

// PageTotals sums quantity-out and quantity-in over page p and records the
// last running balance observed on that page.
func (v *View) PageTotals(p int) (PageTotals, error) {
	lo, hi, err := v.pageBounds(p)
	if err != nil {
		return PageTotals{}, err
	}
	var t PageTotals
	for i := lo; i < hi; i++ {
		t.Out = t.Out.Add(v.Entries[i].QtyOut)
		t.In = t.In.Add(v.Entries[i].QtyIn)
	}
	if hi > lo {
		t.Balance = v.Balance(hi - 1)
	}
	return t, nil
}

// PrefixTotals sums quantity-out and quantity-in over all pages strictly
// before p.
func (v *View) PrefixTotals(p int) (PrefixTotals, error) {
	lo, _, err := v.pageBounds(p)
	if err != nil {
		return PrefixTotals{}, err
	}
	var t PrefixTotals
	for i := 0; i < lo; i++ {
		t.Out = t.Out.Add(v.Entries[i].QtyOut)
		t.In = t.In.Add(v.Entries[i].QtyIn)
	}
	t.Balance = t.Out.Sub(t.In)
	return t, nil
}

// CumulativeTotals sums quantity-out and quantity-in over pages 1..p
// inclusive, the grand-total row of the all-vendors view.
func (v *View) CumulativeTotals(p int) (PrefixTotals, error) {
	_, hi, err := v.pageBounds(p)
	if err != nil {
		return PrefixTotals{}, err
	}
	var t PrefixTotals
	for i := 0; i < hi; i++ {
		t.Out = t.Out.Add(v.Entries[i].QtyOut)
		t.In = t.In.Add(v.Entries[i].QtyIn)
	}
	t.Balance = t.Out.Sub(t.In)
	return t, nil
}

// LabourCharges sums the labour charges of the IN entries on page p, using
// the directory's price assignments. Entries without a price assignment
// contribute nothing.
func (v *View) LabourCharges(dir *Directory, p int) (Money, error) {
	lo, hi, err := v.pageBounds(p)
	if err != nil {
		return Money{}, err
	}
	var total Money
	for i := lo; i < hi; i++ {
		if charge, ok := dir.LabourCharge(v.Entries[i]); ok {
			total = total.Add(charge)
		}
	}
	return total, nil
}
