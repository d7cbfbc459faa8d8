package wireledger

import "strings"

// Filter restricts the ledger view. The zero Filter matches every entry.
type Filter struct {
	Vendor string // exact vendor name, "" for all vendors
	Wire   string // case-insensitive wire-name substring, "" for all wires
	Dates  Range  // inclusive date range, either bound may be open
}

// WireScoped reports whether the filter selects on wire, which switches the
// view to wire-scoped balances.
func (f Filter) WireScoped() bool { return f.Wire != "" }

// View is a filtered, ordered projection of a Statement. It is read-only:
// building a view never re-runs the matcher.
//
// When the filter is wire-scoped the vendor-level balance is not meaningful,
// so a separate balance recomputed from zero per (vendor, wire) over the
// filtered subset is attached alongside each entry. The entries' own Balance
// field keeps the vendor-level value untouched.
type View struct {
	Entries    []Entry
	WireScoped bool

	wireBalances []Quantity // parallel to Entries, set when WireScoped
}

// View applies the filter to the statement.
//
// Vendor and date predicates are pure slicing. A wire predicate first slices
// by vendor and wire, rebalances that subset from zero, and only then applies
// the date range, so wire-scoped balances stay consistent whatever window is
// shown.
func (s *Statement) View(f Filter) *View {
	entries := make([]Entry, 0, len(s.Entries))
	wire := strings.ToLower(f.Wire)
	for _, e := range s.Entries {
		if f.Vendor != "" && e.Vendor != f.Vendor {
			continue
		}
		if wire != "" && !strings.Contains(strings.ToLower(e.Wire), wire) {
			continue
		}
		entries = append(entries, e)
	}

	v := &View{WireScoped: f.WireScoped()}
	var balances []Quantity
	if v.WireScoped {
		running := make(map[wireKey]Quantity)
		balances = make([]Quantity, len(entries))
		for i, e := range entries {
			k := wireKey{e.Vendor, e.Wire}
			running[k] = running[k].Add(e.QtyOut).Sub(e.QtyIn)
			balances[i] = running[k]
		}
	}

	if f.Dates.IsZero() {
		v.Entries = entries
		v.wireBalances = balances
		return v
	}
	for i, e := range entries {
		if !f.Dates.Contains(e.On) {
			continue
		}
		v.Entries = append(v.Entries, e)
		if v.WireScoped {
			v.wireBalances = append(v.wireBalances, balances[i])
		}
	}
	return v
}

// Len returns the number of entries in the view.
func (v *View) Len() int { return len(v.Entries) }

// Balance returns the balance displayed for the i-th entry of the view: the
// wire-scoped balance when a wire filter is active, the vendor-level running
// balance otherwise.
func (v *View) Balance(i int) Quantity {
	if v.WireScoped {
		return v.wireBalances[i]
	}
	return v.Entries[i].Balance
}
