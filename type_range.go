package wireledger

// Range represents an inclusive range of dates. A zero From or To leaves
// that bound open.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
// Zero bounds are left in place.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsZero reports whether both bounds are open, i.e. the range matches any date.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// String returns the range as "from..to", leaving an open bound blank.
func (r Range) String() string {
	if r.IsZero() {
		return ".."
	}
	return r.From.String() + ".." + r.To.String()
}

// Contains return true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}
