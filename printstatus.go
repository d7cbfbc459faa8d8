package wireledger

import (
	"fmt"
	"sort"
)

// PageStamp identifies one printed page of one vendor's ledger view.
type PageStamp struct {
	VendorName string `json:"vendorName"`
	Page       int    `json:"pageNumber"`
}

// PrintLog is the printed-page bookkeeping. It has no bearing on ledger
// computation; it only backs the "page printed" badge.
type PrintLog struct {
	printed map[PageStamp]struct{}
}

// NewPrintLog creates a print log seeded with the given stamps.
func NewPrintLog(stamps ...PageStamp) *PrintLog {
	l := &PrintLog{printed: make(map[PageStamp]struct{}, len(stamps))}
	for _, s := range stamps {
		l.printed[s] = struct{}{}
	}
	return l
}

// Printed reports whether the page was marked printed.
func (l *PrintLog) Printed(vendor string, page int) bool {
	_, ok := l.printed[PageStamp{vendor, page}]
	return ok
}

// Mark records the page as printed.
func (l *PrintLog) Mark(vendor string, page int) error {
	if vendor == "" {
		return fmt.Errorf("vendor name is missing")
	}
	if page < 1 {
		return fmt.Errorf("invalid page number %d", page)
	}
	l.printed[PageStamp{vendor, page}] = struct{}{}
	return nil
}

// Clear removes the print record of one page. Clearing an absent record is a
// local validation failure; the log is left unchanged.
func (l *PrintLog) Clear(vendor string, page int) error {
	s := PageStamp{vendor, page}
	if _, ok := l.printed[s]; !ok {
		return fmt.Errorf("no print record for %s page %d", vendor, page)
	}
	delete(l.printed, s)
	return nil
}

// ClearAll removes every print record.
func (l *PrintLog) ClearAll() {
	l.printed = make(map[PageStamp]struct{})
}

// Stamps returns the recorded stamps sorted by vendor then page.
func (l *PrintLog) Stamps() []PageStamp {
	out := make([]PageStamp, 0, len(l.printed))
	for s := range l.printed {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VendorName != out[j].VendorName {
			return out[i].VendorName < out[j].VendorName
		}
		return out[i].Page < out[j].Page
	})
	return out
}
