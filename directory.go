package wireledger

import (
	"iter"
	"maps"
	"slices"
)

// WireAssignment is one wire a vendor works on, with its agreed price.
type WireAssignment struct {
	WireName   string `json:"wireName"`
	PayalType  string `json:"payalType"`
	PricePerKg Money  `json:"pricePerKg"`
}

// Vendor is a directory record as served by the vendor directory.
type Vendor struct {
	Name          string           `json:"name"`
	AssignedWires []WireAssignment `json:"assignedWires"`
}

// Directory indexes vendor records by name for price lookups.
type Directory struct {
	vendors map[string]Vendor
}

// NewDirectory creates a directory from vendor records. Later records with
// the same name replace earlier ones.
func NewDirectory(vendors ...Vendor) *Directory {
	d := &Directory{vendors: make(map[string]Vendor, len(vendors))}
	for _, v := range vendors {
		d.vendors[v.Name] = v
	}
	return d
}

// Vendor returns the directory record for a vendor name.
func (d *Directory) Vendor(name string) (Vendor, bool) {
	v, ok := d.vendors[name]
	return v, ok
}

// AllVendors iterates over the directory records in lexical name order.
func (d *Directory) AllVendors() iter.Seq[Vendor] {
	return func(yield func(Vendor) bool) {
		names := slices.Collect(maps.Keys(d.vendors))
		slices.Sort(names)
		for _, name := range names {
			if !yield(d.vendors[name]) {
				return
			}
		}
	}
}

// PricePerKg looks up the agreed price for an exact (wire, design) pair of a
// vendor. A missing vendor or assignment is not an error: there is simply no
// price.
func (d *Directory) PricePerKg(vendor, wire, design string) (Money, bool) {
	v, ok := d.vendors[vendor]
	if !ok {
		return Money{}, false
	}
	for _, a := range v.AssignedWires {
		if a.WireName == wire && a.PayalType == design {
			return a.PricePerKg, true
		}
	}
	return Money{}, false
}

// LabourCharge computes the labour charge of an IN entry: the returned
// quantity times the vendor's agreed price per kg for the exact
// (wire, design) pair. It reports false when the entry is not an IN or no
// price is assigned.
func (d *Directory) LabourCharge(e Entry) (Money, bool) {
	if e.Direction != In {
		return Money{}, false
	}
	price, ok := d.PricePerKg(e.Vendor, e.Wire, e.Design)
	if !ok {
		return Money{}, false
	}
	return price.Mul(e.QtyIn), true
}
