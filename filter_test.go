package wireledger

import "testing"

// ledgerFixture spreads movements over two vendors, two wires and several
// weeks, for the filtering tests.
func ledgerFixture() *Ledger {
	return NewLedger(
		txAt(Out, "2024-01-01", 9, "Asha", "Copper 24", "", 10), // seq 1
		txAt(Out, "2024-01-05", 9, "Asha", "Silver 22", "", 4),  // seq 2
		txAt(In, "2024-01-15", 9, "Asha", "Copper 24", "", 6),   // seq 3
		txAt(Out, "2024-01-20", 9, "Mira", "Copper 24", "", 8),  // seq 4
		txAt(In, "2024-01-31", 9, "Asha", "Copper 24", "", 2),   // seq 5
		txAt(Out, "2024-02-01", 9, "Asha", "Copper 24", "", 5),  // seq 6
	)
}

func TestView_VendorFilterKeepsBalances(t *testing.T) {
	s := mustCompute(t, ledgerFixture())
	v := s.View(Filter{Vendor: "Asha"})

	if v.Len() != 5 {
		t.Fatalf("got %d entries, want 5", v.Len())
	}
	// Slicing by vendor never rewrites the running balances.
	wantBalances := []float64{10, 14, 8, 6, 11}
	for i := range v.Entries {
		if !v.Balance(i).Equal(Q(wantBalances[i])) {
			t.Errorf("entry %d balance = %s, want %v", i, v.Balance(i), wantBalances[i])
		}
	}
}

func TestView_DateRangeBoundariesInclusive(t *testing.T) {
	s := mustCompute(t, ledgerFixture())
	v := s.View(Filter{Dates: NewRange(MustParse("2024-01-01"), MustParse("2024-01-31"))})

	if v.Len() != 5 {
		t.Fatalf("got %d entries, want 5", v.Len())
	}
	for _, e := range v.Entries {
		if e.On == MustParse("2024-02-01") {
			t.Error("entry dated 2024-02-01 must be excluded")
		}
	}
	// Both boundary days are present.
	if v.Entries[0].On != MustParse("2024-01-01") {
		t.Errorf("first entry on %s, want 2024-01-01", v.Entries[0].On)
	}
	if v.Entries[4].On != MustParse("2024-01-31") {
		t.Errorf("last entry on %s, want 2024-01-31", v.Entries[4].On)
	}
}

func TestView_OpenDateBounds(t *testing.T) {
	s := mustCompute(t, ledgerFixture())

	from := s.View(Filter{Dates: Range{From: MustParse("2024-01-20")}})
	if from.Len() != 3 {
		t.Errorf("open-ended from: got %d entries, want 3", from.Len())
	}
	to := s.View(Filter{Dates: Range{To: MustParse("2024-01-05")}})
	if to.Len() != 2 {
		t.Errorf("open-ended to: got %d entries, want 2", to.Len())
	}
}

func TestView_WireScopedBalance(t *testing.T) {
	s := mustCompute(t, ledgerFixture())
	f := Filter{Vendor: "Asha", Wire: "copper"}
	v := s.View(f)

	if !v.WireScoped {
		t.Fatal("view must be wire scoped")
	}
	if v.Len() != 4 {
		t.Fatalf("got %d entries, want 4", v.Len())
	}
	// Balance recomputed from zero over the Copper 24 subset only.
	wantWire := []float64{10, 4, 2, 7}
	for i := range v.Entries {
		if !v.Balance(i).Equal(Q(wantWire[i])) {
			t.Errorf("entry %d wire balance = %s, want %v", i, v.Balance(i), wantWire[i])
		}
	}
	// The vendor-level balance on the entries themselves is untouched.
	wantVendor := []float64{10, 8, 6, 11}
	for i, e := range v.Entries {
		if !e.Balance.Equal(Q(wantVendor[i])) {
			t.Errorf("entry %d vendor balance = %s, want %v", i, e.Balance, wantVendor[i])
		}
	}
}

// TestView_WireRebalanceBeforeDateSlice checks that the wire-scoped balance
// covers the whole filtered history, not just the visible date window.
func TestView_WireRebalanceBeforeDateSlice(t *testing.T) {
	s := mustCompute(t, ledgerFixture())
	f := Filter{
		Vendor: "Asha",
		Wire:   "copper",
		Dates:  NewRange(MustParse("2024-01-31"), MustParse("2024-02-28")),
	}
	v := s.View(f)

	if v.Len() != 2 {
		t.Fatalf("got %d entries, want 2", v.Len())
	}
	// The window opens mid-history: the first visible balance already
	// accounts for the hidden movements before it.
	wantWire := []float64{2, 7}
	for i := range v.Entries {
		if !v.Balance(i).Equal(Q(wantWire[i])) {
			t.Errorf("entry %d wire balance = %s, want %v", i, v.Balance(i), wantWire[i])
		}
	}
}

func TestView_WireFilterIsSubstringCaseInsensitive(t *testing.T) {
	s := mustCompute(t, ledgerFixture())
	testCases := []struct {
		wire string
		want int
	}{
		{"copper", 4},
		{"COPPER 24", 4},
		{"silver", 1},
		{"24", 4},
		{"gold", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.wire, func(t *testing.T) {
			if got := s.View(Filter{Vendor: "Asha", Wire: tc.wire}).Len(); got != tc.want {
				t.Errorf("wire %q: got %d entries, want %d", tc.wire, got, tc.want)
			}
		})
	}
}
