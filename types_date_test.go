package wireledger

import "testing"

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: NewDate(2025, 7, 1)},
		{in: "2025-7-1", want: NewDate(2025, 7, 1)},
		{in: " 2025-07-01 ", want: NewDate(2025, 7, 1)},
		{in: "2025-07-01T14:30:00Z", want: NewDate(2025, 7, 1)},
		{in: "2025-07-01T23:30:00+05:30", want: NewDate(2025, 7, 1)},
		{in: "01/07/2025", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) did not fail", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2025, 1, 31)
	b := NewDate(2025, 2, 1)
	if !a.Before(b) || b.Before(a) {
		t.Error("Before() broken across month boundary")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After() broken across month boundary")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a day is neither before nor after itself")
	}
}

func TestDate_AddNormalizes(t *testing.T) {
	if got := NewDate(2025, 1, 31).Add(1); got != NewDate(2025, 2, 1) {
		t.Errorf("Add(1) = %s, want 2025-02-01", got)
	}
	if got := NewDate(2024, 2, 28).Add(1); got != NewDate(2024, 2, 29) {
		t.Errorf("Add(1) = %s, want 2024-02-29 (leap year)", got)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2024-01-01"), MustParse("2024-01-31"))
	testCases := []struct {
		date string
		want bool
	}{
		{"2023-12-31", false},
		{"2024-01-01", true}, // lower boundary included
		{"2024-01-15", true},
		{"2024-01-31", true}, // upper boundary included
		{"2024-02-01", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.date)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestRange_OpenBounds(t *testing.T) {
	from := Range{From: MustParse("2024-01-10")}
	if from.Contains(MustParse("2024-01-09")) {
		t.Error("open-ended range contains a day before its lower bound")
	}
	if !from.Contains(MustParse("2030-01-01")) {
		t.Error("open upper bound must admit any later day")
	}

	to := Range{To: MustParse("2024-01-10")}
	if !to.Contains(MustParse("1999-01-01")) {
		t.Error("open lower bound must admit any earlier day")
	}
	if to.Contains(MustParse("2024-01-11")) {
		t.Error("open-ended range contains a day after its upper bound")
	}

	var all Range
	if !all.IsZero() || !all.Contains(MustParse("2024-01-10")) {
		t.Error("the zero range must admit any day")
	}
}

func TestNewRange_SwapsReversedBounds(t *testing.T) {
	r := NewRange(MustParse("2024-02-01"), MustParse("2024-01-01"))
	if r.From != MustParse("2024-01-01") || r.To != MustParse("2024-02-01") {
		t.Errorf("NewRange did not swap reversed bounds: %s", r)
	}
	// A zero bound stays open rather than being swapped.
	open := NewRange(MustParse("2024-02-01"), Date{})
	if open.From != MustParse("2024-02-01") || !open.To.IsZero() {
		t.Errorf("NewRange moved an open bound: %s", open)
	}
}
