package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10000", 10000, true},
		{"0", 0, true},
		{"5000000", 5000000, true},
		{"", 0, false},
		{" ", 0, false},
		{"10,000", 0, false},
		{"1만원", 0, false},
		{"-500", 0, false},
		{"12.5", 0, false},
		{"99999999999999999999", 0, false}, // overflows int64
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d: ParseAmount(%q) unexpected error %v", i, tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("case %d: ParseAmount(%q) = %d, want %d", i, tc.in, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d: expected error for %q", i, tc.in)
		}
	}
}
