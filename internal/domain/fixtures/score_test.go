package fixtures

import "testing"

func TestParseScore(t *testing.T) {
	cases := []struct {
		raw  string
		want *int
	}{
		{"", nil},
		{"  ", nil},
		{"abc", nil},
		{"NaN", nil},
		{"0", intPtr(0)},
		{" 3 ", intPtr(3)},
		{"2.0", intPtr(2)},
	}
	for _, tc := range cases {
		got := ParseScore(tc.raw)
		switch {
		case tc.want == nil && got != nil:
			t.Fatalf("%q: expected nil, got %d", tc.raw, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Fatalf("%q: expected %d, got %v", tc.raw, *tc.want, got)
		}
	}
}

func intPtr(v int) *int { return &v }
