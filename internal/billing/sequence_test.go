package billing

import "testing"

// Monotonic increment with zero-padding floor.
func TestNextNumber(t *testing.T) {
	cases := []struct {
		last   string
		prefix string
		want   string
	}{
		{"CMD-009", "CMD", "CMD-010"},
		{"CMD-099", "CMD", "CMD-100"},
		{"CMD-999", "CMD", "CMD-1000"},
		{"CMD-1000", "CMD", "CMD-1001"},
		{"CMD-000", "CMD", "CMD-001"},
		{"", "CMD", "CMD-001"},
		{"garbage", "CMD", "CMD-001"},
		{"CMD-", "CMD", "CMD-001"},
		{"FAC-012", "FAC", "FAC-013"},
		// a last number from the other document type restarts the sequence
		{"CMD-042", "FAC", "FAC-001"},
	}
	for _, c := range cases {
		if got := NextNumber(c.last, c.prefix); got != c.want {
			t.Errorf("NextNumber(%q, %q) = %q, want %q", c.last, c.prefix, got, c.want)
		}
	}
}
