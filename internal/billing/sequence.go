package billing

import (
	"fmt"
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`^([A-Z]+)-(\d+)$`)

// NextNumber derives the next document number from the last-known one:
// "CMD-009" -> "CMD-010". The numeric suffix is zero-padded to at least
// three digits; wider numbers keep their width ("CMD-999" -> "CMD-1000").
// When last is empty, malformed, or carries a different prefix, numbering
// starts over at PREFIX-001.
//
// This is advisory only. It is a pure function of the number it is handed
// and performs no registry lookup, so two sessions starting from the same
// snapshot will derive the same number.
func NextNumber(last, prefix string) string {
	m := numberPattern.FindStringSubmatch(last)
	if m == nil || m[1] != prefix {
		return fmt.Sprintf("%s-001", prefix)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return fmt.Sprintf("%s-001", prefix)
	}
	return fmt.Sprintf("%s-%03d", prefix, n+1)
}
