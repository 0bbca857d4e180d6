package timeutil

import (
	"testing"
	"time"
)

func TestEATOffset(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	eat := ToEAT(ref)

	_, offset := eat.Zone()
	if offset != 3*60*60 {
		t.Errorf("expected UTC+3 offset, got %d seconds", offset)
	}
	if eat.Hour() != 15 {
		t.Errorf("12:00 UTC should be 15:00 EAT, got %d:00", eat.Hour())
	}
}

func TestFormatEATDisplay(t *testing.T) {
	// 22:30 UTC on June 15 is already June 16 in EAT; the printed date
	// must follow the business timezone, not UTC.
	ref := time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC)
	if got := FormatEAT(ref, DisplayLayout); got != "16/06/2025" {
		t.Errorf("FormatEAT = %q, want 16/06/2025", got)
	}
}
