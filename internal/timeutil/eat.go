package timeutil

import (
	"time"
)

// EAT is the East Africa Time location (UTC+3) the business operates in.
var EAT *time.Location

func init() {
	var err error
	EAT, err = time.LoadLocation("Indian/Antananarivo")
	if err != nil {
		// Fallback: create fixed zone if the tz database is not available
		EAT = time.FixedZone("EAT", 3*60*60) // UTC+3
	}
}

// DisplayLayout is the day/month/year form dates take on invoices.
const DisplayLayout = "02/01/2006"

// Now returns the current time in EAT.
func Now() time.Time {
	return time.Now().In(EAT)
}

// ToEAT converts any time to EAT.
func ToEAT(t time.Time) time.Time {
	return t.In(EAT)
}

// FormatEAT formats a time in EAT using the given layout.
func FormatEAT(t time.Time, layout string) string {
	return t.In(EAT).Format(layout)
}
