package billing

import (
	"errors"
	"time"
)

// Validation errors surfaced to the submit action. Anything else the
// builder can repair (unknown status, stale totals, caller-supplied dates)
// it repairs silently.
var (
	ErrEmptyLines            = errors.New("document must have at least one line")
	ErrPaymentNotPositive    = errors.New("payment amount must be greater than 0")
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds outstanding balance")
)

// DefaultStatus returns the status a document of the given kind falls back
// to when the draft carries an unrecognized value.
func DefaultStatus(kind DocumentKind) string {
	if kind == KindInvoice {
		return StatusUnpaid
	}
	return StatusDelivered
}

// CoerceStatus validates a status against the document kind's recognized
// set and substitutes the kind's default otherwise, mirroring the
// fail-open policy of CoerceTier.
func CoerceStatus(kind DocumentKind, status string) string {
	switch kind {
	case KindInvoice:
		if status == StatusPaid || status == StatusUnpaid {
			return status
		}
	default:
		if status == StatusDelivered || status == StatusPickedUp {
			return status
		}
	}
	return DefaultStatus(kind)
}

// BuildForSubmission finalizes a draft for persistence:
//
//  1. rejects drafts with no lines,
//  2. coerces the status to a recognized value,
//  3. stamps the issue date with now (the date field is never
//     user-editable; documents are always dated "today"),
//  4. recomputes the grand total from the lines as a final consistency
//     pass, regardless of what the draft carried.
func BuildForSubmission(d Draft, now time.Time) (Draft, error) {
	if len(d.Lines) == 0 {
		return Draft{}, ErrEmptyLines
	}
	d.Status = CoerceStatus(d.Kind, d.Status)
	d.IssueDate = now
	return RecomputeTotal(d), nil
}

// CheckPayment validates a payment amount against a document's
// outstanding balance (grand total minus everything already paid). The
// invariant sum(payments) <= grandTotal is enforced here, at entry time
// only; existing rows are never re-validated.
func CheckPayment(grandTotal, alreadyPaid, amount float64) error {
	if amount <= 0 {
		return ErrPaymentNotPositive
	}
	if amount > grandTotal-alreadyPaid {
		return ErrPaymentExceedsBalance
	}
	return nil
}

// OutstandingBalance is the amount still owed on a document.
func OutstandingBalance(grandTotal, alreadyPaid float64) float64 {
	return grandTotal - alreadyPaid
}
