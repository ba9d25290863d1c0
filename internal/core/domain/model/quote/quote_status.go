package quote

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// QuoteStatus is the customer-facing top-level state of a quote request.
//
// State transitions:
//
//	pending ──┬──> approved
//	          └──> rejected (terminal)
//
// approved is reached automatically once every line item has exactly one
// approved bid; rejected is reached by an administrative or chef rejection.
// There is no transition out of rejected, and no transition from approved
// back to pending.
type QuoteStatus int

const (
	// UnknownQuoteStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized QuoteStatus values.
	UnknownQuoteStatus QuoteStatus = iota

	// QuotePending is the initial status: bids may be submitted and selected.
	QuotePending

	// QuoteApproved means every line item has exactly one approved bid.
	QuoteApproved

	// QuoteRejected is terminal; the quote was declined before resolution.
	QuoteRejected
)

func getQuoteStatusStrings() map[QuoteStatus]string {
	return map[QuoteStatus]string{
		UnknownQuoteStatus: "unknown",
		QuotePending:       "pending",
		QuoteApproved:      "approved",
		QuoteRejected:      "rejected",
	}
}

func getValidQuoteStatusStrings() map[QuoteStatus]string {
	//nolint:exhaustive // UnknownQuoteStatus is intentionally excluded as it's invalid
	return map[QuoteStatus]string{
		QuotePending:  "pending",
		QuoteApproved: "approved",
		QuoteRejected: "rejected",
	}
}

// Validate checks if the QuoteStatus value is valid.
// Valid statuses are: QuotePending, QuoteApproved, QuoteRejected.
func (s QuoteStatus) Validate() error {
	if _, ok := getValidQuoteStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("quote status is invalid",
			fmt.Errorf("%d is not a valid quote status", s))
	}
	return nil
}

// String returns the lowercase status name used in views and error messages.
// Implements the fmt.Stringer interface; safe to call on any value.
func (s QuoteStatus) String() string {
	if str, ok := getQuoteStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Reject transitions the status to QuoteRejected.
//
// Valid transitions:
//   - pending -> rejected
//
// Rejected is terminal and approved quotes cannot be rejected.
func (s QuoteStatus) Reject() (QuoteStatus, error) {
	if s != QuotePending {
		return 0, errs.NewInvalidTransitionError("reject quote", s.String(), QuotePending.String())
	}
	return QuoteRejected, nil
}
