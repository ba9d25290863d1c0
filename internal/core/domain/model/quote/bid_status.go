package quote

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// BidStatus is the state of one chef's bid within a line item's pool.
//
// A freshly submitted bid is pending. Customer selection approves exactly
// one bid per line item after explicitly resetting every sibling back to
// pending, so at most one bid is ever approved. Rejected bids stay rejected
// and play no further part in selection.
type BidStatus int

const (
	// UnknownBidStatus represents an invalid or undefined status.
	UnknownBidStatus BidStatus = iota

	// BidPending means the bid is open and competing for selection.
	BidPending

	// BidApproved means the customer selected this bid as the winner.
	BidApproved

	// BidRejected means the bid was withdrawn or declined; terminal.
	BidRejected
)

func getBidStatusStrings() map[BidStatus]string {
	return map[BidStatus]string{
		UnknownBidStatus: "unknown",
		BidPending:       "pending",
		BidApproved:      "approved",
		BidRejected:      "rejected",
	}
}

func getValidBidStatusStrings() map[BidStatus]string {
	//nolint:exhaustive // UnknownBidStatus is intentionally excluded as it's invalid
	return map[BidStatus]string{
		BidPending:  "pending",
		BidApproved: "approved",
		BidRejected: "rejected",
	}
}

// Validate checks if the BidStatus value is valid.
// Valid statuses are: BidPending, BidApproved, BidRejected.
func (s BidStatus) Validate() error {
	if _, ok := getValidBidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bid status is invalid",
			fmt.Errorf("%d is not a valid bid status", s))
	}
	return nil
}

// String returns the lowercase status name used in views and error messages.
// Implements the fmt.Stringer interface; safe to call on any value.
func (s BidStatus) String() string {
	if str, ok := getBidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the bid still participates in selection.
// Pending and approved bids are open; rejected bids are not.
func (s BidStatus) IsOpen() bool {
	return s == BidPending || s == BidApproved
}
