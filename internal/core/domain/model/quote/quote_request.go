package quote

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var (
	// ErrQuoteRequestIsNotConstructed is returned when a QuoteRequest instance
	// was not created through the NewQuoteRequest or RestoreQuoteRequest
	// factory methods. This ensures all quote requests are properly validated.
	ErrQuoteRequestIsNotConstructed = errors.New("QuoteRequest must be created via NewQuoteRequest constructor")

	// ErrLineItemsAreRequired is returned when a quote request is created
	// without any line items.
	ErrLineItemsAreRequired = errors.New("a quote request needs at least one line item")
)

// QuoteRequest is the aggregate root of the quote/order lifecycle:
// a customer's party request plus its ordered line items plus, per line
// item, the pool of competing chef bids and, after confirmation, the
// tracked item orders.
//
// QuoteRequest follows these invariants:
//   - At most one approved bid per line item at any time
//   - Confirmed implies every line item has exactly one approved bid
//     and a materialized item order
//   - The overall price, when set, equals the sum of approved bid prices
//     multiplied by line item quantities
//   - The quote status and each order status only move along their
//     documented progressions
//
// All mutating commands targeting one QuoteRequest are linearized by the
// persistence layer through the version field; the aggregate itself is not
// safe for concurrent use by multiple goroutines.
type QuoteRequest struct {
	// id is the unique identifier for the quote request
	id kernel.UUID

	// customerID is the owning customer; only this customer may select
	// bids, confirm the order, and mark items received
	customerID kernel.UUID

	// partyDate is the date of the party
	partyDate time.Time

	// partyLocation is where the party takes place
	partyLocation string

	// vegGuests and nonVegGuests split the expected guests by dietary class
	vegGuests    int
	nonVegGuests int

	// totalPrice is nil until every line item has an approved bid
	totalPrice *kernel.Price

	// status is the customer-facing top-level lifecycle state
	status QuoteStatus

	// isConfirmed freezes the bid layer; set by the confirm order action
	isConfirmed bool

	// version supports optimistic concurrency control in the repository
	version int

	// createdAt is the submission timestamp
	createdAt time.Time

	// lineItems is the ordered, immutable set created with the request
	lineItems []*LineItem

	// isConstructed ensures the quote was created via a factory method
	isConstructed bool
}

// NewQuoteRequest creates a pending QuoteRequest with its line items.
// Line items are created atomically with the request and are immutable
// afterwards; the caller persists the whole aggregate in one transaction so
// partial line-item sets can never exist.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerID: the owning customer (must be a valid UUID)
//   - details: validated party details (date, location, guest counts)
//   - lineItems: non-empty set of validated line items
//   - createdAt: submission timestamp
func NewQuoteRequest(
	id, customerID kernel.UUID,
	details PartyDetails,
	lineItems []*LineItem,
	createdAt time.Time,
) (*QuoteRequest, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		details.Validate(),
	); err != nil {
		return nil, err
	}

	if len(lineItems) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &QuoteRequest{
		id:            id,
		customerID:    customerID,
		partyDate:     details.PartyDate(),
		partyLocation: details.PartyLocation(),
		vegGuests:     details.VegGuests(),
		nonVegGuests:  details.NonVegGuests(),
		status:        QuotePending,
		version:       1,
		createdAt:     createdAt,
		lineItems:     lineItems,
		isConstructed: true,
	}, nil
}

// RestoreQuoteRequest reconstructs a QuoteRequest from persistence.
// Unlike NewQuoteRequest it accepts past party dates and any valid status,
// and trusts the stored version. Used by the repository layer.
func RestoreQuoteRequest(
	id, customerID kernel.UUID,
	partyDate time.Time,
	partyLocation string,
	vegGuests, nonVegGuests int,
	totalPrice *kernel.Price,
	status QuoteStatus,
	isConfirmed bool,
	version int,
	createdAt time.Time,
	lineItems []*LineItem,
) (*QuoteRequest, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(lineItems) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &QuoteRequest{
		id:            id,
		customerID:    customerID,
		partyDate:     partyDate,
		partyLocation: partyLocation,
		vegGuests:     vegGuests,
		nonVegGuests:  nonVegGuests,
		totalPrice:    totalPrice,
		status:        status,
		isConfirmed:   isConfirmed,
		version:       version,
		createdAt:     createdAt,
		lineItems:     lineItems,
		isConstructed: true,
	}, nil
}

// Validate ensures the QuoteRequest instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (q *QuoteRequest) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two quote requests by their unique identifiers.
func (q *QuoteRequest) IsEqual(other *QuoteRequest) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quote request's unique identifier.
func (q *QuoteRequest) ID() kernel.UUID {
	return q.id
}

// CustomerID returns the owning customer's identifier.
func (q *QuoteRequest) CustomerID() kernel.UUID {
	return q.customerID
}

// PartyDate returns the date of the party.
func (q *QuoteRequest) PartyDate() time.Time {
	return q.partyDate
}

// PartyLocation returns where the party takes place.
func (q *QuoteRequest) PartyLocation() string {
	return q.partyLocation
}

// VegGuests returns the vegetarian guest count.
func (q *QuoteRequest) VegGuests() int {
	return q.vegGuests
}

// NonVegGuests returns the non-vegetarian guest count.
func (q *QuoteRequest) NonVegGuests() int {
	return q.nonVegGuests
}

// TotalPrice returns the overall price, or nil while any line item is
// still unresolved.
func (q *QuoteRequest) TotalPrice() *kernel.Price {
	return q.totalPrice
}

// Status returns the customer-facing top-level status.
func (q *QuoteRequest) Status() QuoteStatus {
	return q.status
}

// IsConfirmed tells whether the customer confirmed the order.
// Confirmed quotes are immutable at the bid layer.
func (q *QuoteRequest) IsConfirmed() bool {
	return q.isConfirmed
}

// Version returns the optimistic concurrency version.
func (q *QuoteRequest) Version() int {
	return q.version
}

// CreatedAt returns the submission timestamp.
func (q *QuoteRequest) CreatedAt() time.Time {
	return q.createdAt
}

// LineItems returns the ordered line items.
// The returned slice is a copy; line items themselves are shared.
func (q *QuoteRequest) LineItems() []*LineItem {
	items := make([]*LineItem, len(q.lineItems))
	copy(items, q.lineItems)
	return items
}

// LineItemByID finds a line item by id.
// Returns an ObjectNotFoundError if the id is not part of this quote.
func (q *QuoteRequest) LineItemByID(lineItemID kernel.UUID) (*LineItem, error) {
	for _, item := range q.lineItems {
		if item.ID().IsEqual(lineItemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItemId", lineItemID.String())
}

// SubmitBid appends a chef's bid to a line item's pool.
//
// The bid submission sub-protocol runs only while the quote is pending;
// submitting against an approved or rejected quote fails with an
// InvalidTransitionError. A chef may hold at most one open bid per line item.
func (q *QuoteRequest) SubmitBid(lineItemID kernel.UUID, bid *ChefBid) error {
	if q.status != QuotePending {
		return errs.NewInvalidTransitionError("submit bid", q.status.String(), QuotePending.String())
	}

	item, err := q.LineItemByID(lineItemID)
	if err != nil {
		return err
	}

	return item.submitBid(bid)
}

// SelectBid resolves a line item's pool in favor of one bid.
//
// Every sibling bid is explicitly reset to pending, then the chosen bid is
// approved; the caller persists the whole mutation in one transaction so the
// reset-then-approve sequence can never partially apply. Re-selection is
// allowed until the order is confirmed; afterwards the bid layer is frozen.
//
// Once every line item has exactly one approved bid the quote status becomes
// approved and the overall price is set to the sum of approved bid prices
// multiplied by quantities.
func (q *QuoteRequest) SelectBid(lineItemID, bidID kernel.UUID) error {
	if q.isConfirmed {
		return errs.NewInvalidTransitionError("select bid", "confirmed", "not confirmed")
	}
	if q.status == QuoteRejected {
		return errs.NewInvalidTransitionError("select bid", q.status.String(), QuotePending.String())
	}

	item, err := q.LineItemByID(lineItemID)
	if err != nil {
		return err
	}

	if err = item.selectBid(bidID); err != nil {
		return err
	}

	q.resolve()
	return nil
}

// Reject transitions the quote from pending to the terminal rejected status.
// Only pending quotes can be rejected.
func (q *QuoteRequest) Reject() error {
	next, err := q.status.Reject()
	if err != nil {
		return err
	}
	q.status = next
	return nil
}

// Confirm freezes the bid layer and materializes one item order per line
// item from its approved bid.
//
// Requires the quote to be approved (every line item resolved) and not yet
// confirmed. Each new item order starts in pending_confirmation and is
// advanced to confirmed by this same action. The overall price is frozen as
// the sum of agreed line totals.
func (q *QuoteRequest) Confirm() error {
	if q.isConfirmed {
		return errs.NewInvalidTransitionError("confirm order", "confirmed", "not confirmed")
	}
	if q.status != QuoteApproved {
		return errs.NewInvalidTransitionError("confirm order", q.status.String(), QuoteApproved.String())
	}

	for _, item := range q.lineItems {
		if item.ApprovedBid() == nil {
			return errs.NewInvalidTransitionError("confirm order", QuotePending.String(), QuoteApproved.String())
		}
	}

	for _, item := range q.lineItems {
		if err := item.materializeOrder(kernel.NewUUID()); err != nil {
			return err
		}
	}

	q.isConfirmed = true
	q.resolve()
	return nil
}

// StartProcessing advances a line item's order from confirmed to processing.
// The dispatcher checks that the acting chef owns the order.
func (q *QuoteRequest) StartProcessing(lineItemID kernel.UUID) error {
	order, err := q.itemOrderByLineItem(lineItemID)
	if err != nil {
		return err
	}
	return order.StartProcessing()
}

// MarkReady advances a line item's order from processing to ready_to_deliver.
func (q *QuoteRequest) MarkReady(lineItemID kernel.UUID) error {
	order, err := q.itemOrderByLineItem(lineItemID)
	if err != nil {
		return err
	}
	return order.MarkReady()
}

// StartDelivery advances a line item's order from ready_to_deliver to on_the_way.
func (q *QuoteRequest) StartDelivery(lineItemID kernel.UUID) error {
	order, err := q.itemOrderByLineItem(lineItemID)
	if err != nil {
		return err
	}
	return order.StartDelivery()
}

// MarkDelivered advances a line item's order from on_the_way to delivered.
func (q *QuoteRequest) MarkDelivered(lineItemID kernel.UUID) error {
	order, err := q.itemOrderByLineItem(lineItemID)
	if err != nil {
		return err
	}
	return order.MarkDelivered()
}

// MarkReceived advances a line item's order from delivered to the terminal
// received status. The dispatcher checks that the acting customer owns the quote.
func (q *QuoteRequest) MarkReceived(lineItemID kernel.UUID) error {
	order, err := q.itemOrderByLineItem(lineItemID)
	if err != nil {
		return err
	}
	return order.MarkReceived()
}

// itemOrderByLineItem finds the materialized order for a line item.
// Returns an ObjectNotFoundError before confirmation.
func (q *QuoteRequest) itemOrderByLineItem(lineItemID kernel.UUID) (*ItemOrder, error) {
	item, err := q.LineItemByID(lineItemID)
	if err != nil {
		return nil, err
	}
	if item.ItemOrder() == nil {
		return nil, errs.NewObjectNotFoundError("itemOrder", lineItemID.String())
	}
	return item.ItemOrder(), nil
}

// resolve recomputes the derived state after a bid mutation: the quote is
// approved exactly when every line item has an approved bid, and the overall
// price is the sum of approved unit prices multiplied by quantities.
func (q *QuoteRequest) resolve() {
	var total kernel.Price
	for _, item := range q.lineItems {
		approved := item.ApprovedBid()
		if approved == nil {
			q.status = QuotePending
			q.totalPrice = nil
			return
		}
		total = total.Add(approved.UnitPrice().MultiplyQuantity(item.Quantity()))
	}

	q.status = QuoteApproved
	q.totalPrice = &total
}
