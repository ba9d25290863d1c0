// Package quote implements the quote/order lifecycle: the QuoteRequest
// aggregate root with its line items, competing chef bids, and
// post-confirmation item orders.
//
// The aggregate owns all lifecycle state and is the only mutable shared
// resource in the system. Three coupled state machines live here:
//
//   - QuoteStatus: pending -> approved | rejected
//   - BidStatus:   pending -> approved | rejected (reset-then-approve selection)
//   - OrderStatus: pending_confirmation -> confirmed -> processing ->
//     ready_to_deliver -> on_the_way -> delivered -> received
//
// Every transition is validated against the exact required from-state;
// an action submitted in any other state fails with an
// errs.InvalidTransitionError and leaves the aggregate unchanged.
//
// Invariants maintained by the aggregate:
//   - At most one approved bid per line item at any time
//   - A quote is confirmable only when every line item has exactly one
//     approved bid
//   - An item order exists if and only if its line item has an approved bid
//     and the quote is confirmed
//   - The overall price, when set, equals the sum of approved bid prices
//     multiplied by their line item quantities
//   - Order status only moves forward along the fixed progression
package quote
