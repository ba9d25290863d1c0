package quote

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	// ErrPartyDetailsIsNotConstructed is returned when a PartyDetails instance
	// was not created through the NewPartyDetails factory method.
	ErrPartyDetailsIsNotConstructed = errors.New("PartyDetails must be created via NewPartyDetails constructor")
)

// PartyDetails is a value object describing the party a quote is for:
// date, location, and the guest split by dietary class.
type PartyDetails struct {
	partyDate     time.Time
	partyLocation string
	vegGuests     int
	nonVegGuests  int

	guard guard.ConstructorGuard
}

// NewPartyDetails creates validated party details.
//
// Constraints:
//   - partyDate must not be a calendar date in the past relative to now
//   - partyLocation must be non-empty
//   - guest counts must be non-negative and at least one guest is expected
//
// The now parameter makes the past-date rule explicit and testable instead
// of reading the ambient clock.
func NewPartyDetails(
	partyDate time.Time,
	partyLocation string,
	vegGuests, nonVegGuests int,
	now time.Time,
) (PartyDetails, error) {
	if partyLocation == "" {
		return PartyDetails{}, errs.NewValueIsRequiredError("partyLocation")
	}
	if vegGuests < 0 || nonVegGuests < 0 {
		return PartyDetails{}, errs.NewValueIsInvalidErrorWithCause("guest count",
			fmt.Errorf("guest counts %d/%d must not be negative", vegGuests, nonVegGuests))
	}
	if vegGuests+nonVegGuests == 0 {
		return PartyDetails{}, errs.NewValueIsRequiredError("at least one guest")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if partyDate.Before(today) {
		return PartyDetails{}, errs.NewValueIsInvalidErrorWithCause("partyDate",
			fmt.Errorf("%s is in the past", partyDate.Format(time.DateOnly)))
	}

	return PartyDetails{
		partyDate:     partyDate,
		partyLocation: partyLocation,
		vegGuests:     vegGuests,
		nonVegGuests:  nonVegGuests,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PartyDetails was created through the constructor.
func (p PartyDetails) Validate() error {
	return p.guard.Validate(ErrPartyDetailsIsNotConstructed)
}

// PartyDate returns the date of the party.
func (p PartyDetails) PartyDate() time.Time {
	return p.partyDate
}

// PartyLocation returns where the party takes place.
func (p PartyDetails) PartyLocation() string {
	return p.partyLocation
}

// VegGuests returns the vegetarian guest count.
func (p PartyDetails) VegGuests() int {
	return p.vegGuests
}

// NonVegGuests returns the non-vegetarian guest count.
func (p PartyDetails) NonVegGuests() int {
	return p.nonVegGuests
}
