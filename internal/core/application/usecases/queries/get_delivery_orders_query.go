package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/actor"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
		"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
	)
)

// GetDeliveryOrdersQuery retrieves item orders relevant to delivery staff.
// Returns orders that have reached the ready stage, including those already
// picked up or handed over, for active workload visibility.
//
// Example:
//
//	query, err := NewGetDeliveryOrdersQuery(courier)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders in the delivery pipeline\n", len(orders))
type GetDeliveryOrdersQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersQuery creates a query for the delivery worklist.
func NewGetDeliveryOrdersQuery(requester actor.Actor) (GetDeliveryOrdersQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetDeliveryOrdersQuery{}, err
	}

	return GetDeliveryOrdersQuery{
		actor: requester,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryOrdersQuery) Actor() actor.Actor { return q.actor }

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}

// GetDeliveryOrdersQueryResponse is one deliverable item order with the
// party context a courier needs to plan the drop.
type GetDeliveryOrdersQueryResponse struct {
	ID             kernel.UUID
	QuoteRequestID kernel.UUID
	MenuItemName   string
	Quantity       int
	PartyDate      time.Time
	PartyLocation  string
	Status         string
}
