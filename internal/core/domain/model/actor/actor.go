package actor

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not created
	// through the NewActor factory method.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
)

// Actor is the authenticated identity attached to every command.
// It is a value object: immutable, comparable by ID, and constructed
// only from a trusted identity claim.
type Actor struct {
	id    kernel.UUID
	role  Role
	email string

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an identity claim.
// The id must be a valid UUID and the role one of the four known roles.
// The email is informational and may be empty.
func NewActor(id kernel.UUID, role Role, email string) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role claim.
func (a Actor) Role() Role {
	return a.role
}

// Email returns the actor's email address, if the identity service supplied one.
func (a Actor) Email() string {
	return a.email
}
