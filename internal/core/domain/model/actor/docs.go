// Package actor models the identity of the party performing a command.
// Every mutating operation in the system is performed by an authenticated
// actor with one of four roles: customer, chef, delivery, or admin.
// The identity service is trusted to have authenticated the actor already;
// this package only carries the resulting claim through the application.
package actor
