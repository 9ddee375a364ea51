package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrReconcileDeliveriesCommandIsNotConstructed = errors.New(
	"ReconcileDeliveriesCommand must be created via NewReconcileDeliveriesCommand constructor",
)

// ReconcileDeliveriesCommand triggers the audit of the delivery log against
// the assignment plan. The handler recomputes cleaning and planning in
// memory before comparing them to what drivers reported.
type ReconcileDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileDeliveriesCommand creates a new command to trigger reconciliation.
func NewReconcileDeliveriesCommand() ReconcileDeliveriesCommand {
	return ReconcileDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileDeliveriesCommandIsNotConstructed if validation fails.
func (c *ReconcileDeliveriesCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileDeliveriesCommandIsNotConstructed,
	)
}
