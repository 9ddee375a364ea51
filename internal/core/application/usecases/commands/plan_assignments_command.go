package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrPlanAssignmentsCommandIsNotConstructed = errors.New(
	"PlanAssignmentsCommand must be created via NewPlanAssignmentsCommand constructor",
)

// PlanAssignmentsCommand triggers greedy assignment of clean orders to the
// courier roster. The handler recomputes the clean order set in memory, so
// planning never depends on a previously persisted artifact.
type PlanAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewPlanAssignmentsCommand creates a new command to trigger planning.
func NewPlanAssignmentsCommand() PlanAssignmentsCommand {
	return PlanAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlanAssignmentsCommandIsNotConstructed if validation fails.
func (c *PlanAssignmentsCommand) Validate() error {
	return c.guard.Validate(
		ErrPlanAssignmentsCommandIsNotConstructed,
	)
}
