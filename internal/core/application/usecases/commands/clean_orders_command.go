// Package commands contains the business operations of the pipeline.
// Each operation follows a consistent pattern: a guarded parameterless
// command, and a handler that loads inputs through ports, runs the domain
// services, and persists the artifact through the report sink.
package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrCleanOrdersCommandIsNotConstructed = errors.New(
	"CleanOrdersCommand must be created via NewCleanOrdersCommand constructor",
)

// CleanOrdersCommand triggers normalization and deduplication of the raw
// order feed. It is a parameterless command; the handler resolves where the
// feed comes from.
//
// Example:
//
//	cmd := NewCleanOrdersCommand()
//	handler := NewCleanOrdersCommandHandler(orderSource, zoneSource, sink)
//	result, err := handler.Handle(ctx, cmd)
type CleanOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanOrdersCommand creates a new command to trigger order cleaning.
func NewCleanOrdersCommand() CleanOrdersCommand {
	return CleanOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCleanOrdersCommandIsNotConstructed if validation fails.
func (c *CleanOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrCleanOrdersCommandIsNotConstructed,
	)
}
