// Package pipeline sequences the three processing stages of one batch run:
// cleaning the order feed, planning courier assignments, and reconciling the
// plan against the delivery log. Each stage persists its own artifact, so a
// run that fails midway leaves the earlier artifacts in place.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/google/uuid"
)

// Pipeline drives a full batch run through the stage handlers.
type Pipeline struct {
	clean     commands.CleanOrdersCommandHandler
	plan      commands.PlanAssignmentsCommandHandler
	reconcile commands.ReconcileDeliveriesCommandHandler
	logger    *slog.Logger
}

// New creates a pipeline over the three stage handlers.
func New(
	clean commands.CleanOrdersCommandHandler,
	plan commands.PlanAssignmentsCommandHandler,
	reconcile commands.ReconcileDeliveriesCommandHandler,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		clean:     clean,
		plan:      plan,
		reconcile: reconcile,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run executes all three stages in order and stops at the first failure.
// Stages are pure with respect to their sources, so a full run produces the
// same artifacts as running the standalone subcommands one by one.
func (p *Pipeline) Run(ctx context.Context) error {
	logger := p.logger.With("run_id", uuid.NewString())
	logger.InfoContext(ctx, "Pipeline run started")

	cleaned, err := p.clean.Handle(ctx, commands.NewCleanOrdersCommand())
	if err != nil {
		return fmt.Errorf("clean stage: %w", err)
	}
	logger.InfoContext(ctx, "Orders cleaned",
		"orders", len(cleaned.Orders), "warnings", len(cleaned.Warnings))

	plan, err := p.plan.Handle(ctx, commands.NewPlanAssignmentsCommand())
	if err != nil {
		return fmt.Errorf("plan stage: %w", err)
	}
	logger.InfoContext(ctx, "Assignments planned",
		"assigned", len(plan.Assignments), "unassigned", len(plan.Unassigned))

	report, err := p.reconcile.Handle(ctx, commands.NewReconcileDeliveriesCommand())
	if err != nil {
		return fmt.Errorf("reconcile stage: %w", err)
	}
	logger.InfoContext(ctx, "Deliveries reconciled",
		"missing", len(report.Missing),
		"unexpected", len(report.Unexpected),
		"duplicate", len(report.Duplicate),
		"late", len(report.Late),
		"misassigned", len(report.Misassigned),
		"overloaded_couriers", len(report.OverloadedCouriers))

	logger.InfoContext(ctx, "Pipeline run finished")
	return nil
}
