// Package cli exposes the pipeline as a cobra command tree. The stage
// handlers are built per invocation, after flags are parsed, so --inputs and
// --outputs can rebind the whole stack to different directories.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pipeline"
)

// Handlers bundles everything the command tree drives.
type Handlers struct {
	CleanOrders         commands.CleanOrdersCommandHandler
	PlanAssignments     commands.PlanAssignmentsCommandHandler
	ReconcileDeliveries commands.ReconcileDeliveriesCommandHandler
	Pipeline            *pipeline.Pipeline
}

// BuildFunc constructs handlers bound to the resolved directories.
type BuildFunc func(inputsDir, outputsDir string) (Handlers, error)

type rootOptions struct {
	inputsDir  string
	outputsDir string
	build      BuildFunc
	logger     *slog.Logger
}

// NewRootCommand builds the logistics command tree. The given directories are
// flag defaults, usually resolved from config before the CLI is constructed.
func NewRootCommand(defaultInputs, defaultOutputs string, logger *slog.Logger, build BuildFunc) *cobra.Command {
	opts := &rootOptions{
		build:  build,
		logger: logger.With("component", "cli"),
	}

	root := &cobra.Command{
		Use:           "logistics",
		Short:         "Logistics order cleanup, courier planning and delivery reconciliation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.inputsDir, "inputs", defaultInputs,
		"input folder containing orders.json, couriers.json, zones.csv, log.csv")
	root.PersistentFlags().StringVar(&opts.outputsDir, "outputs", defaultOutputs,
		"output folder for clean_orders.json, plan.json, reconciliation.json")

	root.AddCommand(
		newCleanCommand(opts),
		newPlanCommand(opts),
		newReconcileCommand(opts),
		newRunCommand(opts),
	)
	return root
}

func newCleanCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Normalize and deduplicate the raw order feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := opts.build(opts.inputsDir, opts.outputsDir)
			if err != nil {
				return err
			}

			result, err := h.CleanOrders.Handle(cmd.Context(), commands.NewCleanOrdersCommand())
			if err != nil {
				return err
			}

			opts.logger.InfoContext(cmd.Context(), "Orders cleaned",
				"orders", len(result.Orders), "warnings", len(result.Warnings))
			return nil
		},
	}
}

func newPlanCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Assign clean orders to couriers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := opts.build(opts.inputsDir, opts.outputsDir)
			if err != nil {
				return err
			}

			plan, err := h.PlanAssignments.Handle(cmd.Context(), commands.NewPlanAssignmentsCommand())
			if err != nil {
				return err
			}

			opts.logger.InfoContext(cmd.Context(), "Assignments planned",
				"assigned", len(plan.Assignments), "unassigned", len(plan.Unassigned))
			return nil
		},
	}
}

func newReconcileCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Audit the delivery log against the plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := opts.build(opts.inputsDir, opts.outputsDir)
			if err != nil {
				return err
			}

			report, err := h.ReconcileDeliveries.Handle(cmd.Context(), commands.NewReconcileDeliveriesCommand())
			if err != nil {
				return err
			}

			opts.logger.InfoContext(cmd.Context(), "Deliveries reconciled",
				"missing", len(report.Missing),
				"unexpected", len(report.Unexpected),
				"duplicate", len(report.Duplicate),
				"late", len(report.Late),
				"misassigned", len(report.Misassigned),
				"overloaded_couriers", len(report.OverloadedCouriers))
			return nil
		},
	}
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline and write all three artifacts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := opts.build(opts.inputsDir, opts.outputsDir)
			if err != nil {
				return err
			}
			return h.Pipeline.Run(cmd.Context())
		},
	}
}
