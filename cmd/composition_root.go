package cmd

import (
	"log/slog"

	"logistics/internal/adapters/out/filestore"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pipeline"
)

type CompositionRoot struct {
	store  *filestore.Store
	logger *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	store, err := filestore.NewStore(config.InputsDir, config.OutputsDir)
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		store:  store,
		logger: logger,
	}, nil
}

func (c *CompositionRoot) CreateCleanOrdersCommandHandler() commands.CleanOrdersCommandHandler {
	return commands.NewCleanOrdersCommandHandler(c.store, c.store, c.store)
}

func (c *CompositionRoot) CreatePlanAssignmentsCommandHandler() commands.PlanAssignmentsCommandHandler {
	return commands.NewPlanAssignmentsCommandHandler(c.store, c.store, c.store, c.store)
}

func (c *CompositionRoot) CreateReconcileDeliveriesCommandHandler() commands.ReconcileDeliveriesCommandHandler {
	return commands.NewReconcileDeliveriesCommandHandler(c.store, c.store, c.store, c.store, c.store)
}

func (c *CompositionRoot) CreatePipeline() *pipeline.Pipeline {
	return pipeline.New(
		c.CreateCleanOrdersCommandHandler(),
		c.CreatePlanAssignmentsCommandHandler(),
		c.CreateReconcileDeliveriesCommandHandler(),
		c.logger,
	)
}
