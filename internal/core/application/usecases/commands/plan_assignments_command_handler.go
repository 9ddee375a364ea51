package commands

import (
	"context"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// PlanAssignmentsCommandHandler orchestrates the planning stage.
// Cleans the raw feed in memory, loads the courier roster, and dispatches
// every clean order to the best feasible courier.
//
// Example:
//
//	handler := NewPlanAssignmentsCommandHandler(orderSource, courierSource, zoneSource, sink)
//	cmd := NewPlanAssignmentsCommand()
//	plan, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("planning failed: %w", err)
//	}
//	log.Printf("assigned %d, unassigned %d", len(plan.Assignments), len(plan.Unassigned))
type PlanAssignmentsCommandHandler struct {
	orders   ports.OrderSource
	couriers ports.CourierSource
	zones    ports.ZoneSource
	sink     ports.ReportSink
}

// NewPlanAssignmentsCommandHandler creates a handler for the planning stage.
func NewPlanAssignmentsCommandHandler(
	orders ports.OrderSource,
	couriers ports.CourierSource,
	zones ports.ZoneSource,
	sink ports.ReportSink,
) PlanAssignmentsCommandHandler {
	return PlanAssignmentsCommandHandler{
		orders:   orders,
		couriers: couriers,
		zones:    zones,
		sink:     sink,
	}
}

// Handle processes the plan assignments command and returns the plan.
func (h PlanAssignmentsCommandHandler) Handle(ctx context.Context, cmd PlanAssignmentsCommand) (services.Plan, error) {
	if err := cmd.Validate(); err != nil {
		return services.Plan{}, err
	}

	raws, err := h.orders.LoadRawOrders(ctx)
	if err != nil {
		return services.Plan{}, err
	}

	roster, err := h.couriers.LoadCouriers(ctx)
	if err != nil {
		return services.Plan{}, err
	}

	entries, err := h.zones.LoadZones(ctx)
	if err != nil {
		return services.Plan{}, err
	}

	index := zone.NewIndex(entries)
	cleaned := services.NewOrderMerger(index).Merge(raws)
	plan := services.NewOrderDispatcher().Plan(cleaned.Orders, roster, index)

	if err = h.sink.SavePlan(ctx, plan); err != nil {
		return services.Plan{}, err
	}

	return plan, nil
}
