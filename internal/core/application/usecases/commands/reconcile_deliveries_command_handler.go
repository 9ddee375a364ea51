package commands

import (
	"context"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ReconcileDeliveriesCommandHandler orchestrates the reconciliation stage.
// Rebuilds the clean order set and the plan, loads the delivery log, and
// classifies every discrepancy between what was planned and what drivers
// reported.
//
// Example:
//
//	handler := NewReconcileDeliveriesCommandHandler(orderSource, courierSource, zoneSource, logSource, sink)
//	cmd := NewReconcileDeliveriesCommand()
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("reconciliation failed: %w", err)
//	}
//	log.Printf("%d missing, %d late", len(report.Missing), len(report.Late))
type ReconcileDeliveriesCommandHandler struct {
	orders   ports.OrderSource
	couriers ports.CourierSource
	zones    ports.ZoneSource
	log      ports.DeliveryLogSource
	sink     ports.ReportSink
}

// NewReconcileDeliveriesCommandHandler creates a handler for the reconciliation stage.
func NewReconcileDeliveriesCommandHandler(
	orders ports.OrderSource,
	couriers ports.CourierSource,
	zones ports.ZoneSource,
	log ports.DeliveryLogSource,
	sink ports.ReportSink,
) ReconcileDeliveriesCommandHandler {
	return ReconcileDeliveriesCommandHandler{
		orders:   orders,
		couriers: couriers,
		zones:    zones,
		log:      log,
		sink:     sink,
	}
}

// Handle processes the reconcile deliveries command and returns the report.
func (h ReconcileDeliveriesCommandHandler) Handle(ctx context.Context, cmd ReconcileDeliveriesCommand) (services.Report, error) {
	if err := cmd.Validate(); err != nil {
		return services.Report{}, err
	}

	raws, err := h.orders.LoadRawOrders(ctx)
	if err != nil {
		return services.Report{}, err
	}

	roster, err := h.couriers.LoadCouriers(ctx)
	if err != nil {
		return services.Report{}, err
	}

	entries, err := h.zones.LoadZones(ctx)
	if err != nil {
		return services.Report{}, err
	}

	logEntries, err := h.log.LoadLogEntries(ctx)
	if err != nil {
		return services.Report{}, err
	}

	index := zone.NewIndex(entries)
	cleaned := services.NewOrderMerger(index).Merge(raws)
	plan := services.NewOrderDispatcher().Plan(cleaned.Orders, roster, index)
	report := services.NewDeliveryReconciler().Reconcile(cleaned.Orders, plan, logEntries, roster, index)

	if err = h.sink.SaveReconciliation(ctx, report); err != nil {
		return services.Report{}, err
	}

	return report, nil
}
