package commands

import (
	"context"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CleanOrdersCommandHandler orchestrates the first pipeline stage.
// Loads the raw order feed and the zone alias table, merges duplicate
// records into one clean order each, and persists the result.
//
// Example:
//
//	handler := NewCleanOrdersCommandHandler(orderSource, zoneSource, sink)
//	cmd := NewCleanOrdersCommand()
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order cleaning failed: %w", err)
//	}
//	log.Printf("cleaned %d orders, %d warnings", len(result.Orders), len(result.Warnings))
type CleanOrdersCommandHandler struct {
	orders ports.OrderSource
	zones  ports.ZoneSource
	sink   ports.ReportSink
}

// NewCleanOrdersCommandHandler creates a handler for the cleaning stage.
func NewCleanOrdersCommandHandler(
	orders ports.OrderSource,
	zones ports.ZoneSource,
	sink ports.ReportSink,
) CleanOrdersCommandHandler {
	return CleanOrdersCommandHandler{
		orders: orders,
		zones:  zones,
		sink:   sink,
	}
}

// Handle processes the clean orders command.
// Returns the merge result so callers can chain later stages on the
// in-memory clean set without re-reading the persisted artifact.
func (h CleanOrdersCommandHandler) Handle(ctx context.Context, cmd CleanOrdersCommand) (services.MergeResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.MergeResult{}, err
	}

	raws, err := h.orders.LoadRawOrders(ctx)
	if err != nil {
		return services.MergeResult{}, err
	}

	entries, err := h.zones.LoadZones(ctx)
	if err != nil {
		return services.MergeResult{}, err
	}

	result := services.NewOrderMerger(zone.NewIndex(entries)).Merge(raws)

	if err = h.sink.SaveCleanOrders(ctx, result.Orders, result.Warnings); err != nil {
		return services.MergeResult{}, err
	}

	return result, nil
}
